package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// ToImage converts a rendered frame to an 8-bit RGBA image
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for j := 0; j < frame.Height; j++ {
		for i := 0; i < frame.Width; i++ {
			r, g, b := ToRGB(frame.At(i, j))
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// EncodePNG writes frame to w as a PNG image
func EncodePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, ToImage(frame)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
