package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// PPMWriter streams a raster as plain-text (P3) PPM
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM sink writing to w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the PPM header
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (p *PPMWriter) WritePixel(c core.Vec3) error {
	r, g, b := ToRGB(c)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}
