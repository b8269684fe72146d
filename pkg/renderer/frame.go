package renderer

import "github.com/df07/go-stochastic-raytracer/pkg/core"

// PixelSink receives a rendered raster one pixel at a time in scanline order:
// rows top to bottom, pixels left to right within a row
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(color core.Vec3) error
	End() error
}

// Frame is a fully rendered raster of linear colors in scanline order
type Frame struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j), with j counted from the top
func (f *Frame) At(i, j int) core.Vec3 {
	return f.Pixels[j*f.Width+i]
}

// Row returns the pixels of scanline j
func (f *Frame) Row(j int) []core.Vec3 {
	return f.Pixels[j*f.Width : (j+1)*f.Width]
}

// WriteTo streams the frame into sink in scanline order
func (f *Frame) WriteTo(sink PixelSink) error {
	if err := sink.Begin(f.Width, f.Height); err != nil {
		return err
	}
	for _, c := range f.Pixels {
		if err := sink.WritePixel(c); err != nil {
			return err
		}
	}
	return sink.End()
}

// frameSink collects streamed pixels into a Frame
type frameSink struct {
	frame *Frame
	next  int
}

func (fs *frameSink) Begin(width, height int) error {
	fs.frame = NewFrame(width, height)
	fs.next = 0
	return nil
}

func (fs *frameSink) WritePixel(color core.Vec3) error {
	fs.frame.Pixels[fs.next] = color
	fs.next++
	return nil
}

func (fs *frameSink) End() error { return nil }
