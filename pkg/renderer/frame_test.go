package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestFrame_Indexing(t *testing.T) {
	frame := NewFrame(3, 2)
	for k := range frame.Pixels {
		frame.Pixels[k] = core.NewVec3(float64(k), 0, 0)
	}

	if got := frame.At(2, 1).X; got != 5 {
		t.Errorf("Expected pixel (2, 1) to be index 5, got %v", got)
	}

	row := frame.Row(1)
	if len(row) != 3 || row[0].X != 3 {
		t.Errorf("Unexpected row 1: %v", row)
	}
}

func TestFrame_WriteTo(t *testing.T) {
	frame := NewFrame(4, 3)
	frame.Pixels[7] = core.NewVec3(1, 2, 3)

	sink := &frameSink{}
	if err := frame.WriteTo(sink); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if sink.frame.Width != 4 || sink.frame.Height != 3 {
		t.Fatalf("Unexpected size %dx%d", sink.frame.Width, sink.frame.Height)
	}
	for k := range frame.Pixels {
		if sink.frame.Pixels[k] != frame.Pixels[k] {
			t.Errorf("Pixel %d: expected %v, got %v", k, frame.Pixels[k], sink.frame.Pixels[k])
		}
	}
}

func TestFrame_WriteToPropagatesSinkError(t *testing.T) {
	frame := NewFrame(4, 4)
	sink := &limitedSink{limit: 3}

	if err := frame.WriteTo(sink); !errors.Is(err, errSinkFull) {
		t.Errorf("Expected sink error, got %v", err)
	}
}
