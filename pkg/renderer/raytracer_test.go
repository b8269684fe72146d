package renderer

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// createTestWorld builds a small scene that exercises every material
func createTestWorld() core.Hittable {
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)),
	)
}

func createTestCamera(width int, aspectRatio float64, samplesPerPixel int) *Camera {
	config := DefaultCameraConfig()
	config.Width = width
	config.AspectRatio = aspectRatio
	config.SamplesPerPixel = samplesPerPixel
	return NewCamera(config)
}

func TestRaytracer_EmptySceneSkyGradient(t *testing.T) {
	camera := createTestCamera(100, 1.0, 1)
	rt := NewRaytracer(camera, geometry.NewHittableList(), DefaultRenderOptions(), nil)

	frame, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if frame.Width != 100 || frame.Height != 100 {
		t.Fatalf("Expected 100x100 frame, got %dx%d", frame.Width, frame.Height)
	}
	if stats.TotalPixels != 10000 || stats.TotalSamples != 10000 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	// Every pixel is exactly the sky seen along its single jittered ray
	for j := 0; j < frame.Height; j++ {
		sampler := core.NewSeededSampler(DefaultRenderOptions().Seed + int64(j))
		for i := 0; i < frame.Width; i++ {
			expected := integrator.SkyGradient(camera.GetRay(i, j, sampler))
			if got := frame.At(i, j); got != expected {
				t.Fatalf("Pixel (%d, %d): expected %v, got %v", i, j, expected, got)
			}
		}
	}

	// Upward rays see the blue end of the gradient, so red rises toward the bottom row
	rowRed := func(j int) float64 {
		sum := 0.0
		for _, c := range frame.Row(j) {
			sum += c.X
		}
		return sum / float64(frame.Width)
	}
	for j := 1; j < frame.Height; j++ {
		if rowRed(j) <= rowRed(j-1) {
			t.Fatalf("Expected red to increase from row %d to %d: %f vs %f", j-1, j, rowRed(j-1), rowRed(j))
		}
	}

	top, bottom := frame.At(50, 0), frame.At(50, frame.Height-1)
	if math.Abs(top.Z-1) > 1e-12 || math.Abs(bottom.Z-1) > 1e-12 {
		t.Errorf("Expected full blue channel everywhere, got top=%v bottom=%v", top, bottom)
	}
	if !(top.X < bottom.X) {
		t.Errorf("Expected top row bluer than bottom row, got top=%v bottom=%v", top, bottom)
	}
}

func TestRaytracer_ExactSamplesPerPixel(t *testing.T) {
	camera := createTestCamera(8, 2.0, 7)
	counter := &countingIntegrator{color: core.NewVec3(0.25, 0.5, 0.75)}

	rt := NewRaytracer(camera, geometry.NewHittableList(), DefaultRenderOptions(), nil)
	rt.SetIntegrator(counter)

	frame, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expectedCalls := int64(8 * 4 * 7)
	if got := counter.calls.Load(); got != expectedCalls {
		t.Errorf("Expected %d integrator calls, got %d", expectedCalls, got)
	}
	if stats.TotalSamples != int(expectedCalls) {
		t.Errorf("Expected %d total samples, got %d", expectedCalls, stats.TotalSamples)
	}

	// The sum of seven samples scaled by 1/7 gives back the sample value
	for _, c := range frame.Pixels {
		if !vecNear(c, counter.color, 1e-12) {
			t.Fatalf("Expected averaged color %v, got %v", counter.color, c)
		}
	}
}

func TestRaytracer_RenderPixelUsesMaxDepth(t *testing.T) {
	config := DefaultCameraConfig()
	config.SamplesPerPixel = 3
	config.MaxDepth = 0

	rt := NewRaytracer(NewCamera(config), createTestWorld(), DefaultRenderOptions(), nil)

	// Zero depth means every sample is black regardless of the world
	got := rt.RenderPixel(50, 50, core.NewSeededSampler(1))
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black pixel at depth 0, got %v", got)
	}
}

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	camera := createTestCamera(40, 2.0, 4)
	world := createTestWorld()

	sequential, _, err := NewRaytracer(camera, world, RenderOptions{Workers: 1, Seed: 7}, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Sequential render failed: %v", err)
	}

	for _, workers := range []int{0, 2, 4, 16} {
		parallel, stats, err := NewRaytracer(camera, world, RenderOptions{Workers: workers, Seed: 7}, nil).Render(context.Background())
		if err != nil {
			t.Fatalf("Parallel render with %d workers failed: %v", workers, err)
		}
		if workers > 0 && stats.Workers != workers {
			t.Errorf("Expected %d workers in stats, got %d", workers, stats.Workers)
		}

		for k := range sequential.Pixels {
			if sequential.Pixels[k] != parallel.Pixels[k] {
				t.Fatalf("Workers=%d: pixel %d differs: %v vs %v", workers, k, sequential.Pixels[k], parallel.Pixels[k])
			}
		}
	}
}

func TestRaytracer_SeedChangesImage(t *testing.T) {
	camera := createTestCamera(20, 1.0, 2)
	world := createTestWorld()

	a, _, _ := NewRaytracer(camera, world, RenderOptions{Workers: 1, Seed: 1}, nil).Render(context.Background())
	b, _, _ := NewRaytracer(camera, world, RenderOptions{Workers: 1, Seed: 2}, nil).Render(context.Background())

	for k := range a.Pixels {
		if a.Pixels[k] != b.Pixels[k] {
			return
		}
	}
	t.Error("Expected different seeds to produce different images")
}

func TestRaytracer_PixelsAreFinite(t *testing.T) {
	camera := createTestCamera(30, 1.5, 8)
	frame, _, err := NewRaytracer(camera, createTestWorld(), DefaultRenderOptions(), nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for k, c := range frame.Pixels {
		if c.HasNaN() || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) || math.IsInf(c.Z, 0) {
			t.Fatalf("Pixel %d is not finite: %v", k, c)
		}
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("Pixel %d is negative: %v", k, c)
		}
	}
}

func TestRaytracer_CancelledContext(t *testing.T) {
	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rt := NewRaytracer(createTestCamera(20, 1.0, 1), geometry.NewHittableList(), RenderOptions{Workers: workers, Seed: 42}, nil)
		_, _, err := rt.Render(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}

func TestRaytracer_SinkErrorStopsRender(t *testing.T) {
	for _, workers := range []int{1, 3} {
		sink := &limitedSink{limit: 25}
		rt := NewRaytracer(createTestCamera(10, 1.0, 1), geometry.NewHittableList(), RenderOptions{Workers: workers, Seed: 42}, nil)

		_, err := rt.RenderTo(context.Background(), sink)
		if !errors.Is(err, errSinkFull) {
			t.Errorf("Workers=%d: expected sink error, got %v", workers, err)
		}
		if sink.written != 25 {
			t.Errorf("Workers=%d: expected 25 pixels before failure, got %d", workers, sink.written)
		}
	}
}

func TestRaytracer_ProgressLogging(t *testing.T) {
	for _, workers := range []int{1, 4} {
		logger := &recordingLogger{}
		rt := NewRaytracer(createTestCamera(10, 2.0, 1), geometry.NewHittableList(), RenderOptions{Workers: workers, Seed: 42}, logger)

		if _, _, err := rt.Render(context.Background()); err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		// One line per scanline plus the summary
		if len(logger.lines) != 6 {
			t.Fatalf("Workers=%d: expected 6 log lines, got %d: %q", workers, len(logger.lines), logger.lines)
		}
		if !strings.HasPrefix(logger.lines[0], "Scanlines remaining: 5 ") {
			t.Errorf("Unexpected first line %q", logger.lines[0])
		}
		if !strings.HasPrefix(logger.lines[4], "Scanlines remaining: 1 ") {
			t.Errorf("Unexpected last scanline %q", logger.lines[4])
		}
		if !strings.HasPrefix(logger.lines[5], "Done.") {
			t.Errorf("Expected summary line, got %q", logger.lines[5])
		}
	}
}
