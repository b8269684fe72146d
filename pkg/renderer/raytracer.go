package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// RenderOptions controls how a render is scheduled. None of these settings
// change the image for a given seed.
type RenderOptions struct {
	Workers int   // 1 renders on the calling goroutine; 0 uses every CPU
	Seed    int64 // Row j draws its samples from a generator seeded with Seed+j
}

// DefaultRenderOptions returns sequential rendering with a fixed seed
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Workers: 1,
		Seed:    42,
	}
}

// Raytracer renders a world through a camera
type Raytracer struct {
	camera     *Camera
	world      core.Hittable
	integrator integrator.Integrator
	options    RenderOptions
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables progress output.
func NewRaytracer(camera *Camera, world core.Hittable, options RenderOptions, logger core.Logger) *Raytracer {
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(),
		options:    options,
		logger:     logger,
	}
}

// SetIntegrator swaps the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Camera returns the camera used for rendering
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderPixel sums SamplesPerPixel independent estimates for pixel (i, j) and
// scales the sum once by 1/SamplesPerPixel
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	config := rt.camera.Config()

	var ps PixelStats
	for sample := 0; sample < config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, config.MaxDepth, sampler))
	}

	return ps.Scaled(rt.camera.PixelSamplesScale())
}

// renderRow traces scanline j with its own deterministic sampler
func (rt *Raytracer) renderRow(j int) []core.Vec3 {
	sampler := core.NewSeededSampler(rt.options.Seed + int64(j))
	pixels := make([]core.Vec3, rt.camera.ImageWidth())
	for i := range pixels {
		pixels[i] = rt.RenderPixel(i, j, sampler)
	}
	return pixels
}

// Render renders the whole raster into memory
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	sink := &frameSink{}
	stats, err := rt.RenderTo(ctx, sink)
	if err != nil {
		return nil, stats, err
	}
	return sink.frame, stats, nil
}

// RenderTo renders the raster and streams it into sink in scanline order.
// With more than one worker, rows are traced concurrently and reordered
// before they reach the sink.
func (rt *Raytracer) RenderTo(ctx context.Context, sink PixelSink) (RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	progress := newProgressReporter(rt.logger, height)

	stats := RenderStats{
		SamplesPerPixel: rt.camera.Config().SamplesPerPixel,
		Workers:         1,
	}

	if err := sink.Begin(width, height); err != nil {
		return stats, fmt.Errorf("begin output: %w", err)
	}

	writeRow := func(j int, pixels []core.Vec3) error {
		for _, c := range pixels {
			if err := sink.WritePixel(c); err != nil {
				return fmt.Errorf("write row %d: %w", j, err)
			}
		}
		stats.TotalPixels += len(pixels)
		stats.TotalSamples += len(pixels) * stats.SamplesPerPixel
		return nil
	}

	var err error
	if rt.options.Workers == 1 {
		err = rt.renderSequential(ctx, height, progress, writeRow)
	} else {
		pool := NewWorkerPool(rt.options.Workers, rt.renderRow)
		stats.Workers = pool.GetNumWorkers()
		err = rt.renderParallel(ctx, pool, height, progress, writeRow)
	}
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("end output: %w", err)
	}
	progress.done(stats)
	return stats, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, height int, progress *progressReporter, writeRow func(int, []core.Vec3) error) error {
	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render cancelled at row %d: %w", j, err)
		}
		progress.scanline(j)
		if err := writeRow(j, rt.renderRow(j)); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, pool *WorkerPool, height int, progress *progressReporter, writeRow func(int, []core.Vec3) error) error {
	pool.Start(ctx, height)

	// Rows finish out of order; hold them until every earlier row is written
	pending := make(map[int][]core.Vec3)
	next := 0
	for result := range pool.Results() {
		pending[result.Row] = result.Pixels
		for pixels, ok := pending[next]; ok; pixels, ok = pending[next] {
			delete(pending, next)
			progress.scanline(next)
			if err := writeRow(next, pixels); err != nil {
				pool.Stop()
				return err
			}
			next++
		}
	}

	if err := pool.Stop(); err != nil {
		return fmt.Errorf("render cancelled at row %d: %w", next, err)
	}
	if next != height {
		return fmt.Errorf("render stopped after %d of %d rows", next, height)
	}
	return nil
}
