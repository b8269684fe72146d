package renderer

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// fixedSampler replays the same values on every call
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
}

func (f fixedSampler) Get1D() float64   { return f.value1D }
func (f fixedSampler) Get2D() core.Vec2 { return f.value2D }

// centerSampler puts every pixel sample exactly at the pixel center
var centerSampler = fixedSampler{value1D: 0.5, value2D: core.NewVec2(0.5, 0.5)}

// countingIntegrator returns a constant color and counts evaluations
type countingIntegrator struct {
	color core.Vec3
	calls atomic.Int64
}

func (ci *countingIntegrator) RayColor(ray core.Ray, world core.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	ci.calls.Add(1)
	return ci.color
}

// recordingLogger keeps every formatted line
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.lines = append(rl.lines, fmt.Sprintf(format, args...))
}

var errSinkFull = errors.New("sink full")

// limitedSink accepts a fixed number of pixels and then fails
type limitedSink struct {
	limit   int
	written int
}

func (ls *limitedSink) Begin(width, height int) error { return nil }
func (ls *limitedSink) End() error                    { return nil }

func (ls *limitedSink) WritePixel(color core.Vec3) error {
	if ls.written >= ls.limit {
		return errSinkFull
	}
	ls.written++
	return nil
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// sequenceSampler replays 2D values in order, wrapping around
type sequenceSampler struct {
	values []core.Vec2
	next   int
}

func (s *sequenceSampler) Get1D() float64 { return s.Get2D().X }

func (s *sequenceSampler) Get2D() core.Vec2 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
