package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// RandomRange returns a random float64 in [min, max)
func RandomRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// SampleSquare returns an offset uniformly distributed in [-0.5, 0.5)²
func SampleSquare(sampler Sampler) Vec2 {
	s := sampler.Get2D()
	return NewVec2(s.X-0.5, s.Y-0.5)
}

// SampleInUnitDisk returns a point uniformly distributed inside the unit disk.
// Uses rejection sampling on [-1,1]².
func SampleInUnitDisk(sampler Sampler) Vec2 {
	for {
		s := sampler.Get2D()
		p := NewVec2(2*s.X-1, 2*s.Y-1)
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

// SampleUnitVector returns a uniformly distributed direction on the unit sphere
func SampleUnitVector(sampler Sampler) Vec3 {
	sample := sampler.Get2D()
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleInUnitSphere returns a point uniformly distributed inside the unit sphere
func SampleInUnitSphere(sampler Sampler) Vec3 {
	r := math.Cbrt(sampler.Get1D())
	return SampleUnitVector(sampler).Multiply(r)
}
