package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DummyMaterial absorbs everything; tests only care that it is carried through
type DummyMaterial struct{}

func (DummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

var defaultRayT = core.NewInterval(0.001, math.Inf(1))

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
