package integrator

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the lower bound of every scene query. Hits closer than
// this to a ray's origin are floating-point echoes of the surface it left.
const ShadowAcneEpsilon = 0.001

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// sky gradient as the only light source
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// HitInterval is the ray-parameter range handed to the scene on every query
func HitInterval() core.Interval {
	return core.NewInterval(ShadowAcneEpsilon, math.Inf(1))
}

// RayColor computes the color for a single ray.
//
// The estimate is the product of every attenuation along the path times the
// sky color where the path escapes, or black if the path is absorbed or runs
// out of depth. It is evaluated iteratively so large depths cannot grow the
// stack.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, HitInterval())
		if !isHit {
			return throughput.MultiplyVec(SkyGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Ray bounce limit exceeded; no more light is gathered
	return core.Vec3{}
}

// SkyGradient blends white at the horizon-down into sky blue straight up,
// keyed on the unit direction's Y component mapped from [-1,1] to [0,1]
func SkyGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Unit()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}
