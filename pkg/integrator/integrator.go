package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most
	// depth bounces through world
	RayColor(ray core.Ray, world core.Hittable, depth int, sampler core.Sampler) core.Vec3
}
