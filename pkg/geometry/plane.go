package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal vector
	Material core.Material // Material of the plane
}

// planeExtent bounds planes in the BVH; anything farther is treated as unbounded
const planeExtent = 1e6

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns a bounding box for this plane. Axis-aligned planes get a
// thin slab, anything else gets a large cube.
func (p *Plane) BoundingBox() core.AABB {
	wide := core.NewInterval(-planeExtent, planeExtent)
	slab := func(v float64) core.Interval { return core.NewInterval(v, v) }

	const aligned = 1 - 1e-9
	switch {
	case math.Abs(p.Normal.X) > aligned:
		return core.NewAABB(slab(p.Point.X), wide, wide)
	case math.Abs(p.Normal.Y) > aligned:
		return core.NewAABB(wide, slab(p.Point.Y), wide)
	case math.Abs(p.Normal.Z) > aligned:
		return core.NewAABB(wide, wide, slab(p.Point.Z))
	default:
		return core.NewAABB(wide, wide, wide)
	}
}
