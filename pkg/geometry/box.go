package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Box is an axis-aligned box made of six outward-facing quads
type Box struct {
	Min, Max core.Vec3
	Material core.Material
	faces    *HittableList
}

// NewBox creates the box spanning two opposite corners, given in any order
func NewBox(a, b core.Vec3, material core.Material) *Box {
	minCorner := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxCorner := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxCorner.X-minCorner.X, 0, 0)
	dy := core.NewVec3(0, maxCorner.Y-minCorner.Y, 0)
	dz := core.NewVec3(0, 0, maxCorner.Z-minCorner.Z)

	faces := NewHittableList(
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, maxCorner.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(minCorner.X, maxCorner.Y, maxCorner.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dx, dz, material),          // bottom
	)

	return &Box{
		Min:      minCorner,
		Max:      maxCorner,
		Material: material,
		faces:    faces,
	}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return b.faces.Hit(ray, rayT)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(b.Min, b.Max)
}
