package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Shapes       []core.Hittable // Objects in the scene
	UseBVH       bool            // Wrap the shapes in a BVH instead of a flat list
	World        core.Hittable   // Intersection structure built by Preprocess
}

// Add appends shapes to the scene. Call Preprocess afterwards.
func (s *Scene) Add(shapes ...core.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the world the renderer intersects against
func (s *Scene) Preprocess() {
	if s.UseBVH {
		s.World = geometry.NewBVH(s.Shapes)
		return
	}
	s.World = geometry.NewHittableList(s.Shapes...)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, expanding meshes
func countPrimitivesInShape(shape core.Hittable) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		return obj.GetTriangleCount()
	default:
		return 1
	}
}
