package geometry

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection.
// It uses an internal BVH for fast intersection tests.
type TriangleMesh struct {
	triangles []core.Hittable
	bvh       *BVH
}

// NewTriangleMesh creates a mesh from vertices and face indices; each group of
// three indices forms one triangle
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	triangles := make([]core.Hittable, len(faces)/3)
	for i := range triangles {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, index := range [3]int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("triangle %d: vertex index %d out of range [0, %d)", i, index, len(vertices))
			}
		}
		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2], material)
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles),
	}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}
