package geometry

import (
	"sort"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []core.Hittable // Objects for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []core.Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Sorting happens in place, so work on a copy
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively splits objects at the median along the longest axis
func buildBVH(objects []core.Hittable) *BVHNode {
	boundingBox := core.EmptyAABB
	for _, object := range objects {
		boundingBox = core.NewAABBUnion(boundingBox, object.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Objects:     objects,
		}
	}

	axis := boundingBox.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})

	mid := len(objects) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(objects[:mid]),
		Right:       buildBVH(objects[mid:]),
	}
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, rayT)
}

// BoundingBox returns the bounds of the whole hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB
	}
	return bvh.Root.BoundingBox
}

func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, rayT) {
		return nil, false
	}

	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	if node.Objects != nil {
		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	for _, child := range []*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if hit, isHit := bvh.hitNode(child, ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
