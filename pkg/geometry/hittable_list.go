package geometry

import "github.com/df07/go-stochastic-raytracer/pkg/core"

// HittableList is a flat collection of objects searched linearly for the nearest hit
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = core.NewAABBUnion(l.bbox, object.BoundingBox())
}

// Hit returns the closest hit among all objects. Each successful test shrinks
// the search interval so later objects can only win by being nearer.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of every object's bounding box
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
