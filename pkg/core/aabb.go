package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// minimumExtent keeps flat boxes (planes, axis-aligned quads) from
// collapsing to zero thickness
const minimumExtent = 0.0001

// EmptyAABB bounds nothing
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box.X = NewIntervalUnion(box.X, NewInterval(p.X, p.X))
		box.Y = NewIntervalUnion(box.Y, NewInterval(p.Y, p.Y))
		box.Z = NewIntervalUnion(box.Z, NewInterval(p.Z, p.Z))
	}
	if len(points) == 0 {
		return box
	}
	return box.padToMinimums()
}

// NewAABBUnion returns an AABB that bounds both a and b
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray crosses the box anywhere inside rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		aabb.X.Min+aabb.X.Size()/2,
		aabb.Y.Min+aabb.Y.Size()/2,
		aabb.Z.Min+aabb.Z.Size()/2,
	)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minimumExtent {
		aabb.X = aabb.X.Expand(minimumExtent)
	}
	if aabb.Y.Size() < minimumExtent {
		aabb.Y = aabb.Y.Expand(minimumExtent)
	}
	if aabb.Z.Size() < minimumExtent {
		aabb.Z = aabb.Z.Expand(minimumExtent)
	}
	return aabb
}
