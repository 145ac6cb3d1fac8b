package core

import "math"

// minSlabWidth is the smallest extent an AABB slab may have. Thinner slabs
// (flat quads) are padded so the box stays usable for BVH partitioning.
const minSlabWidth = 1e-4

// parallelEpsilon below which a direction component is treated as zero
const parallelEpsilon = 1e-8

// AABB represents an axis-aligned bounding box as three slabs
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABBFromIntervals creates a box from per-axis intervals, padding degenerate slabs
func NewAABBFromIntervals(x, y, z Interval) AABB {
	return AABB{X: padSlab(x), Y: padSlab(y), Z: padSlab(z)}
}

// NewAABB creates a box with the two points as opposite corners, in any order
func NewAABB(a, b Vec3) AABB {
	return NewAABBFromIntervals(
		NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	)
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return NewAABB(lo, hi)
}

func padSlab(slab Interval) Interval {
	if !slab.IsEmpty() && slab.Length() < minSlabWidth {
		return slab.Expand(minSlabWidth / 2)
	}
	return slab
}

// Axis returns the slab for the given axis (0=X, 1=Y, 2=Z)
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// t is the ray's current valid range.
func (b AABB) Hit(ray Ray, t Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray is parallel to this slab's planes
		if math.Abs(direction) < parallelEpsilon {
			if !slab.Contains(origin) {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > t.Min {
			t.Min = t0
		}
		if t1 < t.Max {
			t.Max = t1
		}

		if t.Min >= t.Max {
			return false
		}
	}

	return t.Min < t.Max
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
		Z: b.Z.Union(other.Z),
	}
}

// Translate returns the box moved by offset
func (b AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: b.X.Shift(offset.X),
		Y: b.Y.Shift(offset.Y),
		Z: b.Z.Shift(offset.Z),
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve in X, Y, Z order.
func (b AABB) LongestAxis() int {
	x, y, z := b.X.Length(), b.Y.Length(), b.Z.Length()
	if x >= y && x >= z {
		return 0
	}
	if y >= z {
		return 1
	}
	return 2
}

// Contains reports whether p lies inside the box (boundary included)
func (b AABB) Contains(p Vec3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Min returns the minimum corner
func (b AABB) Min() Vec3 {
	return NewVec3(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the maximum corner
func (b AABB) Max() Vec3 {
	return NewVec3(b.X.Max, b.Y.Max, b.Z.Max)
}

// Center returns the center point of the AABB
func (b AABB) Center() Vec3 {
	return b.Min().Add(b.Max()).Multiply(0.5)
}

// Corners returns the eight corners of the box
func (b AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := b.X.Min, b.Y.Min, b.Z.Min
		if i&1 != 0 {
			x = b.X.Max
		}
		if i&2 != 0 {
			y = b.Y.Max
		}
		if i&4 != 0 {
			z = b.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// IsEmpty reports whether the box bounds nothing
func (b AABB) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}
