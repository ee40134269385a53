package vmath

import "math"

// AABB is an axis-aligned bounding box. The zero value is not a valid empty
// box; use InvalidAABB() to get the expansion identity (min = +MaxFloat32,
// max = -MaxFloat32, the largest finite float32 values rather than infinities).
type AABB struct {
	Min Vec3
	Max Vec3
}

// InvalidAABB returns the identity element for ExpandPoint/Union: an inverted
// box that any real box or point will grow past.
func InvalidAABB() AABB {
	return AABB{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// ExpandPoint grows the box to include p.
func (b AABB) ExpandPoint(p Vec3) AABB {
	return AABB{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Union grows the box to include another box.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

// Center returns the box centroid.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extents.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfArea returns half the surface area of the box, i.e.
// side.x*side.y + side.y*side.z + side.x*side.z — the quantity the SAH
// builder weighs by primitive count on each side of a candidate split.
func (b AABB) HalfArea() float32 {
	s := b.Size()
	return s[0]*s[1] + s[1]*s[2] + s[0]*s[2]
}

// LongestAxis returns the axis (0,1,2) with the largest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	axis := 0
	if s[1] > s[axis] {
		axis = 1
	}
	if s[2] > s[axis] {
		axis = 2
	}
	return axis
}

// Corners returns the eight corners of the box, used to compute the loose
// transformed hull of a shape's root AABB under an affine transform.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// TransformHull returns the AABB enclosing the eight corners of b after
// being transformed by t — a loose but cheap bound.
func (b AABB) TransformHull(t Transform) AABB {
	corners := b.Corners()
	out := InvalidAABB()
	for _, c := range corners {
		out = out.ExpandPoint(t.TransformPoint(c))
	}
	return out
}

// Overlaps reports whether two boxes intersect on all three axes.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

// WithinDist reports whether p is within maxDist of the box (zero if p is
// inside the box), using the sum of squared axis excesses compared against
// maxDist².
func (b AABB) WithinDist(p Vec3, maxDist float32) bool {
	var sum float32
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] {
			d := b.Min[axis] - p[axis]
			sum += d * d
		} else if p[axis] > b.Max[axis] {
			d := p[axis] - b.Max[axis]
			sum += d * d
		}
	}
	return sum <= maxDist*maxDist
}
