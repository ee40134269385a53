// Package vmath is the math collaborator the bvh package builds on: 3-vectors,
// affine transforms with inverse, axis-aligned bounding boxes, and a ray
// datatype carrying a mutable [tmin,tmax] range. None of the spatial-query
// logic lives here — it is pure vector/matrix arithmetic.
package vmath

import (
	"math"

	"golang.org/x/image/math/f32"
)

// floatCmpEpsilon is the threshold below which a vector length is treated as
// zero (avoids dividing by a near-zero norm when normalizing).
const floatCmpEpsilon = 1e-12

type Vec2 f32.Vec2
type Vec3 f32.Vec3
type Vec4 f32.Vec4

// XY builds a 2 component vector.
func XY(x, y float32) Vec2 { return Vec2{x, y} }

// XYZ builds a 3 component vector.
func XYZ(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// XYZW builds a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

// Vec3 expands a 2 component vector to a Vec3.
func (v Vec2) Vec3(z float32) Vec3 { return Vec3{v[0], v[1], z} }

// Sub subtracts a vector.
func (v Vec2) Sub(v2 Vec2) Vec2 { return Vec2{v[0] - v2[0], v[1] - v2[1]} }

// Dot calculates the dot product of two vectors.
func (v Vec2) Dot(v2 Vec2) float32 { return v[0]*v2[0] + v[1]*v2[1] }

// Vec4 expands a 3 component vector to a Vec4.
func (v Vec3) Vec4(w float32) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// Add adds a vector.
func (v Vec3) Add(v2 Vec3) Vec3 { return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]} }

// Sub subtracts a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 { return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]} }

// Mul multiplies a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Neg negates a vector.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Len returns the 3 component vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// LenSq returns the squared 3 component vector length (avoids a sqrt when
// only used for comparison, e.g. ray-vs-fat-point acceptance tests).
func (v Vec3) LenSq() float32 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// Normalize normalizes a 3 component vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Dot calculates the dot product of two vectors.
func (v Vec3) Dot(v2 Vec3) float32 { return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2] }

// Cross calculates the cross product of two vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v[1]*v2[2] - v[2]*v2[1],
		v[2]*v2[0] - v[0]*v2[2],
		v[0]*v2[1] - v[1]*v2[0],
	}
}

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(v2 Vec3) float32 { return v.Sub(v2).Len() }

// DistSq returns the squared Euclidean distance between two points.
func (v Vec3) DistSq(v2 Vec3) float32 { return v.Sub(v2).LenSq() }

// Component returns the value of axis (0,1,2).
func (v Vec3) Component(axis int) float32 { return v[axis] }

// Vec3 reduces a 4 component vector to a Vec3.
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// MinVec3 returns the component-wise minimum of two vectors.
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// MaxVec3 returns the component-wise maximum of two vectors.
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

// Sub subtracts a vector.
func (v Vec4) Sub(v2 Vec4) Vec4 {
	return Vec4{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2], v[3] - v2[3]}
}

// Mul multiplies a 4 component vector with a scalar.
func (v Vec4) Mul(s float32) Vec4 { return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }
