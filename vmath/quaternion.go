package vmath

import "math"

// Quat is a rotation quaternion, used as a convenience constructor for
// building rotation matrices (scene/shape transforms only ever need the
// resulting Mat4 — traversal never manipulates quaternions directly).
type Quat struct {
	V Vec3
	W float32
}

// QuatIdent returns the identity quaternion.
func QuatIdent() Quat {
	return Quat{V: Vec3{}, W: 1.0}
}

// QuatFromAxisAngle builds a quaternion from a rotation axis and angle (radians).
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	sin := float32(math.Sin(float64(angle * 0.5)))
	cos := float32(math.Cos(float64(angle * 0.5)))
	return Quat{V: axis.Normalize().Mul(sin), W: cos}
}

// Mat4 returns the homogeneous 3D rotation matrix corresponding to the quaternion.
func (q Quat) Mat4() Mat4 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	return Mat4{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*w*z, 2*x*z + 2*w*y, 0,
		2*x*y + 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z - 2*w*x, 0,
		2*x*z - 2*w*y, 2*y*z + 2*w*x, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

// Rotate4 builds a rotation matrix from an axis and an angle in radians.
func Rotate4(axis Vec3, angle float32) Mat4 {
	return QuatFromAxisAngle(axis, angle).Mat4()
}
