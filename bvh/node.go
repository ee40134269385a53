package bvh

import "github.com/anthonyjsmith/geobvh/vmath"

// MinLeafPrimitives is the maximum number of primitives a leaf may hold
// before the builder attempts to split it further.
const MinLeafPrimitives = 4

// node is the 32-byte tree node:
//
//	bbox  24 bytes (two vmath.Vec3)
//	start  4 bytes
//	count  2 bytes
//	isLeaf 1 byte
//	axis   1 byte
//
// For a leaf, start indexes into the owning tree's sorted-primitive
// permutation and count is the number of primitives referenced there. For
// an internal node, start indexes the first of its two children (stored
// contiguously at start and start+1) and count is always 2.
type node struct {
	bbox   vmath.AABB
	start  uint32
	count  uint16
	isLeaf bool
	axis   uint8
}
