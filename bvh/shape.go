package bvh

import (
	"github.com/anthonyjsmith/geobvh/bvhlog"
	"github.com/anthonyjsmith/geobvh/vmath"
)

// Shape is the per-shape BVH over primitives of a single kind. It borrows
// elemIndices, positions, and radii for its lifetime — it does not own the
// vertex/index data — and owns only the node array and the
// sorted-primitive permutation it builds.
type Shape struct {
	Kind Kind

	elemIndices []uint32
	positions   []vmath.Vec3
	radii       []float32
	heuristic   Heuristic
	logger      bvhlog.Logger

	nodes      []node
	sortedPrim []uint32
	stats      buildStats
}

// NewShape constructs (but does not build) a shape BVH over elemIndices,
// grouped arity-at-a-time per kind, referencing vertex data in positions and
// (optionally) radii. radii may be nil; Point and Line primitives then treat
// every vertex's radius as zero.
func NewShape(kind Kind, elemIndices []uint32, positions []vmath.Vec3, radii []float32, h Heuristic) *Shape {
	return &Shape{
		Kind:        kind,
		elemIndices: elemIndices,
		positions:   positions,
		radii:       radii,
		heuristic:   h,
	}
}

// SetLogger attaches a logger used to report build statistics at Debug level.
func (s *Shape) SetLogger(l bvhlog.Logger) {
	s.logger = l
}

// NumElements returns the number of primitives of s.Kind the borrowed
// elemIndices stream describes.
func (s *Shape) NumElements() int {
	return len(s.elemIndices) / s.Kind.arity()
}

// Build stages bound-primitive records for every element and invokes the
// builder, populating s.nodes and s.sortedPrim.
func (s *Shape) Build() {
	records := stagePrimitives(s.Kind, s.elemIndices, s.positions, s.radii)
	s.nodes, s.sortedPrim, s.stats = buildTree("shape", records, s.heuristic, s.logger)
}

// NodeCount, LeafCount, and MaxDepth expose build statistics for package
// bvhstats to render; they are zero until Build has run.
func (s *Shape) NodeCount() int { return s.stats.nodeCount }
func (s *Shape) LeafCount() int { return s.stats.leafCount }
func (s *Shape) MaxDepth() int  { return s.stats.maxDepth }

// rootBBox returns the AABB of the shape's root node; InvalidAABB() if the
// shape has not been built.
func (s *Shape) rootBBox() vmath.AABB {
	if len(s.nodes) == 0 {
		return vmath.InvalidAABB()
	}
	return s.nodes[0].bbox
}

// element returns the vertex positions and (for Point/Line) radii of the
// idx'th primitive of the shape's kind.
func (s *Shape) element(idx int) (v0, v1, v2 vmath.Vec3, r0, r1 float32) {
	arity := s.Kind.arity()
	base := idx * arity

	switch s.Kind {
	case Point:
		vi := s.elemIndices[base]
		v0 = s.positions[vi]
		if s.radii != nil {
			r0 = s.radii[vi]
		}
	case Line:
		i0, i1 := s.elemIndices[base], s.elemIndices[base+1]
		v0, v1 = s.positions[i0], s.positions[i1]
		if s.radii != nil {
			r0, r1 = s.radii[i0], s.radii[i1]
		}
	case Triangle:
		i0, i1, i2 := s.elemIndices[base], s.elemIndices[base+1], s.elemIndices[base+2]
		v0, v1, v2 = s.positions[i0], s.positions[i1], s.positions[i2]
	default:
		panic(&ContractError{Op: "Shape.element", Msg: "unknown primitive kind"})
	}
	return
}

// intersectElement runs the kind-appropriate ray predicate against the
// idx'th primitive.
func (s *Shape) intersectElement(ray vmath.Ray, idx int) (t float32, euv [2]float32, ok bool) {
	v0, v1, v2, r0, r1 := s.element(idx)
	switch s.Kind {
	case Point:
		return intersectRayPoint(ray, v0, r0)
	case Line:
		return intersectRaySegment(ray, v0, v1, r0, r1)
	case Triangle:
		return intersectRayTriangle(ray, v0, v1, v2)
	default:
		panic(&ContractError{Op: "Shape.intersectElement", Msg: "unknown primitive kind"})
	}
}

// closestElement runs the kind-appropriate point predicate against the
// idx'th primitive.
func (s *Shape) closestElement(p vmath.Vec3, maxDist float32, idx int) (dist float32, euv [2]float32, ok bool) {
	v0, v1, v2, r0, r1 := s.element(idx)
	switch s.Kind {
	case Point:
		return closestPointToPoint(p, v0, r0, maxDist)
	case Line:
		return closestPointToSegment(p, v0, v1, r0, r1, maxDist)
	case Triangle:
		return closestPointToTriangle(p, v0, v1, v2, maxDist)
	default:
		panic(&ContractError{Op: "Shape.closestElement", Msg: "unknown primitive kind"})
	}
}
