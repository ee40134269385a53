package bvh

import (
	"time"

	"github.com/anthonyjsmith/geobvh/bvhlog"
	"github.com/anthonyjsmith/geobvh/vmath"
)

// Scene is the scene BVH: it owns a set of shape BVHs exclusively, their
// affine transforms, and cached inverse transforms, plus its own node
// array treating each shape as a primitive with AABB equal to the
// transformed hull of the shape's root AABB.
type Scene struct {
	shapes    []*Shape
	xforms    []vmath.Transform
	invXforms []vmath.Transform
	heuristic Heuristic
	logger    bvhlog.Logger

	nodes      []node
	sortedPrim []uint32
	stats      buildStats
}

// NewScene allocates a scene for nshapes shape slots, all initially unset.
// Every slot must be filled via SetShape before Build is called.
func NewScene(nshapes int, h Heuristic) *Scene {
	return &Scene{
		shapes:    make([]*Shape, nshapes),
		xforms:    make([]vmath.Transform, nshapes),
		invXforms: make([]vmath.Transform, nshapes),
		heuristic: h,
	}
}

// SetLogger attaches a logger the scene passes down to every shape it owns
// at Build time, and uses itself to report refit statistics at Notice level.
func (sc *Scene) SetLogger(l bvhlog.Logger) {
	sc.logger = l
}

// SetShape installs shape at sid under xform, replacing whatever was
// previously installed there. The scene takes ownership of shape.
func (sc *Scene) SetShape(sid int, xform vmath.Transform, shape *Shape) {
	if sid < 0 || sid >= len(sc.shapes) {
		panic(&ContractError{Op: "Scene.SetShape", Msg: "shape id out of range"})
	}
	sc.shapes[sid] = shape
	sc.xforms[sid] = xform
	sc.invXforms[sid] = vmath.Transform{Fwd: xform.Inv, Inv: xform.Fwd}
}

// Build builds every owned shape BVH depth-first, then builds the scene's
// own node array over the shapes' transformed root AABBs.
func (sc *Scene) Build() {
	records := make([]boundPrimitive, len(sc.shapes))
	for i, s := range sc.shapes {
		if s == nil {
			panic(&ContractError{Op: "Scene.Build", Msg: "shape slot not set"})
		}
		s.SetLogger(sc.logger)
		s.Build()

		box := s.rootBBox().TransformHull(sc.xforms[i])
		records[i] = boundPrimitive{bbox: box, centroid: box.Center(), index: uint32(i)}
	}

	sc.nodes, sc.sortedPrim, sc.stats = buildTree("scene", records, sc.heuristic, sc.logger)
}

// Refit updates xforms/invXforms and recomputes every node's bbox bottom-up
// without changing topology. Leaves take the transformed hull of their
// referenced shapes' root AABBs, read from shapes[idx] — not a fixed
// shapes[0] — for each idx the leaf actually references.
func (sc *Scene) Refit(xforms []vmath.Transform) {
	if len(xforms) != len(sc.shapes) {
		panic(&ContractError{Op: "Scene.Refit", Msg: "xform count mismatch"})
	}
	start := time.Now()
	for i, x := range xforms {
		sc.xforms[i] = x
		sc.invXforms[i] = vmath.Transform{Fwd: x.Inv, Inv: x.Fwd}
	}

	if len(sc.nodes) > 0 {
		sc.refitNode(0)
	}

	bvhlog.RefitComplete(sc.logger, len(sc.shapes), time.Since(start))
}

// NodeCount, LeafCount, and MaxDepth expose the scene's own build statistics
// (over shapes-as-primitives) for package bvhstats to render.
func (sc *Scene) NodeCount() int { return sc.stats.nodeCount }
func (sc *Scene) LeafCount() int { return sc.stats.leafCount }
func (sc *Scene) MaxDepth() int  { return sc.stats.maxDepth }

// Shapes returns the scene's owned shapes, in sid order, so callers (such as
// package bvhstats) can report per-shape statistics without the scene
// depending on them.
func (sc *Scene) Shapes() []*Shape { return sc.shapes }

func (sc *Scene) refitNode(idx uint32) vmath.AABB {
	n := &sc.nodes[idx]

	if n.isLeaf {
		box := vmath.InvalidAABB()
		for i := 0; i < int(n.count); i++ {
			shapeIdx := sc.sortedPrim[int(n.start)+i]
			box = box.Union(sc.shapes[shapeIdx].rootBBox().TransformHull(sc.xforms[shapeIdx]))
		}
		n.bbox = box
		return box
	}

	left := sc.refitNode(n.start)
	right := sc.refitNode(n.start + 1)
	n.bbox = left.Union(right)
	return n.bbox
}
