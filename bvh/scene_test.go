package bvh

import (
	"math/rand"
	"testing"

	"github.com/anthonyjsmith/geobvh/vmath"
)

// bruteForceIntersect scans every primitive of every shape directly,
// tightening a local ray copy's TMax the same way the real traversal does,
// and serves as the reference the closest-hit and ordering checks below
// are verified against.
func bruteForceIntersect(sc *Scene, ray vmath.Ray) (Hit, bool) {
	var best Hit
	hit := false
	for sid, shape := range sc.shapes {
		local := ray.Transformed(sc.invXforms[sid])
		for eid := 0; eid < shape.NumElements(); eid++ {
			if t, euv, ok := shape.intersectElement(local, eid); ok {
				if !hit || t < best.T {
					best = Hit{ShapeID: sid, ElementID: eid, T: t, Euv: euv}
					hit = true
					local.TMax = t
				}
			}
		}
	}
	return best, hit
}

func bruteForceClosest(sc *Scene, p vmath.Vec3, maxDist float32) (PointHit, bool) {
	var best PointHit
	hit := false
	for sid, shape := range sc.shapes {
		local := sc.invXforms[sid].TransformPoint(p)
		for eid := 0; eid < shape.NumElements(); eid++ {
			if d, euv, ok := shape.closestElement(local, maxDist, eid); ok {
				if !hit || d < best.Dist {
					best = PointHit{ShapeID: sid, ElementID: eid, Dist: d, Euv: euv}
					hit = true
					maxDist = d
				}
			}
		}
	}
	return best, hit
}

func randomTriangleScene(t *testing.T, seed int64, nshapes int) *Scene {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	sc := NewScene(nshapes, HeuristicSAH)
	for sid := 0; sid < nshapes; sid++ {
		ntri := 10
		positions := make([]vmath.Vec3, 3*ntri)
		indices := make([]uint32, 3*ntri)
		for i := 0; i < ntri; i++ {
			base := vmath.XYZ(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)
			positions[3*i] = base
			positions[3*i+1] = base.Add(vmath.XYZ(rng.Float32(), rng.Float32(), rng.Float32()))
			positions[3*i+2] = base.Add(vmath.XYZ(rng.Float32(), rng.Float32(), rng.Float32()))
			indices[3*i], indices[3*i+1], indices[3*i+2] = uint32(3*i), uint32(3*i+1), uint32(3*i+2)
		}
		shape := NewShape(Triangle, indices, positions, nil, HeuristicSAH)

		offset := vmath.XYZ(float32(sid)*3, 0, 0)
		sc.SetShape(sid, vmath.NewTransform(vmath.Translate4(offset)), shape)
	}
	sc.Build()
	return sc
}

func TestSceneIntersectMatchesBruteForce(t *testing.T) {
	sc := randomTriangleScene(t, 1, 4)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		origin := vmath.XYZ(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)
		dir := vmath.XYZ(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		ray := vmath.NewRay(origin, dir, 0, 1000)

		got, gotHit := sc.Intersect(ray)
		want, wantHit := bruteForceIntersect(sc, ray)

		if gotHit != wantHit {
			t.Fatalf("case %d: hit mismatch: got %v want %v", i, gotHit, wantHit)
		}
		if !gotHit {
			continue
		}
		if got.ShapeID != want.ShapeID || got.ElementID != want.ElementID {
			t.Fatalf("case %d: got sid=%d eid=%d, want sid=%d eid=%d", i, got.ShapeID, got.ElementID, want.ShapeID, want.ElementID)
		}
		if !approxEqual(got.T, want.T) {
			t.Fatalf("case %d: got t=%v, want t=%v", i, got.T, want.T)
		}
	}
}

func TestSceneAnyHitAgreesWithIntersect(t *testing.T) {
	sc := randomTriangleScene(t, 3, 3)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		origin := vmath.XYZ(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)
		dir := vmath.XYZ(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		ray := vmath.NewRay(origin, dir, 0, 1000)

		_, wantHit := sc.Intersect(ray)
		if gotHit := sc.AnyHit(ray); gotHit != wantHit {
			t.Fatalf("case %d: AnyHit=%v but Intersect hit=%v", i, gotHit, wantHit)
		}
	}
}

func TestSceneClosestMatchesBruteForce(t *testing.T) {
	sc := randomTriangleScene(t, 5, 4)
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 200; i++ {
		p := vmath.XYZ(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)

		got, gotHit := sc.Closest(p, 1e9, -1)
		want, wantHit := bruteForceClosest(sc, p, 1e9)

		if gotHit != wantHit {
			t.Fatalf("case %d: hit mismatch: got %v want %v", i, gotHit, wantHit)
		}
		if !gotHit {
			continue
		}
		if got.ShapeID != want.ShapeID || got.ElementID != want.ElementID {
			t.Fatalf("case %d: got sid=%d eid=%d, want sid=%d eid=%d", i, got.ShapeID, got.ElementID, want.ShapeID, want.ElementID)
		}
		if !approxEqual(got.Dist, want.Dist) {
			t.Fatalf("case %d: got dist=%v, want dist=%v", i, got.Dist, want.Dist)
		}
	}
}

func TestSceneRefitIdentityIsNoOp(t *testing.T) {
	sc := randomTriangleScene(t, 7, 5)

	before := make([]node, len(sc.nodes))
	copy(before, sc.nodes)

	identityXforms := make([]vmath.Transform, 5)
	for i := range identityXforms {
		identityXforms[i] = sc.xforms[i]
	}
	sc.Refit(identityXforms)

	if len(before) != len(sc.nodes) {
		t.Fatalf("refit changed node count: %d vs %d", len(before), len(sc.nodes))
	}
	for i := range before {
		if before[i].start != sc.nodes[i].start || before[i].count != sc.nodes[i].count ||
			before[i].isLeaf != sc.nodes[i].isLeaf || before[i].axis != sc.nodes[i].axis {
			t.Fatalf("refit changed topology at node %d", i)
		}
		if before[i].bbox.Min != sc.nodes[i].bbox.Min || before[i].bbox.Max != sc.nodes[i].bbox.Max {
			t.Fatalf("refit with identical xforms changed bbox at node %d: %v -> %v", i, before[i].bbox, sc.nodes[i].bbox)
		}
	}
}

func TestSceneRefitUsesPerShapeRoot(t *testing.T) {
	// Regression test: a scene with more than one shape per leaf must refit
	// every leaf shape's own root, not a fixed shape's, when bboxes change.
	// The two shapes have different geometry, so shape 0's root moved by
	// shape 1's xform does not cover shape 1.
	positions := []vmath.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	positions1 := []vmath.Vec3{{10, 0, 0}, {11, 0, 0}, {10, 1, 0}}

	sc := NewScene(2, HeuristicEqualNum)
	sc.SetShape(0, vmath.Identity(), NewShape(Triangle, []uint32{0, 1, 2}, positions, nil, HeuristicSAH))
	sc.SetShape(1, vmath.Identity(), NewShape(Triangle, []uint32{0, 1, 2}, positions1, nil, HeuristicSAH))
	sc.Build()

	moved := vmath.NewTransform(vmath.Translate4(vmath.XYZ(100, 0, 0)))
	sc.Refit([]vmath.Transform{sc.xforms[0], moved})

	// Both shapes land in the scene's single root leaf (n=2 <= MinLeafPrimitives),
	// so this exercises the leaf-level refit path directly: if the refit read
	// shape 0's root for every entry instead of each leaf shape's own root,
	// the leaf bbox would never grow to cover shape 1's new position and this
	// scene-level query would be wrongly pruned away.
	hit, ok := sc.Closest(vmath.XYZ(110.25, 0.25, 0), 1, -1)
	if !ok || hit.ShapeID != 1 {
		t.Fatalf("expected shape 1's refit root to have moved with it; got %+v ok=%v", hit, ok)
	}
}

func TestSceneOverlapIsSymmetricAndHonorsExcludeSelf(t *testing.T) {
	indices, positions := unitBoxTriangles()
	sc := NewScene(3, HeuristicSAH)
	sc.SetShape(0, vmath.Identity(), NewShape(Triangle, indices, positions, nil, HeuristicSAH))
	sc.SetShape(1, vmath.NewTransform(vmath.Translate4(vmath.XYZ(0.5, 0, 0))), NewShape(Triangle, indices, positions, nil, HeuristicSAH))
	sc.SetShape(2, vmath.NewTransform(vmath.Translate4(vmath.XYZ(10, 10, 10))), NewShape(Triangle, indices, positions, nil, HeuristicSAH))
	sc.Build()

	pairs := map[[2]int]bool{}
	sc.OverlapShapeBounds(false, func(i, j int) {
		pairs[[2]int{i, j}] = true
	})

	for p := range pairs {
		rev := [2]int{p[1], p[0]}
		if !pairs[rev] {
			t.Fatalf("pair %v present without its reverse", p)
		}
	}
	if !pairs[[2]int{0, 0}] {
		t.Fatal("expected self-pairs when exclude_self=false")
	}

	excluding := map[[2]int]bool{}
	sc.OverlapShapeBounds(true, func(i, j int) {
		excluding[[2]int{i, j}] = true
	})
	if excluding[[2]int{0, 0}] {
		t.Fatal("self-pairs must not appear when exclude_self=true")
	}
	if excluding[[2]int{0, 2}] || excluding[[2]int{2, 0}] {
		t.Fatal("shape 2 is far away and should not overlap shape 0")
	}
}
