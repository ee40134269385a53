package bvh

import "github.com/anthonyjsmith/geobvh/vmath"

// boundPrimitive is the transient per-primitive record the builder
// partitions: its bbox and centroid, its original index (so the final
// sorted-primitive permutation can be recovered once records have been
// reordered by repeated partitioning), and two SAH scratch fields that the
// builder does not currently read or write.
type boundPrimitive struct {
	bbox     vmath.AABB
	centroid vmath.Vec3
	index    uint32

	// sahCostLeft/sahCostRight are named after the equivalent scratch
	// fields in the source this library generalizes (yocto_bvh.h's
	// sorted_prim[i].sah_cost_left/right). They are unused:
	// chooseSplitSAH keeps its prefix/suffix costs in local slices.
	sahCostLeft  float32
	sahCostRight float32
}

// stagePoints builds boundPrimitive records for Point primitives: each is an
// AABB of side 2r centered on the position (r=0 if no radius array).
func stagePoints(elemIndices []uint32, positions []vmath.Vec3, radii []float32) []boundPrimitive {
	n := len(elemIndices)
	out := make([]boundPrimitive, n)
	for i, vi := range elemIndices {
		p := positions[vi]
		var r float32
		if radii != nil {
			r = radii[vi]
		}
		rv := vmath.XYZ(r, r, r)
		box := vmath.AABB{Min: p.Sub(rv), Max: p.Add(rv)}
		out[i] = boundPrimitive{bbox: box, centroid: p, index: uint32(i)}
	}
	return out
}

// stageLines builds boundPrimitive records for Line primitives: the union of
// the two endpoints' fat-point AABBs.
func stageLines(elemIndices []uint32, positions []vmath.Vec3, radii []float32) []boundPrimitive {
	n := len(elemIndices) / 2
	out := make([]boundPrimitive, n)
	for i := 0; i < n; i++ {
		i0, i1 := elemIndices[2*i], elemIndices[2*i+1]
		p0, p1 := positions[i0], positions[i1]
		var r0, r1 float32
		if radii != nil {
			r0, r1 = radii[i0], radii[i1]
		}
		box := vmath.InvalidAABB()
		box = box.Union(vmath.AABB{Min: p0.Sub(vmath.XYZ(r0, r0, r0)), Max: p0.Add(vmath.XYZ(r0, r0, r0))})
		box = box.Union(vmath.AABB{Min: p1.Sub(vmath.XYZ(r1, r1, r1)), Max: p1.Add(vmath.XYZ(r1, r1, r1))})
		out[i] = boundPrimitive{bbox: box, centroid: box.Center(), index: uint32(i)}
	}
	return out
}

// stageTriangles builds boundPrimitive records for Triangle primitives: the
// union of the three vertices, with no radius inflation.
func stageTriangles(elemIndices []uint32, positions []vmath.Vec3) []boundPrimitive {
	n := len(elemIndices) / 3
	out := make([]boundPrimitive, n)
	for i := 0; i < n; i++ {
		i0, i1, i2 := elemIndices[3*i], elemIndices[3*i+1], elemIndices[3*i+2]
		v0, v1, v2 := positions[i0], positions[i1], positions[i2]
		box := vmath.InvalidAABB().ExpandPoint(v0).ExpandPoint(v1).ExpandPoint(v2)
		out[i] = boundPrimitive{bbox: box, centroid: box.Center(), index: uint32(i)}
	}
	return out
}

// stagePrimitives dispatches to the per-kind staging function.
func stagePrimitives(kind Kind, elemIndices []uint32, positions []vmath.Vec3, radii []float32) []boundPrimitive {
	switch kind {
	case Point:
		return stagePoints(elemIndices, positions, radii)
	case Line:
		return stageLines(elemIndices, positions, radii)
	case Triangle:
		return stageTriangles(elemIndices, positions)
	default:
		panic(&ContractError{Op: "stagePrimitives", Msg: "unknown primitive kind"})
	}
}
