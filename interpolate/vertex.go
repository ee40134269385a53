// Package interpolate blends per-vertex values (positions, normals, UVs,
// whatever the caller stores per vertex) across a primitive using a hit's
// euv parameterization, the way the owning primitive's kind dictates.
package interpolate

import "github.com/anthonyjsmith/geobvh/bvh"

// Vertex blends values[0], values[1], values[2] (one slice per vertex the
// primitive kind uses; Point ignores values[1:], Line ignores values[2])
// into a newly allocated slice, using the weights the kind and euv imply:
// (1) for a point, (1-s, s) for a line, (1-u-v, u, v) for a triangle.
func Vertex(kind bvh.Kind, euv [2]float32, values [3][]float32) []float32 {
	switch kind {
	case bvh.Point:
		return append([]float32(nil), values[0]...)
	case bvh.Line:
		s := euv[0]
		return blend2(values[0], values[1], 1-s, s)
	case bvh.Triangle:
		u, v := euv[0], euv[1]
		return blend3(values[0], values[1], values[2], 1-u-v, u, v)
	default:
		panic(&bvh.ContractError{Op: "interpolate.Vertex", Msg: "unknown primitive kind"})
	}
}

func blend2(a, b []float32, wa, wb float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i]*wa + b[i]*wb
	}
	return out
}

func blend3(a, b, c []float32, wa, wb, wc float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i]*wa + b[i]*wb + c[i]*wc
	}
	return out
}
