// Package abi holds the numeric tag values fixed for ABI stability where a
// C-callable layer exists. No cgo export shim lives in this module; this
// package is the stable, reviewed source of truth a future cgo layer
// would bind against.
package abi

const (
	// Point corresponds to bvh.Point.
	Point = 1
	// Line corresponds to bvh.Line.
	Line = 2
	// Triangle corresponds to bvh.Triangle.
	Triangle = 3
)

const (
	// HeuristicDefault corresponds to bvh.HeuristicDefault (aliases SAH).
	HeuristicDefault = 0
	// HeuristicEqualNum corresponds to bvh.HeuristicEqualNum.
	HeuristicEqualNum = 1
	// HeuristicSAH corresponds to bvh.HeuristicSAH.
	HeuristicSAH = 2
)
