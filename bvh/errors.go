package bvh

import "errors"

// ContractError marks a programmer error: an unknown primitive kind, a
// shape id out of range, an unset shape slot, or similar. A nil radius
// array is not one: Point and Line primitives then use radius zero.
// These are always fatal — the caller has a bug, so the package panics
// with one rather than returning an error value.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return "bvh: " + e.Op + ": " + e.Msg
}

// ErrStackOverflow is raised when a traversal's fixed-depth index stack is
// exhausted. This implies the build produced a degenerate (too-deep) tree —
// an overflow condition, not a query-time failure to be silently
// swallowed: raise maxStackDepth or lower MinLeafPrimitives and rebuild.
var ErrStackOverflow = errors.New("bvh: traversal stack exceeded maximum depth")
