package bvh

import (
	"sort"
	"time"

	"github.com/anthonyjsmith/geobvh/bvhlog"
	"github.com/anthonyjsmith/geobvh/vmath"
)

// buildStats tracks node/leaf counts and maximum depth, reported through
// bvhlog once the build finishes and surfaced to callers that want a
// richer report via package bvhstats.
type buildStats struct {
	nodeCount int
	leafCount int
	maxDepth  int
	numPrims  int
}

type builder struct {
	records   []boundPrimitive
	nodes     []node
	nextFree  int
	heuristic Heuristic
	stats     buildStats
}

// buildTree partitions records into a dense node array plus the permutation
// mapping leaf slots to original primitive indices. The builder is
// single-threaded; the centroid sort is a deterministic total order (ties
// broken by original index) so rebuilding identical input produces a
// bit-identical tree.
func buildTree(label string, records []boundPrimitive, heuristic Heuristic, logger bvhlog.Logger) ([]node, []uint32, buildStats) {
	start := time.Now()

	n := len(records)
	nodeCap := 2 * n
	if nodeCap < 1 {
		nodeCap = 1
	}

	b := &builder{
		records:   records,
		nodes:     make([]node, nodeCap),
		nextFree:  1,
		heuristic: heuristic.resolve(),
	}
	b.stats.numPrims = n

	if n == 0 {
		b.nodes[0] = node{bbox: vmath.InvalidAABB(), isLeaf: true}
		b.stats.leafCount = 1
	} else {
		b.build(0, 0, n, 0)
	}

	b.nodes = b.nodes[:b.nextFree]

	sortedPrim := make([]uint32, n)
	for i := range records {
		sortedPrim[i] = records[i].index
	}

	bvhlog.BuildComplete(logger, label, b.stats.numPrims, b.stats.nodeCount, b.stats.leafCount, b.stats.maxDepth, time.Since(start))

	return b.nodes, sortedPrim, b.stats
}

// build fills in nodes[nodeIdx] with the subtree over records[start:end),
// allocating child slots from the shared nextFree counter before recursing
// so siblings always land at consecutive indices.
func (b *builder) build(nodeIdx, start, end, depth int) {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	box := vmath.InvalidAABB()
	for i := start; i < end; i++ {
		box = box.Union(b.records[i].bbox)
	}

	if end-start <= MinLeafPrimitives {
		b.emitLeaf(nodeIdx, start, end, box)
		return
	}

	axis, mid, ok := b.chooseSplit(start, end)
	if !ok {
		b.emitLeaf(nodeIdx, start, end, box)
		return
	}

	leftSlot := b.nextFree
	rightSlot := b.nextFree + 1
	b.nextFree += 2

	b.nodes[nodeIdx] = node{bbox: box, start: uint32(leftSlot), count: 2, axis: uint8(axis)}
	b.stats.nodeCount++

	b.build(leftSlot, start, mid, depth+1)
	b.build(rightSlot, mid, end, depth+1)
}

func (b *builder) emitLeaf(nodeIdx, start, end int, box vmath.AABB) {
	b.nodes[nodeIdx] = node{bbox: box, start: uint32(start), count: uint16(end - start), isLeaf: true}
	b.stats.leafCount++
}

// chooseSplit picks (axis, mid) for records[start:end) using the configured
// heuristic and leaves records[start:end) sorted along that axis so the two
// halves [start,mid) and [mid,end) are contiguous.
func (b *builder) chooseSplit(start, end int) (axis, mid int, ok bool) {
	switch b.heuristic {
	case HeuristicEqualNum:
		return b.chooseSplitEqualNum(start, end)
	default:
		return b.chooseSplitSAH(start, end)
	}
}

// chooseSplitEqualNum picks the axis with the largest centroid extent and
// splits the range at its midpoint (object median).
func (b *builder) chooseSplitEqualNum(start, end int) (int, int, bool) {
	centroidBox := vmath.InvalidAABB()
	for i := start; i < end; i++ {
		centroidBox = centroidBox.ExpandPoint(b.records[i].centroid)
	}
	axis := centroidBox.LongestAxis()
	mid := (start + end) / 2

	sub := b.records[start:end]
	sort.Slice(sub, func(i, j int) bool {
		return lessByCentroid(sub[i], sub[j], axis)
	})

	return axis, mid, mid > start
}

// chooseSplitSAH performs an exact prefix/suffix surface-area-heuristic
// sweep: for each axis, sort by centroid, compute a
// prefix "left cost" array (sum of left-prefix half-surface-areas times
// prefix length) and a symmetric suffix "right cost" array, then scan
// candidate split positions choosing the one minimizing left[i-1]+right[i].
// Ties are broken by earliest axis then earliest split index, which falls
// out naturally from scanning axes 0,1,2 in order and only replacing the
// best candidate on a strict improvement.
func (b *builder) chooseSplitSAH(start, end int) (int, int, bool) {
	n := end - start

	bestAxis := -1
	bestLocalMid := -1
	var bestCost float32
	var bestSorted []boundPrimitive

	for axis := 0; axis < 3; axis++ {
		sorted := make([]boundPrimitive, n)
		copy(sorted, b.records[start:end])
		sort.Slice(sorted, func(i, j int) bool {
			return lessByCentroid(sorted[i], sorted[j], axis)
		})

		leftCost := make([]float32, n)
		rightCost := make([]float32, n)

		leftBox := vmath.InvalidAABB()
		for i := 0; i < n; i++ {
			leftBox = leftBox.Union(sorted[i].bbox)
			leftCost[i] = leftBox.HalfArea() * float32(i+1)
		}

		rightBox := vmath.InvalidAABB()
		for i := n - 1; i >= 0; i-- {
			rightBox = rightBox.Union(sorted[i].bbox)
			rightCost[i] = rightBox.HalfArea() * float32(n-i)
		}

		for m := 2; m <= n-2; m++ {
			cost := leftCost[m-1] + rightCost[m]
			if bestAxis == -1 || cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestLocalMid = m
				bestSorted = sorted
			}
		}
	}

	if bestAxis == -1 {
		return 0, start, false
	}

	copy(b.records[start:end], bestSorted)
	return bestAxis, start + bestLocalMid, true
}

func lessByCentroid(a, b boundPrimitive, axis int) bool {
	ca, cb := a.centroid[axis], b.centroid[axis]
	if ca != cb {
		return ca < cb
	}
	return a.index < b.index
}
