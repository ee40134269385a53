package bvh

// nodePair is an (nodeA, nodeB) entry on the paired stack the overlap query
// walks.
type nodePair struct {
	a, b uint32
}

// OverlapShapeBounds walks the scene's node array against itself to find
// every pair of shapes whose transformed root AABBs overlap, invoking cb for
// each. excludeSelf drops (i,i) pairs. Both (i,j) and (j,i) are reported —
// callers that need a symmetric relation get it for free.
func (sc *Scene) OverlapShapeBounds(excludeSelf bool, cb func(i, j int)) int {
	if len(sc.nodes) == 0 {
		return 0
	}

	count := 0
	stack := make([]nodePair, 0, 256)
	stack = append(stack, nodePair{0, 0})

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		na := sc.nodes[p.a]
		nb := sc.nodes[p.b]
		if !na.bbox.Overlaps(nb.bbox) {
			continue
		}

		switch {
		case na.isLeaf && nb.isLeaf:
			for ii := 0; ii < int(na.count); ii++ {
				i := int(sc.sortedPrim[int(na.start)+ii])
				for jj := 0; jj < int(nb.count); jj++ {
					j := int(sc.sortedPrim[int(nb.start)+jj])
					if excludeSelf && i == j {
						continue
					}
					boxI := sc.shapes[i].rootBBox().TransformHull(sc.xforms[i])
					boxJ := sc.shapes[j].rootBBox().TransformHull(sc.xforms[j])
					if boxI.Overlaps(boxJ) {
						cb(i, j)
						count++
					}
				}
			}

		case na.isLeaf && !nb.isLeaf:
			// Only one side is a leaf: push the leaf against each child of
			// the internal node.
			stack = append(stack, nodePair{p.a, nb.start})
			stack = append(stack, nodePair{p.a, nb.start + 1})

		case !na.isLeaf && nb.isLeaf:
			stack = append(stack, nodePair{na.start, p.b})
			stack = append(stack, nodePair{na.start + 1, p.b})

		default:
			// Both internal: descend only A's children, leaving b fixed.
			// Asymmetric but complete — every (leaf,leaf) pair is still
			// eventually reached once A bottoms out and the one-leaf case
			// above descends b.
			stack = append(stack, nodePair{na.start, p.b})
			stack = append(stack, nodePair{na.start + 1, p.b})
		}
	}
	return count
}
