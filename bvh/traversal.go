package bvh

import "github.com/anthonyjsmith/geobvh/vmath"

// maxStackDepth bounds the explicit node-index stack traversal uses instead
// of recursion. A binary tree built with MinLeafPrimitives=4 needs depth
// nowhere near this for any reasonable N.
const maxStackDepth = 64

// traverseRay walks s's node array for the closest (or, if anyHit, the
// first) primitive the ray strikes, pruning by AABB and tightening ray.TMax
// on every accepted hit.
func (s *Shape) traverseRay(ray vmath.Ray, anyHit bool) (elem int, t float32, euv [2]float32, hit bool) {
	if len(s.nodes) == 0 {
		return 0, 0, euv, false
	}

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		if anyHit && hit {
			return elem, t, euv, hit
		}

		sp--
		n := s.nodes[stack[sp]]
		if !intersectRayAABB(ray, n.bbox) {
			continue
		}

		if n.isLeaf {
			for i := 0; i < int(n.count); i++ {
				primIdx := int(s.sortedPrim[int(n.start)+i])
				if et, eeuv, ok := s.intersectElement(ray, primIdx); ok {
					ray.TMax = et
					elem, t, euv, hit = primIdx, et, eeuv, true
					if anyHit {
						break
					}
				}
			}
			continue
		}

		if sp+2 > maxStackDepth {
			panic(ErrStackOverflow)
		}
		left, right := n.start, n.start+1
		if ray.Dir[n.axis] >= 0 {
			stack[sp] = right
			sp++
			stack[sp] = left
			sp++
		} else {
			stack[sp] = left
			sp++
			stack[sp] = right
			sp++
		}
	}
	return elem, t, euv, hit
}

// traverseClosest walks s's node array for the primitive closest to p within
// maxDist, tightening maxDist on every accepted hit. No axis ordering
// optimization is needed: distance pruning alone is effective.
func (s *Shape) traverseClosest(p vmath.Vec3, maxDist float32) (elem int, dist float32, euv [2]float32, hit bool) {
	if len(s.nodes) == 0 {
		return 0, 0, euv, false
	}

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		n := s.nodes[stack[sp]]
		if !n.bbox.WithinDist(p, maxDist) {
			continue
		}

		if n.isLeaf {
			for i := 0; i < int(n.count); i++ {
				primIdx := int(s.sortedPrim[int(n.start)+i])
				if d, eeuv, ok := s.closestElement(p, maxDist, primIdx); ok {
					maxDist = d
					elem, dist, euv, hit = primIdx, d, eeuv, true
				}
			}
			continue
		}

		if sp+2 > maxStackDepth {
			panic(ErrStackOverflow)
		}
		stack[sp] = n.start + 1
		sp++
		stack[sp] = n.start
		sp++
	}
	return elem, dist, euv, hit
}

// Intersect returns the closest-hit result across every shape in the scene,
// recursing into shape-local space through each shape's cached inverse
// transform at scene-leaf nodes.
func (sc *Scene) Intersect(ray vmath.Ray) (Hit, bool) {
	sid, elem, t, euv, hit := sc.traverseRay(ray, false)
	if !hit {
		return Hit{}, false
	}
	return Hit{ShapeID: sid, ElementID: elem, T: t, Euv: euv}, true
}

// AnyHit reports whether the ray strikes any primitive in the scene,
// stopping traversal at the first accepted hit.
func (sc *Scene) AnyHit(ray vmath.Ray) bool {
	_, _, _, _, hit := sc.traverseRay(ray, true)
	return hit
}

// traverseRay is the scene-level counterpart of Shape.traverseRay: its
// leaves reference shape indices rather than primitives, so each referenced
// shape's root AABB is tested in world space via the node bbox and, once a
// scene leaf is reached, the ray is transformed into that shape's local
// frame before delegating to its own traversal.
func (sc *Scene) traverseRay(ray vmath.Ray, anyHit bool) (sid, elem int, t float32, euv [2]float32, hit bool) {
	if len(sc.nodes) == 0 {
		return 0, 0, 0, euv, false
	}

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		if anyHit && hit {
			return sid, elem, t, euv, hit
		}

		sp--
		n := sc.nodes[stack[sp]]
		if !intersectRayAABB(ray, n.bbox) {
			continue
		}

		if n.isLeaf {
			for i := 0; i < int(n.count); i++ {
				shapeIdx := int(sc.sortedPrim[int(n.start)+i])
				shape := sc.shapes[shapeIdx]
				localRay := ray.Transformed(sc.invXforms[shapeIdx])
				if e, et, eeuv, ok := shape.traverseRay(localRay, anyHit); ok {
					ray.TMax = et
					sid, elem, t, euv, hit = shapeIdx, e, et, eeuv, true
					if anyHit {
						break
					}
				}
			}
			continue
		}

		if sp+2 > maxStackDepth {
			panic(ErrStackOverflow)
		}
		left, right := n.start, n.start+1
		if ray.Dir[n.axis] >= 0 {
			stack[sp] = right
			sp++
			stack[sp] = left
			sp++
		} else {
			stack[sp] = left
			sp++
			stack[sp] = right
			sp++
		}
	}
	return sid, elem, t, euv, hit
}

// Closest returns the primitive closest to p within maxDist across the
// scene, or (if reqShape is non-negative) within a single shape, skipping
// the scene traversal entirely.
func (sc *Scene) Closest(p vmath.Vec3, maxDist float32, reqShape int) (PointHit, bool) {
	if reqShape >= 0 {
		if reqShape >= len(sc.shapes) {
			panic(&ContractError{Op: "Scene.Closest", Msg: "required shape id out of range"})
		}
		local := sc.invXforms[reqShape].TransformPoint(p)
		elem, dist, euv, hit := sc.shapes[reqShape].traverseClosest(local, maxDist)
		if !hit {
			return PointHit{}, false
		}
		return PointHit{ShapeID: reqShape, ElementID: elem, Dist: dist, Euv: euv}, true
	}

	sid, elem, dist, euv, hit := sc.traverseClosest(p, maxDist)
	if !hit {
		return PointHit{}, false
	}
	return PointHit{ShapeID: sid, ElementID: elem, Dist: dist, Euv: euv}, true
}

// traverseClosest is the scene-level counterpart of Shape.traverseClosest.
func (sc *Scene) traverseClosest(p vmath.Vec3, maxDist float32) (sid, elem int, dist float32, euv [2]float32, hit bool) {
	if len(sc.nodes) == 0 {
		return 0, 0, 0, euv, false
	}

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		n := sc.nodes[stack[sp]]
		if !n.bbox.WithinDist(p, maxDist) {
			continue
		}

		if n.isLeaf {
			for i := 0; i < int(n.count); i++ {
				shapeIdx := int(sc.sortedPrim[int(n.start)+i])
				local := sc.invXforms[shapeIdx].TransformPoint(p)
				if e, d, eeuv, ok := sc.shapes[shapeIdx].traverseClosest(local, maxDist); ok {
					maxDist = d
					sid, elem, dist, euv, hit = shapeIdx, e, d, eeuv, true
				}
			}
			continue
		}

		if sp+2 > maxStackDepth {
			panic(ErrStackOverflow)
		}
		stack[sp] = n.start + 1
		sp++
		stack[sp] = n.start
		sp++
	}
	return sid, elem, dist, euv, hit
}
