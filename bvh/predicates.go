package bvh

import "github.com/anthonyjsmith/geobvh/vmath"

// This file holds the geometric predicates: pure functions on primitives
// that take a ray/point query and report a hit parameter plus a
// 2-component parameterization (euv), writing neither unless the query
// actually hits. They never mutate their inputs; the traversal kernel in
// traversal.go is the only caller that tightens a ray's TMax or a query's
// max distance between calls.

// intersectRayPoint tests a ray against a fat point (radius r). Grounded on
// the closest-point-on-a-line projection used throughout
// o0olele-octree-go/geometry, specialized to a point target.
func intersectRayPoint(ray vmath.Ray, p vmath.Vec3, r float32) (t float32, euv [2]float32, ok bool) {
	dd := ray.Dir.Dot(ray.Dir)
	if dd == 0 {
		return 0, euv, false
	}
	t = p.Sub(ray.Origin).Dot(ray.Dir) / dd
	if !ray.InRange(t) {
		return 0, euv, false
	}
	q := ray.At(t)
	if p.DistSq(q) > r*r {
		return 0, euv, false
	}
	return t, [2]float32{0, 0}, true
}

// intersectRaySegment tests a ray against a fat segment (capsule-like: two
// endpoints each with their own radius) by solving the 2x2
// closest-point-between-two-lines system.
func intersectRaySegment(ray vmath.Ray, v0, v1 vmath.Vec3, r0, r1 float32) (t float32, euv [2]float32, ok bool) {
	e := v1.Sub(v0)
	w0 := ray.Origin.Sub(v0)

	a := ray.Dir.Dot(ray.Dir)
	b := ray.Dir.Dot(e)
	c := e.Dot(e)
	f := ray.Dir.Dot(w0)
	g := e.Dot(w0)

	det := a*c - b*b
	if det == 0 {
		return 0, euv, false
	}

	t = (b*g - c*f) / det
	if !ray.InRange(t) {
		return 0, euv, false
	}

	s := (a*g - b*f) / det
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}

	rayPoint := ray.At(t)
	segPoint := v0.Add(e.Mul(s))
	radius := r0*(1-s) + r1*s

	if rayPoint.DistSq(segPoint) > radius*radius {
		return 0, euv, false
	}
	return t, [2]float32{s, 0}, true
}

// intersectRayTriangle implements the Möller-Trumbore ray-triangle test.
func intersectRayTriangle(ray vmath.Ray, v0, v1, v2 vmath.Vec3) (t float32, euv [2]float32, ok bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if det == 0 {
		return 0, euv, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(v0)
	u := tvec.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, euv, false
	}

	q := tvec.Cross(e1)
	v := ray.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, euv, false
	}

	t = e2.Dot(q) * invDet
	if !ray.InRange(t) {
		return 0, euv, false
	}
	return t, [2]float32{u, v}, true
}

// intersectRayAABB is the slab test: the ray's [TMin,TMax] range is shrunk
// monotonically across the three axes and the test returns only a boolean —
// it never mutates the ray. Division by a zero direction component yields
// ±Inf, which the subsequent min/max comparisons prune correctly without a
// special case.
func intersectRayAABB(ray vmath.Ray, box vmath.AABB) bool {
	tmin, tmax := ray.TMin, ray.TMax

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Dir[axis]
		t1 := (box.Min[axis] - ray.Origin[axis]) * invD
		t2 := (box.Max[axis] - ray.Origin[axis]) * invD
		if invD < 0 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmax < tmin {
			return false
		}
	}
	return true
}

// closestPointToPoint computes the distance from query to a fat point,
// accepting only if that distance is within maxDist inflated by the point's
// radius. The written distance is the true (uninflated) Euclidean distance.
func closestPointToPoint(query, p vmath.Vec3, r, maxDist float32) (dist float32, euv [2]float32, ok bool) {
	dist = query.Dist(p)
	if dist > maxDist+r {
		return 0, euv, false
	}
	return dist, [2]float32{0, 0}, true
}

// closestPointToSegment computes the distance from query to the closest
// point on a fat segment, clamping the projection parameter to [0,1] and
// interpolating the per-endpoint radius for acceptance.
func closestPointToSegment(query, v0, v1 vmath.Vec3, r0, r1, maxDist float32) (dist float32, euv [2]float32, ok bool) {
	e := v1.Sub(v0)
	denom := e.Dot(e)

	var s float32
	if denom > 0 {
		s = query.Sub(v0).Dot(e) / denom
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}

	closest := v0.Add(e.Mul(s))
	dist = query.Dist(closest)
	radius := r0*(1-s) + r1*s
	if dist > maxDist+radius {
		return 0, euv, false
	}
	return dist, [2]float32{s, 0}, true
}

// closestPointToTriangle computes the distance from query to the closest
// point on a triangle (no radius inflation), handling all seven Voronoi
// regions of the triangle (three vertices, three edges, interior) via the
// standard closest-point-on-triangle reduction.
func closestPointToTriangle(query, v0, v1, v2 vmath.Vec3, maxDist float32) (dist float32, euv [2]float32, ok bool) {
	closest, u, v := closestPointOnTriangle(query, v0, v1, v2)
	dist = query.Dist(closest)
	if dist > maxDist {
		return 0, euv, false
	}
	return dist, [2]float32{u, v}, true
}

// closestPointOnTriangle returns the closest point to p on triangle (a,b,c)
// and its barycentric weight on b and c (the weight on a is 1-u-v), so the
// result slots directly into the euv convention Möller-Trumbore uses for
// ray-triangle hits.
func closestPointOnTriangle(p, a, b, c vmath.Vec3) (closest vmath.Vec3, u, v float32) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a, 0, 0
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b, 1, 0
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		return a.Add(ab.Mul(t)), t, 0
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c, 0, 1
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		return a.Add(ac.Mul(t)), 0, t
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(t)), 1 - t, t
	}

	denom := 1.0 / (va + vb + vc)
	t1 := vb * denom
	t2 := vc * denom
	return a.Add(ab.Mul(t1)).Add(ac.Mul(t2)), t1, t2
}
