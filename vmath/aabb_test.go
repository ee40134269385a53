package vmath

import "testing"

func TestInvalidAABBIsExpansionIdentity(t *testing.T) {
	box := InvalidAABB()
	p := XYZ(1, 2, 3)
	box = box.ExpandPoint(p)

	if box.Min != p || box.Max != p {
		t.Fatalf("expected expanding an invalid box by a single point to collapse to that point; got min=%v max=%v", box.Min, box.Max)
	}
}

func TestUnion(t *testing.T) {
	a := AABB{Min: XYZ(0, 0, 0), Max: XYZ(1, 1, 1)}
	b := AABB{Min: XYZ(-1, 0, 0), Max: XYZ(0.5, 2, 0.5)}

	u := a.Union(b)
	if u.Min != (Vec3{-1, 0, 0}) || u.Max != (Vec3{1, 2, 1}) {
		t.Fatalf("unexpected union result: min=%v max=%v", u.Min, u.Max)
	}
}

func TestOverlaps(t *testing.T) {
	a := AABB{Min: XYZ(0, 0, 0), Max: XYZ(1, 1, 1)}
	b := AABB{Min: XYZ(0.5, 0.5, 0.5), Max: XYZ(2, 2, 2)}
	c := AABB{Min: XYZ(2, 2, 2), Max: XYZ(3, 3, 3)}

	if !a.Overlaps(b) {
		t.Fatal("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Fatal("expected a and c not to overlap")
	}
}

func TestWithinDist(t *testing.T) {
	box := AABB{Min: XYZ(0, 0, 0), Max: XYZ(1, 1, 1)}

	if !box.WithinDist(XYZ(0.5, 0.5, 0.5), 0) {
		t.Fatal("expected a point inside the box to be within any max distance")
	}
	if !box.WithinDist(XYZ(2, 0, 0), 1.0) {
		t.Fatal("expected point at distance 1 from the box to be within max distance 1")
	}
	if box.WithinDist(XYZ(3, 0, 0), 1.0) {
		t.Fatal("expected point at distance 2 from the box not to be within max distance 1")
	}
}

func TestLongestAxis(t *testing.T) {
	box := AABB{Min: XYZ(0, 0, 0), Max: XYZ(1, 5, 2)}
	if axis := box.LongestAxis(); axis != 1 {
		t.Fatalf("expected longest axis 1; got %d", axis)
	}
}

func TestTransformHull(t *testing.T) {
	box := AABB{Min: XYZ(-1, -1, -1), Max: XYZ(1, 1, 1)}
	xform := NewTransform(Translate4(XYZ(5, 0, 0)))

	hull := box.TransformHull(xform)
	if hull.Min != (Vec3{4, -1, -1}) || hull.Max != (Vec3{6, 1, 1}) {
		t.Fatalf("unexpected translated hull: min=%v max=%v", hull.Min, hull.Max)
	}
}
