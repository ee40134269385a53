package vmath

import "testing"

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, -1, 2)

	if sum := a.Add(b); sum != (Vec3{5, 1, 5}) {
		t.Fatalf("expected sum {5 1 5}; got %v", sum)
	}
	if diff := a.Sub(b); diff != (Vec3{-3, 3, 1}) {
		t.Fatalf("expected diff {-3 3 1}; got %v", diff)
	}
	if dot := a.Dot(b); dot != 8 {
		t.Fatalf("expected dot 8; got %f", dot)
	}
}

func TestVec3Cross(t *testing.T) {
	x := XYZ(1, 0, 0)
	y := XYZ(0, 1, 0)

	if cross := x.Cross(y); cross != (Vec3{0, 0, 1}) {
		t.Fatalf("expected x cross y == {0 0 1}; got %v", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4)
	n := v.Normalize()
	if !almostEqual(n.Len(), 1.0, 1e-6) {
		t.Fatalf("expected normalized length 1; got %f", n.Len())
	}

	zero := Vec3{}
	if zero.Normalize() != (Vec3{}) {
		t.Fatalf("expected normalizing the zero vector to return the zero vector")
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := XYZ(1, 5, -2)
	b := XYZ(4, -1, 3)

	if min := MinVec3(a, b); min != (Vec3{1, -1, -2}) {
		t.Fatalf("expected min {1 -1 -2}; got %v", min)
	}
	if max := MaxVec3(a, b); max != (Vec3{4, 5, 3}) {
		t.Fatalf("expected max {4 5 3}; got %v", max)
	}
}

func TestDist(t *testing.T) {
	a := XYZ(0, 0, 0)
	b := XYZ(3, 4, 0)
	if d := a.Dist(b); !almostEqual(d, 5, 1e-6) {
		t.Fatalf("expected dist 5; got %f", d)
	}
}
