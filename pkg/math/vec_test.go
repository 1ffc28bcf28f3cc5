package math

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < eps
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{2, 4}

	mid := a.Lerp(b, 0.5)
	if !near(mid.X, 1) || !near(mid.Y, 2) {
		t.Errorf("Lerp midpoint: got %v, want (1, 2)", mid)
	}

	if a.Lerp(b, 0) != a {
		t.Error("Lerp at t=0 should return the start point")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Lerp at t=1 should return the end point")
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if !near(v.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", v.Length())
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("normalizing zero vector: got %v, want zero", zero)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	z := x.Cross(y)
	if !near(z.X, 0) || !near(z.Y, 0) || !near(z.Z, 1) {
		t.Errorf("X cross Y: got %v, want (0, 0, 1)", z)
	}
}

func TestVec3RotateAround(t *testing.T) {
	// Rotating X about Y by 90 degrees lands on -Z.
	v := Vec3{1, 0, 0}
	axis := Vec3{0, 1, 0}
	r := v.RotateAround(axis, float32(math.Pi/2))

	if !near(r.X, 0) || !near(r.Y, 0) || !near(r.Z, -1) {
		t.Errorf("rotate X about Y by 90deg: got %v, want (0, 0, -1)", r)
	}

	// Rotation preserves length.
	if !near(r.Length(), 1) {
		t.Errorf("rotation changed length: got %f, want 1", r.Length())
	}

	// Rotating a vector about itself is a no-op.
	same := axis.RotateAround(axis, 1.234)
	if !near(same.X, axis.X) || !near(same.Y, axis.Y) || !near(same.Z, axis.Z) {
		t.Errorf("rotating axis about itself: got %v, want %v", same, axis)
	}
}
