package geom

import (
	gomath "math"
	"testing"

	"github.com/quartzweave/ringforge/pkg/math"
)

func circlePoints(n int, radius float32) []math.Vec2 {
	pts := make([]math.Vec2, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * gomath.Pi
		pts[i] = math.Vec2{
			X: radius * float32(gomath.Cos(a)),
			Y: radius * float32(gomath.Sin(a)),
		}
	}
	return pts
}

func TestResampleDensity(t *testing.T) {
	// 12 control points resample at 12 samples per point.
	out := Resample(circlePoints(12, 0.35))
	if len(out) != 144 {
		t.Errorf("12-point resample: got %d samples, want 144", len(out))
	}

	// Sparse input hits the density floor.
	out = Resample(circlePoints(5, 0.5))
	if len(out) != 96 {
		t.Errorf("5-point resample: got %d samples, want 96", len(out))
	}
}

func TestResamplePassthroughBelowThreePoints(t *testing.T) {
	two := []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}
	out := Resample(two)
	if len(out) != 2 || out[0] != two[0] || out[1] != two[1] {
		t.Errorf("short input should pass through, got %v", out)
	}
}

func TestResamplePassesThroughControlPoints(t *testing.T) {
	pts := circlePoints(12, 0.35)
	out := Resample(pts)

	// With 12 samples per segment, every control point lands exactly on a
	// sample (Catmull-Rom interpolates its control points at t=0).
	for i, p := range pts {
		got := out[i*12]
		if got.Distance(p) > 1e-5 {
			t.Errorf("control point %d: got %v, want %v", i, got, p)
		}
	}
}

func TestResampleStaysNearCircle(t *testing.T) {
	// A spline through points on a circle should stay close to that circle.
	out := Resample(circlePoints(12, 0.35))
	for i, p := range out {
		r := p.Length()
		if r < 0.3 || r > 0.4 {
			t.Fatalf("sample %d strayed from circle: radius %f", i, r)
		}
	}
}

func TestResampleDeterministic(t *testing.T) {
	pts := circlePoints(7, 0.4)
	a := Resample(pts)
	b := Resample(pts)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
