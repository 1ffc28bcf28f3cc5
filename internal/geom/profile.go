package geom

import (
	"github.com/quartzweave/ringforge/pkg/math"
)

// NormalizeProfile returns a closed, counter-clockwise copy of the point list.
// The closure check uses exact equality: only a literal duplicate endpoint is
// treated as already closed, so epsilon-near endpoints coming out of the
// editor are still closed explicitly rather than guessed at.
func NormalizeProfile(points []math.Vec2) []math.Vec2 {
	if len(points) == 0 {
		return nil
	}

	out := make([]math.Vec2, len(points), len(points)+1)
	copy(out, points)

	if out[len(out)-1] != out[0] {
		out = append(out, out[0])
	}

	if SignedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// SignedArea computes the shoelace area of a polygon. Positive area means
// counter-clockwise winding.
func SignedArea(points []math.Vec2) float32 {
	var sum float32
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}
