package profile

import (
	gomath "math"

	"github.com/quartzweave/ringforge/pkg/math"
)

// PresetNames lists the built-in outlines in UI order.
var PresetNames = []string{"circle", "rounded-square", "diamond", "star"}

// Preset returns a fresh copy of the named outline, or nil if the name is
// unknown.
func Preset(name string) []math.Vec2 {
	switch name {
	case "circle":
		return Circle()
	case "rounded-square":
		return RoundedSquare()
	case "diamond":
		return Diamond()
	case "star":
		return Star()
	}
	return nil
}

// Circle is the default outline: 12 points evenly spaced on a 0.35 radius.
func Circle() []math.Vec2 {
	const n = 12
	pts := make([]math.Vec2, n)
	for i := range pts {
		a := float64(i) / n * 2 * gomath.Pi
		pts[i] = math.Vec2{
			X: 0.35 * float32(gomath.Cos(a)),
			Y: 0.35 * float32(gomath.Sin(a)),
		}
	}
	return pts
}

// RoundedSquare places two points near each corner of a square so the spline
// rounds the corners instead of overshooting them.
func RoundedSquare() []math.Vec2 {
	const half, inset = 0.4, 0.15
	return []math.Vec2{
		{X: half - inset, Y: half},
		{X: -half + inset, Y: half},
		{X: -half, Y: half - inset},
		{X: -half, Y: -half + inset},
		{X: -half + inset, Y: -half},
		{X: half - inset, Y: -half},
		{X: half, Y: -half + inset},
		{X: half, Y: half - inset},
	}
}

// Diamond is a four-point rhombus, taller than wide.
func Diamond() []math.Vec2 {
	return []math.Vec2{
		{X: 0, Y: 0.5},
		{X: 0.45, Y: 0},
		{X: 0, Y: -0.5},
		{X: -0.45, Y: 0},
	}
}

// Star alternates outer and inner radii for a five-pointed star.
func Star() []math.Vec2 {
	const n = 10
	pts := make([]math.Vec2, n)
	for i := range pts {
		r := float32(0.5)
		if i%2 == 1 {
			r = 0.22
		}
		a := float64(i)/n*2*gomath.Pi + gomath.Pi/2
		pts[i] = math.Vec2{
			X: r * float32(gomath.Cos(a)),
			Y: r * float32(gomath.Sin(a)),
		}
	}
	return pts
}
