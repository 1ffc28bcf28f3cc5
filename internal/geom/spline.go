package geom

import (
	"github.com/quartzweave/ringforge/pkg/math"
)

// Spline resampling density: every control point contributes this many curve
// samples, with a floor so sparse sketches still shade smoothly.
const (
	samplesPerPoint = 12
	minSamples      = 96
)

// endpointEps is the distance below which the first and last resampled points
// are considered a closed-spline duplicate. Closure is re-added explicitly by
// NormalizeProfile, so the duplicate is dropped here.
const endpointEps = 1e-5

// Resample interpolates a smooth closed curve through the control points with
// a uniform closed Catmull-Rom spline (tension 0.5) and returns it as an
// evenly sampled open point list. Fewer than 3 points pass through unchanged.
func Resample(points []math.Vec2) []math.Vec2 {
	n := len(points)
	if n < 3 {
		return points
	}

	samples := n * samplesPerPoint
	if samples < minSamples {
		samples = minSamples
	}

	out := make([]math.Vec2, 0, samples)
	for s := 0; s < samples; s++ {
		// Curve parameter over the whole closed loop: one unit per segment.
		u := float64(s) / float64(samples) * float64(n)
		seg := int(u)
		if seg > n-1 {
			seg = n - 1
		}
		t := float32(u - float64(seg))

		p0 := points[(seg-1+n)%n]
		p1 := points[seg]
		p2 := points[(seg+1)%n]
		p3 := points[(seg+2)%n]
		out = append(out, catmullRom(p0, p1, p2, p3, t))
	}

	// A closed spline can land its final sample on top of the first.
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) < endpointEps {
		out = out[:len(out)-1]
	}

	return out
}

// catmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at
// local parameter t in [0, 1].
func catmullRom(p0, p1, p2, p3 math.Vec2, t float32) math.Vec2 {
	t2 := t * t
	t3 := t2 * t

	return math.Vec2{
		X: 0.5 * (2*p1.X +
			(-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y +
			(-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
