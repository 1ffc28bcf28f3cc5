package geom

import (
	gomath "math"

	"github.com/quartzweave/ringforge/pkg/math"
)

// tiltEps is the tilt angle magnitude below which the untilted basis is used
// directly, skipping the axis rotation.
const tiltEps = 1e-4

const deg2rad = gomath.Pi / 180

// Generate resamples the control points into a smooth profile and sweeps it
// into a ring mesh. Returns nil for an empty point list so transient UI
// states (mid-preset swap) fall through as a no-op.
func Generate(points []math.Vec2, p Params) *Mesh {
	if len(points) == 0 {
		return nil
	}
	return BuildMesh(Resample(points), p)
}

// BuildMesh sweeps the given profile around the ring path described by p.
// The profile is closed and rewound counter-clockwise first, then one copy is
// placed per radial segment with twist, taper, scale-wave and tilt applied,
// adjacent copies are stitched into quads, and smooth normals are derived
// from the final triangle list.
func BuildMesh(profile []math.Vec2, p Params) *Mesh {
	if len(profile) == 0 {
		return nil
	}

	p = p.clamped()
	prof := NormalizeProfile(profile)
	profN := len(prof)

	closed := p.Closed()
	radial := p.RadialSegments
	arc := 2 * gomath.Pi
	if !closed {
		arc = float64(p.ArcDegrees) * deg2rad
		// Keep segment density proportional to the span.
		radial = int(float64(p.RadialSegments) * float64(p.ArcDegrees) / 360)
		if radial < 2 {
			radial = 2
		}
	}

	vertices := make([]Vertex, 0, radial*profN)
	bounds := newBounds()

	for seg := 0; seg < radial; seg++ {
		var t float32
		if closed {
			t = float32(seg) / float32(radial)
		} else {
			t = float32(seg) / float32(radial-1)
		}

		angle := float64(t) * arc
		sinA := float32(gomath.Sin(angle))
		cosA := float32(gomath.Cos(angle))

		r := ramp(t)
		twist := float64(p.TwistDegrees*deg2rad) * float64(r)
		sinTw := float32(gomath.Sin(twist))
		cosTw := float32(gomath.Cos(twist))

		taperFactor := 1 + p.Taper*r
		if taperFactor < minTaperFactor {
			taperFactor = minTaperFactor
		}

		wave := 1 + p.ScaleVariance*sin2pi(t*p.ScaleFrequency)
		if wave < minScaleWave {
			wave = minScaleWave
		}

		localScale := p.ProfileScale * taperFactor * wave

		center := math.Vec3{X: p.RingRadius * cosA, Y: 0, Z: p.RingRadius * sinA}
		radialDir := math.Vec3{X: cosA, Y: 0, Z: sinA}
		binormal := math.Vec3{X: 0, Y: 1, Z: 0}

		tilt := p.TiltVariance * deg2rad * sin2pi(t*p.TiltFrequency)
		if tilt > tiltEps || tilt < -tiltEps {
			tangent := math.Vec3{X: -sinA, Y: 0, Z: cosA}
			radialDir = radialDir.RotateAround(tangent, tilt)
			binormal = binormal.RotateAround(tangent, tilt)
		}

		for j, pt := range prof {
			// Twist in the profile plane, then anisotropic scale: thickness
			// only stretches the radial axis.
			px := (pt.X*cosTw - pt.Y*sinTw) * localScale * p.Thickness
			py := (pt.X*sinTw + pt.Y*cosTw) * localScale

			pos := center.Add(radialDir.Scale(px)).Add(binormal.Scale(py))
			position := [3]float32{pos.X, pos.Y, pos.Z}
			bounds.update(position)

			vertices = append(vertices, Vertex{
				Position: position,
				TexCoord: [2]float32{float32(j) / float32(profN-1), t},
			})
		}
	}

	// Stitch adjacent rings into quads. Closed sweeps wrap the seam; open
	// sweeps stop one ring early, leaving both truncated ends open.
	seams := radial
	if !closed {
		seams = radial - 1
	}

	indices := make([]uint32, 0, seams*(profN-1)*6)
	for seg := 0; seg < seams; seg++ {
		next := (seg + 1) % radial
		for j := 0; j < profN-1; j++ {
			a := uint32(seg*profN + j)
			d := a + 1
			b := uint32(next*profN + j)
			c := b + 1
			indices = append(indices, a, d, b, b, d, c)
		}
	}

	computeNormals(vertices, indices)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// ramp is a triangular envelope with smoothstep easing on each half: 0 at the
// sweep ends, 1 at the midpoint. Twist and taper use it so they act
// symmetrically about the middle of the sweep.
func ramp(t float32) float32 {
	if t < 0.5 {
		return smoothstep(t * 2)
	}
	return smoothstep((1 - t) * 2)
}

func smoothstep(x float32) float32 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return x * x * (3 - 2*x)
}

func sin2pi(x float32) float32 {
	return float32(gomath.Sin(2 * gomath.Pi * float64(x)))
}
