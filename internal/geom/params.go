package geom

// Params controls one ring generation call. All fields are read as a single
// snapshot; the generator never observes a half-updated set.
type Params struct {
	// RadialSegments is the number of profile copies distributed around the arc.
	RadialSegments int

	// TwistDegrees is the cumulative in-plane rotation of the cross-section,
	// applied symmetrically about the sweep midpoint.
	TwistDegrees float32

	// ProfileScale uniformly scales the cross-section.
	ProfileScale float32

	// Taper scales the cross-section toward the sweep midpoint relative to the
	// ends. Negative values pinch the middle.
	Taper float32

	// RingRadius is the radius of the sweep path.
	RingRadius float32

	// Thickness scales the cross-section along the radial (in-plane) axis only.
	Thickness float32

	// ArcDegrees is the total angular span of the sweep. Values of 359.9 or
	// more produce a seam-connected closed ring.
	ArcDegrees float32

	// ScaleVariance and ScaleFrequency define a periodic scale wave along the
	// sweep: amplitude and number of cycles.
	ScaleVariance  float32
	ScaleFrequency float32

	// TiltVariance and TiltFrequency define a periodic tilt of the
	// cross-section plane out of the sweep plane: amplitude in degrees and
	// number of cycles.
	TiltVariance  float32
	TiltFrequency float32
}

// DefaultParams returns the parameter set the app starts with.
func DefaultParams() Params {
	return Params{
		RadialSegments: 96,
		TwistDegrees:   0,
		ProfileScale:   0.6,
		Taper:          0,
		RingRadius:     1.5,
		Thickness:      1,
		ArcDegrees:     360,
		ScaleVariance:  0,
		ScaleFrequency: 1.5,
		TiltVariance:   0,
		TiltFrequency:  1.5,
	}
}

// Generation floors. Parameters are clamped defensively inside the generator
// so no input combination can produce zero-area or inverted geometry; the UI
// already constrains ranges, but the generator does not rely on that.
const (
	minProfileScale = 0.05
	minTaperFactor  = 0.2
	minScaleWave    = 0.25
	minThickness    = 0.05
	minRingRadius   = 0.01
	closedArcDeg    = 359.9
)

// clamped returns a copy with every field forced into generatable range.
func (p Params) clamped() Params {
	if p.RadialSegments < 3 {
		p.RadialSegments = 3
	}
	if p.RadialSegments > 512 {
		p.RadialSegments = 512
	}
	if p.ProfileScale < minProfileScale {
		p.ProfileScale = minProfileScale
	}
	if p.Thickness < minThickness {
		p.Thickness = minThickness
	}
	if p.RingRadius < minRingRadius {
		p.RingRadius = minRingRadius
	}
	if p.ArcDegrees < 1 {
		p.ArcDegrees = 1
	}
	if p.ArcDegrees > 360 {
		p.ArcDegrees = 360
	}
	if p.ScaleFrequency < 0 {
		p.ScaleFrequency = 0
	}
	if p.TiltFrequency < 0 {
		p.TiltFrequency = 0
	}
	if p.ScaleVariance < 0 {
		p.ScaleVariance = 0
	}
	if p.TiltVariance < 0 {
		p.TiltVariance = 0
	}
	return p
}

// Closed reports whether the arc span wraps into a seam-connected loop.
func (p Params) Closed() bool {
	return p.ArcDegrees >= closedArcDeg
}
