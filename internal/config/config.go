// Package config handles editor configuration loading and management.
package config

import "github.com/quartzweave/ringforge/internal/geom"

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Ring    RingConfig    `yaml:"ring"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RingConfig holds the generator parameters applied at startup, plus the
// initial outline preset.
type RingConfig struct {
	Preset         string  `yaml:"preset"`
	RadialSegments int     `yaml:"radial_segments"`
	TwistDegrees   float32 `yaml:"twist_degrees"`
	ProfileScale   float32 `yaml:"profile_scale"`
	Taper          float32 `yaml:"taper"`
	RingRadius     float32 `yaml:"ring_radius"`
	Thickness      float32 `yaml:"thickness"`
	ArcDegrees     float32 `yaml:"arc_degrees"`
	ScaleVariance  float32 `yaml:"scale_variance"`
	ScaleFrequency float32 `yaml:"scale_frequency"`
	TiltVariance   float32 `yaml:"tilt_variance"`
	TiltFrequency  float32 `yaml:"tilt_frequency"`
}

// Params converts the startup settings to generator parameters.
func (r RingConfig) Params() geom.Params {
	return geom.Params{
		RadialSegments: r.RadialSegments,
		TwistDegrees:   r.TwistDegrees,
		ProfileScale:   r.ProfileScale,
		Taper:          r.Taper,
		RingRadius:     r.RingRadius,
		Thickness:      r.Thickness,
		ArcDegrees:     r.ArcDegrees,
		ScaleVariance:  r.ScaleVariance,
		ScaleFrequency: r.ScaleFrequency,
		TiltVariance:   r.TiltVariance,
		TiltFrequency:  r.TiltFrequency,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := geom.DefaultParams()
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Ring: RingConfig{
			Preset:         "circle",
			RadialSegments: p.RadialSegments,
			TwistDegrees:   p.TwistDegrees,
			ProfileScale:   p.ProfileScale,
			Taper:          p.Taper,
			RingRadius:     p.RingRadius,
			Thickness:      p.Thickness,
			ArcDegrees:     p.ArcDegrees,
			ScaleVariance:  p.ScaleVariance,
			ScaleFrequency: p.ScaleFrequency,
			TiltVariance:   p.TiltVariance,
			TiltFrequency:  p.TiltFrequency,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
