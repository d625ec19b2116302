// Package motion computes the keyframe schedule of a growing and shrinking
// arc spinner and samples it as a pure function of elapsed time.
package motion

import "image/color"

const (
	DefaultSize                    = 36.0
	DefaultSweepTimeMillis         = 1300
	DefaultRotationSpeedMultiplier = 2.0
	DefaultMinAngle                = 3.0
	DefaultMaxAngle                = 270.0

	fullCircle = 360.0
)

// DefaultColor matches the dark-terminal accent of the preview palette.
var DefaultColor = color.RGBA{R: 0xB4, G: 0x76, B: 0xF0, A: 0xFF}

// Config holds the user-facing spinner parameters. Lengths are logical units,
// angles are degrees.
type Config struct {
	Size  float64
	Color color.RGBA

	// StrokeWidth of zero means Size/6.
	StrokeWidth float64

	// SweepTimeMillis is the length of one full grow/shrink cycle.
	SweepTimeMillis int

	// RotationSpeedMultiplier is how much faster the extra spin runs
	// compared to the base rotation. Values <= 1 disable the extra spin.
	RotationSpeedMultiplier float64

	MinAngle float64
	MaxAngle float64
}

// DefaultConfig returns the stock 36-unit spinner.
func DefaultConfig() Config {
	return Config{
		Size:                    DefaultSize,
		Color:                   DefaultColor,
		SweepTimeMillis:         DefaultSweepTimeMillis,
		RotationSpeedMultiplier: DefaultRotationSpeedMultiplier,
		MinAngle:                DefaultMinAngle,
		MaxAngle:                DefaultMaxAngle,
	}
}

// Normalize returns a copy with the arc angles clamped and the stroke width
// defaulted. MinAngle is resolved first; MaxAngle is then checked against the
// resolved minimum. Out-of-range values are replaced, never reported.
func (c Config) Normalize() Config {
	if !(c.MinAngle >= 0 && c.MinAngle <= fullCircle) {
		c.MinAngle = 0
	}
	if !(c.MaxAngle >= c.MinAngle && c.MaxAngle <= fullCircle) {
		c.MaxAngle = fullCircle
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = c.Size / 6
	}
	return c
}
