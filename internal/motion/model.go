package motion

import "time"

// Frame is one sample of the three animation tracks, in degrees.
type Frame struct {
	StartAngle       float64
	SweepAngle       float64
	ExtraRotateAngle float64
}

// Point is a position on the drawing surface in pixels.
type Point struct {
	X, Y float64
}

// Geometry is the fixed placement of the arc inside a Size×Size canvas.
// The stroke is centred on the circular path and drawn with round caps.
type Geometry struct {
	CanvasSize  float64
	Center      Point
	TopLeft     Point
	ArcSize     float64
	StrokeWidth float64
}

// Radius of the circular path the stroke is centred on.
func (g Geometry) Radius() float64 {
	return g.ArcSize / 2
}

// Model is a spinner whose derived schedule has been computed once.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	derived Derived
	start   Track
	sweep   Track
	extra   LoopTrack
}

// New normalises cfg, derives the schedule and builds the three tracks.
func New(cfg Config) *Model {
	d := Derive(cfg)
	c, s := d.Config, d.Schedule
	period := c.SweepTimeMillis

	return &Model{
		derived: d,
		start: keyframeTrack(period,
			Keyframe{0, 0},
			Keyframe{s.Phase[0], s.StartAngle[0]},
			Keyframe{s.Phase[1], s.StartAngle[1]},
			Keyframe{s.Phase[2], s.StartAngle[2]},
			Keyframe{s.Phase[3], fullCircle},
		),
		sweep: keyframeTrack(period,
			Keyframe{0, c.MinAngle},
			Keyframe{s.Phase[0], c.MinAngle},
			Keyframe{s.Phase[1], c.MaxAngle},
			Keyframe{s.Phase[2], c.MaxAngle},
			Keyframe{s.Phase[3], c.MinAngle},
		),
		extra: LoopTrack{PeriodMillis: d.ExtraRotationMillis, Span: fullCircle},
	}
}

// Config returns the normalised configuration the model was built from.
func (m *Model) Config() Config { return m.derived.Config }

// Derived returns the memoised derivation.
func (m *Model) Derived() Derived { return m.derived }

func (m *Model) StartTrack() Track     { return m.start }
func (m *Model) SweepTrack() Track     { return m.sweep }
func (m *Model) ExtraTrack() LoopTrack { return m.extra }

// Sample evaluates all three tracks at the given elapsed time.
func (m *Model) Sample(elapsed time.Duration) Frame {
	return Frame{
		StartAngle:       m.start.At(elapsed),
		SweepAngle:       m.sweep.At(elapsed),
		ExtraRotateAngle: m.extra.At(elapsed),
	}
}

// Geometry maps the logical size and stroke width to pixels at the given
// density (pixels per logical unit).
func (m *Model) Geometry(density float64) Geometry {
	c := m.derived.Config
	canvas := c.Size * density
	stroke := c.StrokeWidth * density
	arc := canvas - stroke
	center := Point{X: canvas / 2, Y: canvas / 2}

	return Geometry{
		CanvasSize:  canvas,
		Center:      center,
		TopLeft:     Point{X: center.X - arc/2, Y: center.Y - arc/2},
		ArcSize:     arc,
		StrokeWidth: stroke,
	}
}
