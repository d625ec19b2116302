package motion

import "math"

// Rates are angular speeds in degrees per millisecond, except Sweep which is
// the fraction of a full circle of sweep change per millisecond.
type Rates struct {
	Sweep         float64
	Rotation      float64
	ExtraRotation float64
}

// Schedule holds the four phase boundaries of one cycle, in whole
// milliseconds, and the start angle reached at each boundary.
//
//	phase 1: the minimum arc uncurls
//	phase 2: the arc grows to the maximum
//	phase 3: the arc holds at the maximum while rotating
//	phase 4: the arc shrinks back to the minimum
type Schedule struct {
	Phase      [4]int
	StartAngle [4]float64
}

// Drift is how far the computed phase 4 start angle lands from the 360°
// the start-angle track is pinned to.
func (s Schedule) Drift() float64 {
	return s.StartAngle[3] - fullCircle
}

// Derived bundles everything computed from a normalised Config.
type Derived struct {
	Config   Config
	Rates    Rates
	Schedule Schedule

	// ExtraRotationMillis is the period of the extra spin. Zero means the
	// extra spin is disabled.
	ExtraRotationMillis int
}

// Derive normalises cfg and computes rates, phases and keyframe angles.
// It is pure: the same Config always yields an identical Derived.
func Derive(cfg Config) Derived {
	cfg = cfg.Normalize()

	minA, maxA := cfg.MinAngle, cfg.MaxAngle
	period := float64(cfg.SweepTimeMillis)

	r := Rates{
		Sweep:    (fullCircle + maxA - minA) / (fullCircle * period),
		Rotation: (fullCircle + minA - maxA) / period,
	}
	r.ExtraRotation = (cfg.RotationSpeedMultiplier - 1) * r.Rotation

	// degrees of sweep per millisecond
	perMilli := fullCircle * r.Sweep

	var s Schedule
	s.Phase[0] = truncMillis(minA / perMilli)
	s.Phase[1] = truncMillis(float64(s.Phase[0]) + (maxA-minA)/perMilli)
	s.Phase[2] = truncMillis(float64(s.Phase[1]) + (fullCircle-maxA)/perMilli)
	s.Phase[3] = truncMillis(float64(s.Phase[2]) + (maxA-minA)/perMilli)

	s.StartAngle[0] = float64(s.Phase[0]) * r.Rotation
	for i := 1; i < len(s.Phase); i++ {
		s.StartAngle[i] = s.StartAngle[i-1] + float64(s.Phase[i]-s.Phase[i-1])*r.Rotation
	}

	return Derived{
		Config:              cfg,
		Rates:               r,
		Schedule:            s,
		ExtraRotationMillis: extraRotationMillis(r.ExtraRotation),
	}
}

// truncMillis truncates toward zero. Non-finite input maps to 0.
func truncMillis(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}

func extraRotationMillis(speed float64) int {
	if !(speed > 0) {
		return 0
	}
	d := fullCircle / speed
	if math.IsInf(d, 0) || d > math.MaxInt32 {
		return 0
	}
	return int(d)
}
