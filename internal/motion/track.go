package motion

import (
	"math"
	"time"
)

// Keyframe pins a track value at a millisecond offset within its period.
type Keyframe struct {
	AtMillis int
	Value    float64
}

// Track is a piecewise-linear curve through keyframes that restarts every
// PeriodMillis. Keyframes are ordered by time; the first is at 0 and the
// last at PeriodMillis.
type Track struct {
	PeriodMillis int
	Keyframes    []Keyframe
}

// keyframeTrack builds a track whose value is held from the last explicit
// keyframe until the end of the period.
func keyframeTrack(period int, frames ...Keyframe) Track {
	last := frames[len(frames)-1]
	if last.AtMillis < period {
		frames = append(frames, Keyframe{AtMillis: period, Value: last.Value})
	}
	return Track{PeriodMillis: period, Keyframes: frames}
}

// Value evaluates the track at offset milliseconds into a single period.
// Offsets outside [0, PeriodMillis] are clamped, so Value(PeriodMillis)
// returns the closing keyframe rather than restarting.
func (t Track) Value(offset float64) float64 {
	kf := t.Keyframes
	if len(kf) == 0 {
		return 0
	}
	if !(offset > float64(kf[0].AtMillis)) {
		return kf[0].Value
	}
	for i := 1; i < len(kf); i++ {
		next := kf[i]
		at := float64(next.AtMillis)
		if offset > at {
			continue
		}
		prev := kf[i-1]
		span := at - float64(prev.AtMillis)
		if offset == at || span <= 0 {
			return next.Value
		}
		frac := (offset - float64(prev.AtMillis)) / span
		return prev.Value + (next.Value-prev.Value)*frac
	}
	return kf[len(kf)-1].Value
}

// At evaluates the track at an elapsed time, restarting every period.
func (t Track) At(elapsed time.Duration) float64 {
	return t.Value(cycleOffset(elapsed, t.PeriodMillis))
}

// LoopTrack ramps linearly from 0 to Span over PeriodMillis and restarts.
// A zero period yields a constant 0.
type LoopTrack struct {
	PeriodMillis int
	Span         float64
}

// Value evaluates the ramp at offset milliseconds into a period.
func (l LoopTrack) Value(offset float64) float64 {
	if l.PeriodMillis <= 0 {
		return 0
	}
	offset = math.Max(0, math.Min(offset, float64(l.PeriodMillis)))
	return l.Span * offset / float64(l.PeriodMillis)
}

// At evaluates the ramp at an elapsed time, restarting every period.
func (l LoopTrack) At(elapsed time.Duration) float64 {
	return l.Value(cycleOffset(elapsed, l.PeriodMillis))
}

// cycleOffset maps elapsed time to fractional milliseconds in [0, period).
func cycleOffset(elapsed time.Duration, period int) float64 {
	if period <= 0 {
		return 0
	}
	p := time.Duration(period) * time.Millisecond
	rem := elapsed % p
	if rem < 0 {
		rem += p
	}
	return float64(rem) / float64(time.Millisecond)
}
