package components

import (
	"strings"
	"testing"
	"time"

	"github.com/druarnfield/arcspin/internal/motion"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	if s.AccentColor.Dark == "" || s.AccentColor.Light == "" {
		t.Error("AccentColor is empty")
	}
	if s.Title.Render("arcspin") == "" {
		t.Error("Title renders empty")
	}
}

func defaultGeometry() motion.Geometry {
	return motion.New(motion.DefaultConfig()).Geometry(1)
}

func TestRasterize_QuarterArc(t *testing.T) {
	g := defaultGeometry()
	r := Rasterize(g, motion.Frame{StartAngle: 0, SweepAngle: 90}, 36, 36)

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"3 o'clock", 33, 18, true},
		{"6 o'clock", 18, 33, true},
		{"9 o'clock", 2, 18, false},
		{"12 o'clock", 18, 2, false},
		{"centre", 18, 18, false},
		{"corner", 0, 0, false},
	}
	for _, tt := range tests {
		got := r.At(tt.col, tt.row) > 0
		if got != tt.want {
			t.Errorf("%s (%d,%d): covered = %v, want %v", tt.name, tt.col, tt.row, got, tt.want)
		}
	}
	if got := r.At(33, 18); got != 1 {
		t.Errorf("stroke interior coverage = %v, want 1", got)
	}
}

func TestRasterize_ExtraRotation(t *testing.T) {
	g := defaultGeometry()
	r := Rasterize(g, motion.Frame{StartAngle: 0, SweepAngle: 90, ExtraRotateAngle: 180}, 36, 36)

	if r.At(18, 2) == 0 {
		t.Error("12 o'clock should be covered after a half turn")
	}
	if r.At(18, 33) != 0 {
		t.Error("6 o'clock should be empty after a half turn")
	}
	if r.At(33, 18) != 0 {
		t.Error("3 o'clock should be empty after a half turn")
	}
}

func TestRasterize_RoundCap(t *testing.T) {
	g := defaultGeometry()
	// A zero sweep still draws the cap disc at the start point.
	r := Rasterize(g, motion.Frame{StartAngle: 0, SweepAngle: 0}, 36, 36)
	if r.At(33, 17) == 0 {
		t.Error("cap at 3 o'clock not drawn")
	}
	if r.At(18, 33) != 0 {
		t.Error("unexpected coverage away from cap")
	}
}

func TestRasterize_FullRing(t *testing.T) {
	g := defaultGeometry()
	r := Rasterize(g, motion.Frame{SweepAngle: 360}, 36, 36)
	for _, p := range [][2]int{{33, 18}, {18, 33}, {2, 18}, {18, 2}} {
		if r.At(p[0], p[1]) == 0 {
			t.Errorf("ring not covered at %v", p)
		}
	}
}

func TestRasterize_EmptyGrid(t *testing.T) {
	r := Rasterize(defaultGeometry(), motion.Frame{SweepAngle: 90}, 0, 0)
	if len(r.Cells) != 0 {
		t.Errorf("expected no cells, got %d", len(r.Cells))
	}
}

func TestShadeIndex(t *testing.T) {
	tests := []struct {
		cov  float64
		want int
	}{
		{0.25, 0}, {0.5, 1}, {0.75, 2}, {1, 3}, {0.01, 0},
	}
	for _, tt := range tests {
		if got := shadeIndex(tt.cov); got != tt.want {
			t.Errorf("shadeIndex(%v) = %d, want %d", tt.cov, got, tt.want)
		}
	}
}

func newTestSpinner() ArcSpinner {
	return NewArcSpinner(motion.New(motion.DefaultConfig()), WithRows(8), WithFPS(10))
}

func frameAt(s ArcSpinner, t time.Time) FrameMsg {
	msg := s.Tick().(FrameMsg)
	msg.Time = t
	return msg
}

func TestArcSpinner_Options(t *testing.T) {
	s := NewArcSpinner(motion.New(motion.DefaultConfig()), WithRows(6), WithFPS(20), WithDensity(2))
	if s.rows != 6 {
		t.Errorf("rows = %d, want 6", s.rows)
	}
	if s.interval != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", s.interval)
	}
	if s.Geometry().CanvasSize != 72 {
		t.Errorf("canvas = %v, want 72", s.Geometry().CanvasSize)
	}
}

func TestArcSpinner_UniqueIDs(t *testing.T) {
	a, b := newTestSpinner(), newTestSpinner()
	if a.ID() == b.ID() {
		t.Error("spinners share an ID")
	}
}

func TestArcSpinner_AdvancesOnFrames(t *testing.T) {
	s := newTestSpinner()
	base := time.Unix(1000, 0)

	s, cmd := s.Update(frameAt(s, base))
	if cmd == nil {
		t.Error("expected next frame command")
	}
	if s.Elapsed() != 0 {
		t.Errorf("first frame elapsed = %v, want 0", s.Elapsed())
	}

	s, _ = s.Update(frameAt(s, base.Add(600*time.Millisecond)))
	if s.Elapsed() != 600*time.Millisecond {
		t.Errorf("elapsed = %v, want 600ms", s.Elapsed())
	}
	want := s.Model().Sample(600 * time.Millisecond)
	if s.Frame() != want {
		t.Errorf("frame = %+v, want %+v", s.Frame(), want)
	}
}

func TestArcSpinner_IgnoresForeignFrames(t *testing.T) {
	s := newTestSpinner()
	other := newTestSpinner()

	got, cmd := s.Update(frameAt(other, time.Now()))
	if cmd != nil {
		t.Error("foreign frame should not schedule another")
	}
	if got.last != s.last {
		t.Error("foreign frame changed the clock")
	}
}

func TestArcSpinner_Pause(t *testing.T) {
	s := newTestSpinner()
	base := time.Unix(1000, 0)
	s, _ = s.Update(frameAt(s, base))
	s, _ = s.Update(frameAt(s, base.Add(100*time.Millisecond)))

	stale := frameAt(s, base.Add(200*time.Millisecond))
	s, cmd := s.SetPaused(true)
	if cmd != nil {
		t.Error("pausing should not schedule frames")
	}
	if !s.Paused() {
		t.Fatal("expected paused")
	}

	s, cmd = s.Update(frameAt(s, base.Add(5*time.Second)))
	if cmd != nil || s.Elapsed() != 100*time.Millisecond {
		t.Errorf("paused spinner advanced to %v", s.Elapsed())
	}

	s, cmd = s.SetPaused(false)
	if cmd == nil {
		t.Error("resuming should restart the frame loop")
	}

	// A frame issued before the pause must not run a second loop.
	if _, cmd := s.Update(stale); cmd != nil {
		t.Error("stale frame accepted after resume")
	}

	s, _ = s.Update(frameAt(s, base.Add(10*time.Second)))
	s, _ = s.Update(frameAt(s, base.Add(10*time.Second+50*time.Millisecond)))
	if s.Elapsed() != 150*time.Millisecond {
		t.Errorf("elapsed after resume = %v, want 150ms", s.Elapsed())
	}
}

func TestArcSpinner_View(t *testing.T) {
	s := newTestSpinner()
	out := s.View()

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("View has %d lines, want 8", len(lines))
	}
	if !strings.ContainsAny(out, string(shadeRunes[:])) {
		t.Errorf("View has no arc cells:\n%s", out)
	}
}
