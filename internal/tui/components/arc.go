package components

import (
	"image/color"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultRows = 15
	defaultFPS  = 30
)

// shade runes from lightest to full coverage
var shadeRunes = [...]rune{'░', '▒', '▓', '█'}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg asks an ArcSpinner to advance to Time.
type FrameMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// ArcSpinner is a bubbletea component that animates a motion.Model on a
// character grid. Terminal cells are roughly twice as tall as wide, so the
// grid has twice as many columns as rows.
type ArcSpinner struct {
	model    *motion.Model
	geom     motion.Geometry
	rows     int
	interval time.Duration
	shades   [len(shadeRunes)]lipgloss.Style

	id      int
	tag     int
	paused  bool
	last    time.Time
	elapsed time.Duration
	frame   motion.Frame
}

// Option configures an ArcSpinner.
type Option func(*ArcSpinner)

// WithRows sets the grid height in terminal rows.
func WithRows(n int) Option {
	return func(s *ArcSpinner) {
		if n > 0 {
			s.rows = n
		}
	}
}

// WithFPS sets how often frames are requested.
func WithFPS(fps int) Option {
	return func(s *ArcSpinner) {
		if fps > 0 {
			s.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithDensity sets pixels per logical unit for the reported geometry.
func WithDensity(d float64) Option {
	return func(s *ArcSpinner) {
		if d > 0 {
			s.geom = s.model.Geometry(d)
		}
	}
}

// NewArcSpinner returns an ArcSpinner drawing m in its configured colour.
func NewArcSpinner(m *motion.Model, opts ...Option) ArcSpinner {
	s := ArcSpinner{
		model:    m,
		geom:     m.Geometry(1),
		rows:     defaultRows,
		interval: time.Second / defaultFPS,
		id:       nextID(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.shades = shadeStyles(m.Config().Color)
	s.frame = m.Sample(0)
	return s
}

// shadeStyles dims the base colour for partially covered cells.
func shadeStyles(c color.RGBA) [len(shadeRunes)]lipgloss.Style {
	var out [len(shadeRunes)]lipgloss.Style
	base, _ := colorful.MakeColor(c)
	black := colorful.Color{}
	for i := range out {
		dim := 0.5 * float64(len(out)-1-i) / float64(len(out)-1)
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(base.BlendLab(black, dim).Clamped().Hex()))
	}
	return out
}

func (s ArcSpinner) ID() int                   { return s.id }
func (s ArcSpinner) Frame() motion.Frame       { return s.frame }
func (s ArcSpinner) Elapsed() time.Duration    { return s.elapsed }
func (s ArcSpinner) Paused() bool              { return s.paused }
func (s ArcSpinner) Geometry() motion.Geometry { return s.geom }
func (s ArcSpinner) Model() *motion.Model      { return s.model }

// Init requests the first frame.
func (s ArcSpinner) Init() tea.Cmd {
	return s.tick()
}

// Tick returns a frame message for the current time. Use it to drive the
// spinner without waiting on the frame interval.
func (s ArcSpinner) Tick() tea.Msg {
	return FrameMsg{ID: s.id, Time: time.Now(), tag: s.tag}
}

func (s ArcSpinner) tick() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}

// Update advances the animation on its own frame messages and ignores
// everything else.
func (s ArcSpinner) Update(msg tea.Msg) (ArcSpinner, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != s.id || fm.tag != s.tag || s.paused {
		return s, nil
	}

	if !s.last.IsZero() && fm.Time.After(s.last) {
		s.elapsed += fm.Time.Sub(s.last)
	}
	s.last = fm.Time
	s.frame = s.model.Sample(s.elapsed)

	return s, s.tick()
}

// SetPaused freezes or resumes the animation clock. Resuming returns the
// command that restarts the frame loop.
func (s ArcSpinner) SetPaused(paused bool) (ArcSpinner, tea.Cmd) {
	if paused == s.paused {
		return s, nil
	}
	s.paused = paused
	s.tag++
	s.last = time.Time{}
	if paused {
		return s, nil
	}
	return s, s.tick()
}

// View renders the current frame.
func (s ArcSpinner) View() string {
	cols := s.rows * 2
	r := Rasterize(s.geom, s.frame, cols, s.rows)

	var b strings.Builder
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			cov := r.At(col, row)
			if cov <= 0 {
				b.WriteByte(' ')
				continue
			}
			i := shadeIndex(cov)
			b.WriteString(s.shades[i].Render(string(shadeRunes[i])))
		}
		if row < r.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func shadeIndex(cov float64) int {
	i := int(cov*float64(len(shadeRunes))+0.5) - 1
	return max(0, min(i, len(shadeRunes)-1))
}
