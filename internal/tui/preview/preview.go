// Package preview is the full-screen terminal preview of a spinner.
package preview

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/druarnfield/arcspin/internal/tui/components"
)

// Options are the preview settings from the [preview] config table.
type Options struct {
	FPS     int
	Rows    int
	Density float64
}

// Model is the top-level tea.Model for `arcspin preview`.
type Model struct {
	styles  components.Styles
	spinner components.ArcSpinner
	info    InfoPanel
	keys    keyMap
	help    help.Model
	logger  *slog.Logger

	width    int
	height   int
	quitting bool
}

// New creates a preview of m.
func New(m *motion.Model, opts Options, logger *slog.Logger) Model {
	styles := components.DefaultStyles()
	sp := components.NewArcSpinner(m,
		components.WithRows(opts.Rows),
		components.WithFPS(opts.FPS),
		components.WithDensity(opts.Density),
	)

	h := help.New()
	h.Styles.ShortKey = styles.Subtitle
	h.Styles.ShortDesc = styles.Footer

	return Model{
		styles:  styles,
		spinner: sp,
		info:    NewInfoPanel(styles, m.Derived(), sp.Geometry()),
		keys:    defaultKeys(),
		help:    h,
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles key presses, resizes and frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Debug("preview quit", "elapsed", m.spinner.Elapsed())
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.SetPaused(!m.spinner.Paused())
			m.logger.Debug("preview pause toggled", "paused", m.spinner.Paused(), "elapsed", m.spinner.Elapsed())
			return m, cmd

		case key.Matches(msg, m.keys.Info):
			m.info = m.info.SetVisible(!m.info.Visible())
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the spinner, the info panel and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("arcspin"))
	b.WriteString("\n\n")

	canvas := m.styles.Canvas.Render(m.spinner.View())
	if panel := m.info.View(m.spinner.Frame(), m.spinner.Paused()); panel != "" {
		canvas = lipgloss.JoinHorizontal(lipgloss.Center, canvas, "  ", panel)
	}
	b.WriteString(canvas)
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Spinner returns the embedded spinner component (for testing).
func (m Model) Spinner() components.ArcSpinner {
	return m.spinner
}
