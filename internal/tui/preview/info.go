package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/druarnfield/arcspin/internal/tui/components"
)

// InfoPanel renders the live frame angles next to the derived schedule.
type InfoPanel struct {
	styles  components.Styles
	derived motion.Derived
	geom    motion.Geometry
	visible bool
}

// NewInfoPanel creates a visible info panel for d.
func NewInfoPanel(styles components.Styles, d motion.Derived, g motion.Geometry) InfoPanel {
	return InfoPanel{styles: styles, derived: d, geom: g, visible: true}
}

// SetVisible returns a copy with updated visibility.
func (p InfoPanel) SetVisible(v bool) InfoPanel {
	p.visible = v
	return p
}

// Visible reports whether View renders anything.
func (p InfoPanel) Visible() bool { return p.visible }

// View renders the panel for the given frame. Returns empty string when not visible.
func (p InfoPanel) View(f motion.Frame, paused bool) string {
	if !p.visible {
		return ""
	}

	s := p.derived.Schedule
	c := p.derived.Config

	row := func(label, value string) string {
		return p.styles.Label.Render(label) + p.styles.Value.Render(value)
	}

	lines := []string{
		p.styles.Subtitle.Render("Frame"),
		row("start", fmt.Sprintf("%7.2f°", f.StartAngle)),
		row("sweep", fmt.Sprintf("%7.2f°", f.SweepAngle)),
		row("extra", fmt.Sprintf("%7.2f°", f.ExtraRotateAngle)),
		"",
		p.styles.Subtitle.Render("Schedule"),
		row("phases", fmt.Sprintf("%d / %d / %d / %d ms", s.Phase[0], s.Phase[1], s.Phase[2], s.Phase[3])),
		row("cycle", fmt.Sprintf("%d ms", c.SweepTimeMillis)),
		row("arc", fmt.Sprintf("%.0f° to %.0f°", c.MinAngle, c.MaxAngle)),
		row("extra spin", extraLabel(p.derived.ExtraRotationMillis)),
		row("box", fmt.Sprintf("%.1f at (%.1f, %.1f)", p.geom.ArcSize, p.geom.TopLeft.X, p.geom.TopLeft.Y)),
	}
	if paused {
		lines = append(lines, "", p.styles.Warning.Render("paused"))
	}

	return p.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func extraLabel(period int) string {
	if period == 0 {
		return "off"
	}
	return fmt.Sprintf("%d ms", period)
}
