package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/druarnfield/arcspin/internal/tui/components"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	var sf spinnerFlags
	var density float64

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the derived rates, phases and keyframes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, &sf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("density") {
				density = e.cfg.Preview.Density
			}
			printSchedule(cmd.OutOrStdout(), e.model, density)
			return nil
		},
	}

	addSpinnerFlags(cmd, &sf)
	cmd.Flags().Float64Var(&density, "density", 1, "Pixels per logical unit for geometry")

	return cmd
}

func printSchedule(w io.Writer, m *motion.Model, density float64) {
	styles := components.DefaultStyles()
	d := m.Derived()
	c, r, s := d.Config, d.Rates, d.Schedule

	section := func(title string, t *table.Table) {
		fmt.Fprintln(w, styles.Subtitle.Render(title))
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w)
	}
	newTable := func(headers ...string) *table.Table {
		return table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styles.Muted).
			Headers(headers...)
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

	section("Configuration", newTable("size", "stroke", "cycle ms", "multiplier", "min°", "max°").
		Row(f(c.Size), f(c.StrokeWidth), strconv.Itoa(c.SweepTimeMillis),
			f(c.RotationSpeedMultiplier), f(c.MinAngle), f(c.MaxAngle)))

	extra := "off"
	if d.ExtraRotationMillis > 0 {
		extra = strconv.Itoa(d.ExtraRotationMillis)
	}
	section("Rates", newTable("sweep /ms", "rotation °/ms", "extra °/ms", "extra period ms").
		Row(strconv.FormatFloat(r.Sweep, 'g', 6, 64), f(r.Rotation), f(r.ExtraRotation), extra))

	phases := newTable("phase", "at ms", "start°", "sweep°")
	sweep := m.SweepTrack()
	for i, at := range s.Phase {
		phases.Row(strconv.Itoa(i+1), strconv.Itoa(at), f(s.StartAngle[i]), f(sweep.Value(float64(at))))
	}
	section("Phases", phases)

	keys := newTable("at ms", "start°")
	for _, kf := range m.StartTrack().Keyframes {
		keys.Row(strconv.Itoa(kf.AtMillis), f(kf.Value))
	}
	section("Start-angle keyframes", keys)

	g := m.Geometry(density)
	section("Geometry", newTable("canvas", "arc box", "top-left", "center", "stroke px").
		Row(f(g.CanvasSize), f(g.ArcSize),
			fmt.Sprintf("(%s, %s)", f(g.TopLeft.X), f(g.TopLeft.Y)),
			fmt.Sprintf("(%s, %s)", f(g.Center.X), f(g.Center.Y)),
			f(g.StrokeWidth)))

	if drift := s.Drift(); drift != 0 {
		fmt.Fprintln(w, styles.Warning.Render(fmt.Sprintf(
			"phase 4 start angle computes to %s°; the start-angle track is pinned to 360°", f(s.StartAngle[3]))))
	}
}
