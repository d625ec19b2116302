package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/arcspin/internal/tui/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var sf spinnerFlags
	var fps, rows int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Animate the spinner in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, &sf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := preview.Options{
				FPS:     e.cfg.Preview.FPS,
				Rows:    e.cfg.Preview.Rows,
				Density: e.cfg.Preview.Density,
			}
			if cmd.Flags().Changed("fps") {
				opts.FPS = fps
			}
			if cmd.Flags().Changed("rows") {
				opts.Rows = rows
			}

			e.logger.Info("preview started", "fps", opts.FPS, "rows", opts.Rows)
			p := tea.NewProgram(preview.New(e.model, opts, e.logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running preview: %w", err)
			}
			return nil
		},
	}

	addSpinnerFlags(cmd, &sf)
	cmd.Flags().IntVar(&fps, "fps", 30, "Frames per second")
	cmd.Flags().IntVar(&rows, "rows", 15, "Spinner height in terminal rows")

	return cmd
}
