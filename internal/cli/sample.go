package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var sf spinnerFlags
	var step time.Duration
	var count int

	cmd := &cobra.Command{
		Use:   "sample [elapsed...]",
		Short: "Print start, sweep and extra rotation angles at elapsed times",
		Long: "Sample the three animation tracks. Elapsed times are Go durations (e.g. 650ms, 2.5s). " +
			"Without arguments, --count samples spaced --step apart are printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := sampleTimes(args, step, count)
			if err != nil {
				return err
			}

			e, err := loadEnv(cmd, &sf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printSamples(cmd.OutOrStdout(), e.model, times)
			return nil
		},
	}

	addSpinnerFlags(cmd, &sf)
	cmd.Flags().DurationVar(&step, "step", 100*time.Millisecond, "Spacing between generated samples")
	cmd.Flags().IntVar(&count, "count", 14, "Number of generated samples")

	return cmd
}

func sampleTimes(args []string, step time.Duration, count int) ([]time.Duration, error) {
	if len(args) > 0 {
		times := make([]time.Duration, 0, len(args))
		for _, a := range args {
			d, err := time.ParseDuration(a)
			if err != nil {
				return nil, fmt.Errorf("parsing elapsed time: %w", err)
			}
			times = append(times, d)
		}
		return times, nil
	}

	if count < 1 || step <= 0 {
		return nil, fmt.Errorf("--count must be positive and --step greater than zero")
	}
	times := make([]time.Duration, count)
	for i := range times {
		times[i] = time.Duration(i) * step
	}
	return times, nil
}

func printSamples(w io.Writer, m *motion.Model, times []time.Duration) {
	fmt.Fprintf(w, "%10s  %9s  %9s  %9s\n", "elapsed", "start", "sweep", "extra")
	for _, t := range times {
		f := m.Sample(t)
		fmt.Fprintf(w, "%10s  %9.3f  %9.3f  %9.3f\n", t, f.StartAngle, f.SweepAngle, f.ExtraRotateAngle)
	}
}
