package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/druarnfield/arcspin/internal/config"
	"github.com/druarnfield/arcspin/internal/logging"
	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/spf13/cobra"
)

// spinnerFlags override [spinner] config values when set on the command line.
type spinnerFlags struct {
	size        float64
	strokeWidth float64
	sweepTime   int
	multiplier  float64
	minAngle    float64
	maxAngle    float64
	color       string
}

func addSpinnerFlags(cmd *cobra.Command, f *spinnerFlags) {
	fs := cmd.Flags()
	fs.Float64Var(&f.size, "size", motion.DefaultSize, "Canvas size in logical units")
	fs.Float64Var(&f.strokeWidth, "stroke-width", 0, "Stroke width (0 means size/6)")
	fs.IntVar(&f.sweepTime, "sweep-time", motion.DefaultSweepTimeMillis, "Cycle length in milliseconds")
	fs.Float64Var(&f.multiplier, "multiplier", motion.DefaultRotationSpeedMultiplier, "Extra rotation speed multiplier")
	fs.Float64Var(&f.minAngle, "min-angle", motion.DefaultMinAngle, "Minimum arc sweep in degrees")
	fs.Float64Var(&f.maxAngle, "max-angle", motion.DefaultMaxAngle, "Maximum arc sweep in degrees")
	fs.StringVar(&f.color, "color", "", "Arc colour as #rrggbb")
}

func (f *spinnerFlags) apply(cmd *cobra.Command, s *config.SpinnerConfig) {
	fs := cmd.Flags()
	if fs.Changed("size") {
		s.Size = f.size
	}
	if fs.Changed("stroke-width") {
		s.StrokeWidth = f.strokeWidth
	}
	if fs.Changed("sweep-time") {
		s.SweepTimeMillis = f.sweepTime
	}
	if fs.Changed("multiplier") {
		s.RotationSpeedMultiplier = f.multiplier
	}
	if fs.Changed("min-angle") {
		s.MinAngle = f.minAngle
	}
	if fs.Changed("max-angle") {
		s.MaxAngle = f.maxAngle
	}
	if fs.Changed("color") {
		s.Color = f.color
	}
}

// env is what every spinner command needs after startup.
type env struct {
	cfg    *config.Config
	model  *motion.Model
	logger *slog.Logger
}

// loadEnv reads the config, applies flag overrides, sets up logging and
// builds the motion model. Notices go to notice; pass io.Discard to keep
// stdout clean.
func loadEnv(cmd *cobra.Command, f *spinnerFlags, notice io.Writer) (*env, error) {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.ConfigFilePath()
	}

	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && flagConfig == "" {
			fmt.Fprintf(notice, "No config file found, using defaults. Create %s to customize.\n\n", cfgPath)
			cfg = config.Defaults()
		} else {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	f.apply(cmd, &cfg.Spinner)

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(notice, "%v, using info\n", err)
	}
	logger, err := logging.Setup(config.LogFilePath(), level, flagVerbose)
	if err != nil {
		logger = slog.New(logging.NopHandler{})
	}

	mc, err := cfg.Motion()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if n := mc.Normalize(); n.MinAngle != mc.MinAngle || n.MaxAngle != mc.MaxAngle {
		logger.Warn("arc angles clamped",
			"min_angle", mc.MinAngle, "max_angle", mc.MaxAngle,
			"effective_min", n.MinAngle, "effective_max", n.MaxAngle)
	}

	m := motion.New(mc)
	d := m.Derived()
	logger.Debug("spinner derived",
		"config", cfgPath,
		"phases", d.Schedule.Phase,
		"sweep_speed", d.Rates.Sweep,
		"rotation_speed", d.Rates.Rotation,
		"extra_rotation_ms", d.ExtraRotationMillis)

	return &env{cfg: cfg, model: m, logger: logger}, nil
}
