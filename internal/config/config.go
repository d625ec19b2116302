package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/druarnfield/arcspin/internal/motion"
	"github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Spinner SpinnerConfig `toml:"spinner"`
	Preview PreviewConfig `toml:"preview"`
	Log     LogConfig     `toml:"log"`
}

type SpinnerConfig struct {
	Size                    float64 `toml:"size"`
	Color                   string  `toml:"color"`
	StrokeWidth             float64 `toml:"stroke_width"`
	SweepTimeMillis         int     `toml:"sweep_time_ms"`
	RotationSpeedMultiplier float64 `toml:"rotation_speed_multiplier"`
	MinAngle                float64 `toml:"min_angle"`
	MaxAngle                float64 `toml:"max_angle"`
}

type PreviewConfig struct {
	FPS     int     `toml:"fps"`
	Rows    int     `toml:"rows"`
	Density float64 `toml:"density"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Defaults() *Config {
	return &Config{
		Spinner: SpinnerConfig{
			Size:                    motion.DefaultSize,
			Color:                   "#B476F0",
			SweepTimeMillis:         motion.DefaultSweepTimeMillis,
			RotationSpeedMultiplier: motion.DefaultRotationSpeedMultiplier,
			MinAngle:                motion.DefaultMinAngle,
			MaxAngle:                motion.DefaultMaxAngle,
		},
		Preview: PreviewConfig{FPS: 30, Rows: 15, Density: 1},
		Log:     LogConfig{Level: "info"},
	}
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Motion converts the [spinner] table into a motion.Config. Angle ranges are
// left for motion to clamp; only the colour can fail here.
func (c *Config) Motion() (motion.Config, error) {
	s := c.Spinner
	rgba, err := ParseColor(s.Color)
	if err != nil {
		return motion.Config{}, err
	}

	return motion.Config{
		Size:                    s.Size,
		Color:                   rgba,
		StrokeWidth:             s.StrokeWidth,
		SweepTimeMillis:         s.SweepTimeMillis,
		RotationSpeedMultiplier: s.RotationSpeedMultiplier,
		MinAngle:                s.MinAngle,
		MaxAngle:                s.MaxAngle,
	}, nil
}

// ParseColor accepts "#rrggbb" or "#rgb". An empty string selects the
// default accent.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return motion.DefaultColor, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
