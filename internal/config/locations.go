package config

import (
	"os"
	"path/filepath"
)

const fileName = "arcspin.toml"

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "arcspin")
	}
	return filepath.Join(home, ".config", "arcspin")
}

// ConfigFilePath prefers an arcspin.toml next to the executable, then the
// per-user config directory.
func ConfigFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), fileName)
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), fileName)
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "arcspin.log")
}
