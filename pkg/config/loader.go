package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a configuration file.
type fileConfig struct {
	CenterWindowBeforeShow bool `yaml:"center_window_before_show"`
	EnableBlurBehindWindow bool `yaml:"enable_blur_behind_window"`
	ReadyWaitMS            int  `yaml:"ready_wait_ms"`
}

// DefaultConfigPath returns the standard per-user configuration file
// location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "frameless", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file is not an error; it yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a configuration file from an explicit path. A
// missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Set(CenterWindowBeforeShow, raw.CenterWindowBeforeShow)
	cfg.Set(EnableBlurBehindWindow, raw.EnableBlurBehindWindow)
	if raw.ReadyWaitMS > 0 {
		cfg.SetReadyWaitTime(time.Duration(raw.ReadyWaitMS) * time.Millisecond)
	}
	return cfg, nil
}
