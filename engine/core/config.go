package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hubastard/groveui/engine/colors"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"-"`
	// Theme names a UI theme file; empty uses the built-in theme.
	Theme string `yaml:"theme"`

	ScratchAllocCapacity int        `yaml:"scratch_capacity"`
	ScratchEnableLogs    bool       `yaml:"scratch_logs"`
	LogLevel             slog.Level `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Title:                "groveui sandbox",
		Width:                1280,
		Height:               720,
		VSync:                true,
		ClearColor:           colors.DarkGray,
		ScratchAllocCapacity: 4096,
		LogLevel:             slog.LevelInfo,
	}
}

type configFile struct {
	Config     `yaml:",inline"`
	ClearColor string `yaml:"clear_color"`
	LogLevel   string `yaml:"log_level"`
}

// LoadConfig decodes a YAML config. Absent fields keep DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	f := configFile{Config: DefaultConfig()}
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg := f.Config
	if f.ClearColor != "" {
		c, err := colors.Hex(f.ClearColor)
		if err != nil {
			return Config{}, fmt.Errorf("config clear_color: %w", err)
		}
		cfg.ClearColor = c
	}
	if f.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("config log_level: %w", err)
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// LoadConfigFile reads path with LoadConfig. A missing file yields the
// defaults.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
