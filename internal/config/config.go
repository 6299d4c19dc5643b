package config

import (
	"log/slog"
	"math"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel          string  `envconfig:"LOG_LEVEL" default:"info"`
	DeadZone          float64 `envconfig:"DEAD_ZONE" default:"5"`
	MinZoom           float64 `envconfig:"MIN_ZOOM" default:"0.1"`
	MaxZoom           float64 `envconfig:"MAX_ZOOM" default:"8"`
	RotateSnapDegrees float64 `envconfig:"ROTATE_SNAP_DEGREES" default:"15"`
	HistoryEnabled    bool    `envconfig:"HISTORY_ENABLED" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in defaults without reading the environment.
func Default() *Config {
	return &Config{
		LogLevel:          "info",
		DeadZone:          5,
		MinZoom:           0.1,
		MaxZoom:           8,
		RotateSnapDegrees: 15,
		HistoryEnabled:    true,
	}
}

// RotateSnap returns the rotation snap step in radians.
func (c *Config) RotateSnap() float64 {
	return c.RotateSnapDegrees * math.Pi / 180
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
