package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweep/internal/sweep"
)

type Config struct {
	Width       int    `env:"SWEEP_WIDTH" envDefault:"0"`
	Height      int    `env:"SWEEP_HEIGHT" envDefault:"0"`
	Seed        uint64 `env:"SWEEP_SEED" envDefault:"0"`
	LogFile     string `env:"SWEEP_LOG_FILE" envDefault:"sweep.log"`
	Development bool   `env:"SWEEP_DEVELOPMENT" envDefault:"false"`

	// mines switches the board to a fixed layout when non-empty.
	mines []sweep.Position
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if len(c.mines) > 0 && (c.Width == 0 || c.Height == 0) {
		return fmt.Errorf("fixed mines require explicit width and height")
	}
	return nil
}

// Fixture reports whether mines come from [Config.AddMine] instead of the rng.
func (c Config) Fixture() bool {
	return len(c.mines) > 0
}

func (c Config) Mines() []sweep.Position {
	return c.mines
}

// AddMine parses s with [ParseMine] and appends it to the fixed layout.
func (c *Config) AddMine(s string) error {
	p, err := ParseMine(s)
	if err != nil {
		return err
	}
	c.mines = append(c.mines, p)
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":       c.Width,
		"height":      c.Height,
		"seed":        c.Seed,
		"log_file":    c.LogFile,
		"development": c.Development,
		"mines":       len(c.mines),
	}
}
