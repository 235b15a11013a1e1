// Package config loads the scrollsnap binary's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Modes select which snapping mechanism the binary mounts.
const (
	ModeDecorator = "decorator"
	ModeBroadcast = "broadcast"
)

// Config is the top-level configuration.
type Config struct {
	FrameRate int        `yaml:"frame_rate"`
	Mode      string     `yaml:"mode"`   // decorator | broadcast
	Engine    string     `yaml:"engine"` // expr | cel
	Snap      SnapConfig `yaml:"snap"`
	DebugLog  string     `yaml:"debug_log"`
	Tail      TailConfig `yaml:"tail"`
}

// SnapConfig holds the follow predicates, one per axis. An empty expression
// disables snapping on that axis. Expressions may reference follow, items
// and count.
type SnapConfig struct {
	Vertical   string `yaml:"vertical"`
	Horizontal string `yaml:"horizontal"`
}

// TailConfig controls the tail subcommand.
type TailConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML configuration file. An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.FrameRate == 0 {
		c.FrameRate = 60
	}
	if c.Mode == "" {
		c.Mode = ModeDecorator
	}
	if c.Engine == "" {
		c.Engine = "expr"
	}
	if c.Snap.Vertical == "" && c.Snap.Horizontal == "" {
		c.Snap.Vertical = "follow"
	}
	if c.Tail.PollInterval <= 0 {
		c.Tail.PollInterval = 250 * time.Millisecond
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.FrameRate < 1 || c.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("frame_rate must be between 1 and 240, got %d", c.FrameRate))
	}
	if c.Mode != ModeDecorator && c.Mode != ModeBroadcast {
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeDecorator, ModeBroadcast, c.Mode))
	}
	if c.Engine != "expr" && c.Engine != "cel" {
		errs = append(errs, fmt.Errorf("engine must be expr or cel, got %q", c.Engine))
	}
	if c.Mode == ModeBroadcast && c.Snap.Horizontal != "" {
		errs = append(errs, errors.New("snap.horizontal is not supported in broadcast mode"))
	}
	if c.Tail.PollInterval < time.Millisecond {
		errs = append(errs, fmt.Errorf("tail.poll_interval must be at least 1ms, got %s", c.Tail.PollInterval))
	}
	return errors.Join(errs...)
}
