package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/seedlife/model"
)

// Renderer names accepted by Config.Renderer
const (
	RendererPlain  = "plain"
	RendererScreen = "screen"
	RendererTUI    = "tui"
)

// ErrInvalidConfig is returned by Validate for settings the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Particle       string        `json:"particle" yaml:"particle"`
	Alignment      string        `json:"alignment" yaml:"alignment"`
	SeedPath       string        `json:"seed_path" yaml:"seed_path"`
	Height         int           `json:"height" yaml:"height"` // 0 derives the size from the terminal
	Width          int           `json:"width" yaml:"width"`
	Workers        int           `json:"workers" yaml:"workers"`
	Delay          time.Duration `json:"delay" yaml:"delay"`
	MaxGenerations int           `json:"max_generations" yaml:"max_generations"` // 0 runs until stale
	DetectCycles   bool          `json:"detect_cycles" yaml:"detect_cycles"`
	CycleWindow    int           `json:"cycle_window" yaml:"cycle_window"`
	Step           bool          `json:"step" yaml:"step"`
	Renderer       string        `json:"renderer" yaml:"renderer"`
	ShowStats      bool          `json:"show_stats" yaml:"show_stats"`
	Plot           bool          `json:"plot" yaml:"plot"`
	UseMemoryPool  bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Particle:      string(model.DefaultParticle),
		Alignment:     model.AlignCenter.String(),
		Workers:       model.DefaultWorkers,
		Delay:         40 * time.Millisecond,
		CycleWindow:   5,
		Renderer:      RendererPlain,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from a YAML (.yaml, .yml) or JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// SaveConfig writes config as YAML
func SaveConfig(filename string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "[SaveConfig] failed to marshal config")
	}
	if err = os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "[SaveConfig] failed to write file: %+v", filename)
	}
	return nil
}

// Validate reports settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case len(c.Particle) != 1 || c.Particle[0] == model.Dead:
		return errors.Wrapf(ErrInvalidConfig, "particle must be a single non-blank character, got %q", c.Particle)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "delay must not be negative, got %s", c.Delay)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations must not be negative, got %d", c.MaxGenerations)
	case c.Height < 0 || c.Width < 0:
		return errors.Wrapf(ErrInvalidConfig, "dimensions must not be negative, got %dx%d", c.Height, c.Width)
	case c.DetectCycles && c.CycleWindow < 1:
		return errors.Wrapf(ErrInvalidConfig, "cycle window must be at least 1, got %d", c.CycleWindow)
	}

	switch c.Renderer {
	case RendererPlain, RendererScreen, RendererTUI:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown renderer %q", c.Renderer)
	}
	return nil
}

// ParticleByte returns the glyph for live cells
func (c Config) ParticleByte() byte {
	if len(c.Particle) == 0 {
		return model.DefaultParticle
	}
	return c.Particle[0]
}

// Align returns the configured alignment. Unknown names fall back to center.
func (c Config) Align() model.Alignment {
	if a, ok := model.ParseAlignment(c.Alignment); ok {
		return a
	}
	return model.AlignCenter
}

// SetAlignment stores name when it is a known alignment and keeps the current value otherwise
func (c *Config) SetAlignment(name string) bool {
	a, ok := model.ParseAlignment(name)
	if ok {
		c.Alignment = a.String()
	}
	return ok
}
