package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	InitialState        string        `json:"initial_state" yaml:"initial_state"`
	Seed                int64         `json:"seed" yaml:"seed"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Workers             int           `json:"workers" yaml:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	ScreenSize          float32       `json:"screen_size" yaml:"screen_size"`
	Headless            bool          `json:"headless" yaml:"headless"`
	Window              bool          `json:"window" yaml:"window"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               500,
		Height:              500,
		InitialState:        "random",
		Seed:                time.Now().UnixNano(),
		RandomDensity:       0.5,
		FrameRate:           time.Second / 30,
		MaxGenerations:      0, // run until interrupted
		Workers:             1,
		UseMemoryPool:       true,
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		ScreenSize:          700,
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the file ends
// in .yaml or .yml. Fields missing from the file keep their defaults.
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

// Validate reports the first setting that cannot start a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate %v is negative", c.FrameRate)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers %d is negative", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations %d is negative", c.MaxGenerations)
	case c.InitialState == "":
		return errors.Wrap(ErrInvalidConfig, "initial_state is empty")
	case c.Headless && c.Window:
		return errors.Wrap(ErrInvalidConfig, "headless and window are mutually exclusive")
	}
	return nil
}

// CellSize is the on-screen edge length of one cell in the windowed frontend
func (c Config) CellSize() float32 {
	if c.Width <= 0 {
		return 0
	}
	return c.ScreenSize / float32(c.Width)
}

// TPS converts the frame rate into ticks per second, at least 1
func (c Config) TPS() int {
	if c.FrameRate <= 0 {
		return 1
	}
	return max(1, int(time.Second/c.FrameRate))
}
