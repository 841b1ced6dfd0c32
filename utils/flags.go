package utils

import (
	"flag"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Bind attaches the configuration to the provided FlagSet. Defaults are the
// current field values, so load a config file before binding.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (shorthand)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (shorthand)")
	fs.StringVar(&c.InitialState, "initial-state", c.InitialState,
		"initial state: blinker, toad, glider, glider-gun, glider-collision, random")
	fs.StringVar(&c.InitialState, "s", c.InitialState, "initial state (shorthand)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial state")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "live cell probability for the random initial state")
	fs.Func("fps", "generations per second", func(s string) error {
		d, err := parseFPS(s)
		if err != nil {
			return err
		}
		c.FrameRate = d
		return nil
	})
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until interrupted)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per generation")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "do not render, only report stats")
	fs.BoolVar(&c.Window, "window", c.Window, "open a window (requires the ebiten build tag)")
}

func parseFPS(s string) (time.Duration, error) {
	fps, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "[parseFPS] %q is not an integer", s)
	}
	if fps <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}

func newFlagSet(name string, c *Config, configPath *string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(configPath, "config", *configPath, "JSON or YAML configuration file")
	c.Bind(fs)
	return fs
}

// ParseArgs builds a validated Config from command-line arguments. When
// -config names a file it is loaded first and the remaining flags override it.
func ParseArgs(name string, args []string, out io.Writer) (Config, error) {
	var (
		config     = DefaultConfig()
		configPath string
	)

	if err := newFlagSet(name, &config, &configPath, out).Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return config, err
		}
		config = loaded
		// flags take precedence over the file
		if err := newFlagSet(name, &config, &configPath, io.Discard).Parse(args); err != nil {
			return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
		}
	}

	return config, config.Validate()
}
