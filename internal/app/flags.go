package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"pong/internal/core"
	"pong/internal/game"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64

	Autoplay bool
	Debug    bool
	LogLevel string

	// Headless only.
	Frames     int
	Fast       bool
	Screenshot string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 500, Scale: 1, TPS: 60, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "playfield width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "playfield height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&c.Autoplay, "autoplay", c.Autoplay, "let the computer steer the left paddle too")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay at start")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&c.Frames, "frames", c.Frames, "headless: stop after this many ticks (0 runs until interrupted)")
	fs.BoolVar(&c.Fast, "fast", c.Fast, "headless: tick as fast as possible instead of at -tps")
	fs.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "headless: write the final frame to this PNG file")
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %dx%d", c.Width, c.Height)
	}
	if floor := game.DefaultRules().MinField(); c.Width < floor.W || c.Height < floor.H {
		return fmt.Errorf("playfield %dx%d is smaller than the minimum %dx%d", c.Width, c.Height, floor.W, floor.H)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Frames < 0 {
		return errors.New("frames must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Field returns the playfield size.
func (c *Config) Field() core.Size { return core.Size{W: c.Width, H: c.Height} }

// SeedValue returns the configured seed, or a clock-derived one when unset.
func (c *Config) SeedValue() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
