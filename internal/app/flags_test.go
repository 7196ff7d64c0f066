package app

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-width", "640", "-height", "480", "-seed", "9",
		"-autoplay", "-frames", "120", "-fast", "-log-level", "debug",
	}))

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Autoplay)
	assert.Equal(t, 120, cfg.Frames)
	assert.True(t, cfg.Fast)
	assert.Equal(t, 60, cfg.TPS, "unset flags keep defaults")
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, NewConfig().Validate())

	cases := map[string]func(*Config){
		"zero width":    func(c *Config) { c.Width = 0 },
		"tiny field":    func(c *Config) { c.Width, c.Height = 90, 90 },
		"zero scale":    func(c *Config) { c.Scale = 0 },
		"negative tps":  func(c *Config) { c.TPS = -1 },
		"negative runs": func(c *Config) { c.Frames = -5 },
		"bad log level": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSeedValue(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 42
	assert.Equal(t, int64(42), cfg.SeedValue())

	cfg.Seed = 0
	assert.NotZero(t, cfg.SeedValue())
}
