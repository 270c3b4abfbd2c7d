package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, color.RGBA{R: 0xbb, G: 0xb2, B: 0xea, A: 0xff}, cfg.BackgroundColor())
	assert.Equal(t, int32(10), cfg.Puzzle.Iterations)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tileswap.yaml")
	data := []byte("puzzle:\n  iterations: 3\n  seed: 99\ncamera:\n  fov: 60\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(3), cfg.Puzzle.Iterations)
	assert.Equal(t, uint64(99), cfg.Puzzle.Seed)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, int32(100), cfg.Puzzle.MaxIterations)
	assert.Equal(t, float32(7), cfg.Camera.Distance)
	assert.Equal(t, "#bbb2ea", cfg.Window.Background)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle: [1, 2"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tileswap.yaml")
	cfg := DefaultConfig()
	cfg.Window.Title = "cube"
	cfg.Controls.RotateStep = 0.25

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "window size"},
		{"no max iterations", func(c *Config) { c.Puzzle.MaxIterations = 0 }, "max_iterations"},
		{"iterations above max", func(c *Config) { c.Puzzle.Iterations = 101 }, "iterations must be within"},
		{"negative iterations", func(c *Config) { c.Puzzle.Iterations = -1 }, "iterations must be within"},
		{"camera inside cube", func(c *Config) { c.Camera.Distance = 0 }, "camera distance"},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, "fov"},
		{"bad color", func(c *Config) { c.Window.Background = "lavender" }, "background"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	c, err = ParseColor("FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseColor("#bbb2eaff")
	assert.Error(t, err)
	_, err = ParseColor("#gg0000")
	assert.Error(t, err)
}
