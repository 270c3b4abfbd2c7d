// Package config loads tileswap settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the game and its front ends.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
}

// WindowConfig sizes the ebiten window.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // #rrggbb
}

// PuzzleConfig seeds the randomize slider.
type PuzzleConfig struct {
	Iterations    int32  `yaml:"iterations"`
	MaxIterations int32  `yaml:"max_iterations"`
	Seed          uint64 `yaml:"seed"` // 0 = from the clock
}

type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	FOV      float32 `yaml:"fov"` // vertical, degrees
}

type ControlsConfig struct {
	RotateStep      float32 `yaml:"rotate_step"`      // radians per arrow key press
	DragSensitivity float32 `yaml:"drag_sensitivity"` // radians per pixel
}

// DefaultConfig returns the stock settings.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      960,
			Height:     720,
			Title:      "tileswap",
			Background: "#bbb2ea",
		},
		Puzzle: PuzzleConfig{
			Iterations:    10,
			MaxIterations: 100,
		},
		Camera: CameraConfig{
			Distance: 7,
			FOV:      75,
		},
		Controls: ControlsConfig{
			RotateStep:      0.1,
			DragSensitivity: 0.01,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Puzzle.MaxIterations < 1:
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.Puzzle.MaxIterations)
	case c.Puzzle.Iterations < 0 || c.Puzzle.Iterations > c.Puzzle.MaxIterations:
		return fmt.Errorf("iterations must be within [0, %d], got %d", c.Puzzle.MaxIterations, c.Puzzle.Iterations)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("camera distance must be positive, got %v", c.Camera.Distance)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("fov must be within (0, 180), got %v", c.Camera.FOV)
	}

	if _, err := ParseColor(c.Window.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// BackgroundColor is the parsed Window.Background. Call Validate first.
func (c *Config) BackgroundColor() color.RGBA {
	bg, _ := ParseColor(c.Window.Background)
	return bg
}

// ParseColor parses "#rrggbb" or "#rgb" (the '#' is optional) into an
// opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	if len(hex) != 7 && len(hex) != 4 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
