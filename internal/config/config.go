// SPDX-License-Identifier: MIT
// Package: lvnoise/internal/config
//
// Package config loads the YAML configuration of the noisemap command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/internal/logging"
	"github.com/katalvlaran/lvnoise/preset"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "LVNOISE_CONFIG"

// Builder kinds accepted in BuilderConfig.Kind.
const (
	KindPlane    = builder.KindPlane
	KindCylinder = builder.KindCylinder
	KindSphere   = builder.KindSphere
)

// ErrInvalidConfig indicates a configuration that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Output   string        `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
	LogFile  string        `yaml:"log_file"`
	Metrics  bool          `yaml:"metrics"`
	Builder  BuilderConfig `yaml:"builder"`
	Preset   PresetConfig  `yaml:"preset"`
	Image    ImageConfig   `yaml:"image"`
}

// BuilderConfig selects and sizes the noise map builder.
type BuilderConfig struct {
	Kind   string `yaml:"kind"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Bounds holds lower/upper pairs for both axes: plane x,x,z,z; cylinder
	// angle,angle,height,height; sphere south,north,west,east. Empty keeps
	// the builder's defaults.
	Bounds   []float64 `yaml:"bounds"`
	Seamless bool      `yaml:"seamless"`
	Parallel bool      `yaml:"parallel"`
}

// PresetConfig names the preset and its tuning.
type PresetConfig struct {
	Name          string `yaml:"name"`
	preset.Params `yaml:",inline"`
}

// ImageConfig maps noise values to grey levels: Lower → black, Upper → white.
type ImageConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:   "noise.png",
		LogLevel: logging.INFO.String(),
		Builder: BuilderConfig{
			Kind:   KindPlane,
			Width:  builder.DefaultWidth,
			Height: builder.DefaultHeight,
		},
		Preset: PresetConfig{Name: preset.Terrain, Params: preset.DefaultParams()},
		Image:  ImageConfig{Lower: -1, Upper: 1},
	}
}

// Load reads a YAML file over Default. An empty path falls back to
// $LVNOISE_CONFIG; if that is empty too, Default is returned unchanged.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field; the first violation is reported wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Output == "" {
		return invalid("output path is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level: %v", err)
	}
	switch c.Builder.Kind {
	case KindPlane, KindCylinder, KindSphere:
	default:
		return invalid("builder.kind %q is not one of plane, cylinder, sphere", c.Builder.Kind)
	}
	if c.Builder.Width <= 0 || c.Builder.Height <= 0 {
		return invalid("builder size %dx%d must be positive", c.Builder.Width, c.Builder.Height)
	}
	if n := len(c.Builder.Bounds); n != 0 && n != 4 {
		return invalid("builder.bounds needs 4 values, got %d", n)
	}
	if c.Builder.Seamless && c.Builder.Kind != KindPlane {
		return invalid("builder.seamless applies to plane only")
	}
	if !contains(preset.Names(), c.Preset.Name) {
		return invalid("preset.name %q is not one of %v", c.Preset.Name, preset.Names())
	}
	if err := c.Preset.Params.Validate(); err != nil {
		return invalid("preset: %v", err)
	}
	if !(c.Image.Lower < c.Image.Upper) {
		return invalid("image range [%g, %g] is empty", c.Image.Lower, c.Image.Upper)
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c *Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
