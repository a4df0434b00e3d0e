package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGridSize           = 16
	DefaultParticleCount      = 50
	DefaultConnectionDistance = 150.0
	DefaultParticleSpeed      = 0.3
	DefaultMaxLineOpacity     = 0.3
	DefaultLineWidth          = 1.0
	DefaultGridOpacity        = 0.05

	DefaultRevealThreshold = 0.1
	DefaultRevealOffset    = 20.0
	DefaultRevealDuration  = 0.6

	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DefaultTPS          = 60
)

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	GridSize           int     `yaml:"grid_size"`
	ParticleCount      int     `yaml:"particle_count"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	ParticleSpeed      float64 `yaml:"particle_speed"`
	MaxLineOpacity     float64 `yaml:"max_line_opacity"`
	LineWidth          float64 `yaml:"line_width"`
	Seed               int64   `yaml:"seed"`

	Colors ColorConfig  `yaml:"colors"`
	Flow   FlowConfig   `yaml:"flow"`
	Reveal RevealConfig `yaml:"reveal"`
	Window WindowConfig `yaml:"window"`
	Cards  []CardConfig `yaml:"cards"`
}

type ColorConfig struct {
	Accent1     string  `yaml:"accent1"`
	Accent2     string  `yaml:"accent2"`
	Background  string  `yaml:"background"`
	Grid        string  `yaml:"grid"`
	GridOpacity float64 `yaml:"grid_opacity"`
	Line        string  `yaml:"line"`
}

// FlowConfig drives the optional noise field that steers particles.
// A zero strength disables it.
type FlowConfig struct {
	Strength float64 `yaml:"strength"`
	Scale    float64 `yaml:"scale"`
}

type RevealConfig struct {
	Threshold float64 `yaml:"threshold"`
	Offset    float64 `yaml:"offset"`
	Duration  float64 `yaml:"duration"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type CardConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

func DefaultConfig() *Config {
	return &Config{
		GridSize:           DefaultGridSize,
		ParticleCount:      DefaultParticleCount,
		ConnectionDistance: DefaultConnectionDistance,
		ParticleSpeed:      DefaultParticleSpeed,
		MaxLineOpacity:     DefaultMaxLineOpacity,
		LineWidth:          DefaultLineWidth,
		Colors: ColorConfig{
			Accent1:     "#002FFF",
			Accent2:     "#B4E03C",
			Background:  "#0F1016",
			Grid:        "#86868B",
			GridOpacity: DefaultGridOpacity,
			Line:        "#002FFF",
		},
		Flow: FlowConfig{
			Scale: 0.005,
		},
		Reveal: RevealConfig{
			Threshold: DefaultRevealThreshold,
			Offset:    DefaultRevealOffset,
			Duration:  DefaultRevealDuration,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "Computational Minimalism",
			TPS:    DefaultTPS,
		},
		Cards: []CardConfig{
			{Title: "Grid", Body: "A 16px lattice at five percent opacity."},
			{Title: "Particles", Body: "Fifty points drifting at a third of a pixel per frame."},
			{Title: "Connections", Body: "Lines fade in below 150px of separation."},
			{Title: "Minimalism", Body: "No state beyond positions and velocities."},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks numeric ranges and that every color parses.
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"grid_size", float64(c.GridSize)},
		{"particle_count", float64(c.ParticleCount)},
		{"connection_distance", c.ConnectionDistance},
		{"particle_speed", c.ParticleSpeed},
		{"max_line_opacity", c.MaxLineOpacity},
		{"line_width", c.LineWidth},
		{"colors.grid_opacity", c.Colors.GridOpacity},
		{"reveal.threshold", c.Reveal.Threshold},
		{"reveal.duration", c.Reveal.Duration},
		{"window.width", float64(c.Window.Width)},
		{"window.height", float64(c.Window.Height)},
		{"window.tps", float64(c.Window.TPS)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, p.name, p.v)
		}
	}
	if c.MaxLineOpacity > 1 || c.Colors.GridOpacity > 1 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("%w: opacities and thresholds must not exceed 1", ErrInvalid)
	}
	if c.Flow.Strength < 0 || c.Flow.Scale < 0 || c.Reveal.Offset < 0 {
		return fmt.Errorf("%w: flow and reveal offset must not be negative", ErrInvalid)
	}
	for name, hex := range map[string]string{
		"accent1":    c.Colors.Accent1,
		"accent2":    c.Colors.Accent2,
		"background": c.Colors.Background,
		"grid":       c.Colors.Grid,
		"line":       c.Colors.Line,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: colors.%s %q: %v", ErrInvalid, name, hex, err)
		}
	}
	return nil
}

// Palette is the parsed, ready-to-draw form of ColorConfig.
type Palette struct {
	Accent1    color.NRGBA
	Accent2    color.NRGBA
	Background color.NRGBA
	Grid       color.NRGBA
	Line       color.NRGBA
}

// Palette parses the configured colors. The grid color carries its opacity;
// the line color is opaque and gets its alpha per edge.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Accent1, err = ParseColor(c.Colors.Accent1, 1); err != nil {
		return p, err
	}
	if p.Accent2, err = ParseColor(c.Colors.Accent2, 1); err != nil {
		return p, err
	}
	if p.Background, err = ParseColor(c.Colors.Background, 1); err != nil {
		return p, err
	}
	if p.Grid, err = ParseColor(c.Colors.Grid, c.Colors.GridOpacity); err != nil {
		return p, err
	}
	if p.Line, err = ParseColor(c.Colors.Line, 1); err != nil {
		return p, err
	}
	return p, nil
}

// ParseColor converts "#RRGGBB" into a non-premultiplied color with the given opacity.
func ParseColor(hex string, opacity float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: Alpha(opacity)}, nil
}

// Alpha maps an opacity in [0,1] onto an 8-bit alpha, rounding to nearest.
func Alpha(opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity*255 + 0.5)
}
