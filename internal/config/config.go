package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/slider"
)

const (
	DefaultMinimum     = -100.0
	DefaultMaximum     = 100.0
	DefaultTick        = 1.0
	DefaultMarkColor   = "#ffffff"
	DefaultMarkWidth   = 1.0
	DefaultMarkRadius  = 1.0
	DefaultMarkCount   = 20
	DefaultPadding     = 10.0
	DefaultAnimationMs = 200
	DefaultWidth       = 400.0
	DefaultHeight      = 60.0
	DefaultRows        = 12
	DefaultFPS         = 60
	DefaultTheme       = "minimal"
	DefaultFrequency   = 2200.0
	DefaultVolume      = 0.2
)

type Config struct {
	Slider   SliderConfig   `yaml:"slider"`
	Display  DisplayConfig  `yaml:"display"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

type SliderConfig struct {
	Minimum     float64 `yaml:"minimum"`
	Maximum     float64 `yaml:"maximum"`
	Value       float64 `yaml:"value"`
	Tick        float64 `yaml:"tick"`
	MarkColor   string  `yaml:"mark_color"`
	MarkWidth   float64 `yaml:"mark_width"`
	MarkRadius  float64 `yaml:"mark_radius"`
	MarkCount   int     `yaml:"mark_count"`
	Padding     float64 `yaml:"padding"`
	AnimationMs int     `yaml:"animation_ms"`
}

// DisplayConfig sizes the renderers. Width and Height are in pixels for the
// window and in layout units for the terminal, where Rows is the strip height.
type DisplayConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Rows   int     `yaml:"rows"`
	Theme  string  `yaml:"theme"`
	FPS    int     `yaml:"fps"`
}

type FeedbackConfig struct {
	Mode      string  `yaml:"mode"` // "none" or "audio"
	Frequency float64 `yaml:"frequency"`
	Volume    float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Slider: SliderConfig{
			Minimum:     DefaultMinimum,
			Maximum:     DefaultMaximum,
			Tick:        DefaultTick,
			MarkColor:   DefaultMarkColor,
			MarkWidth:   DefaultMarkWidth,
			MarkRadius:  DefaultMarkRadius,
			MarkCount:   DefaultMarkCount,
			Padding:     DefaultPadding,
			AnimationMs: DefaultAnimationMs,
		},
		Display: DisplayConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Rows:   DefaultRows,
			Theme:  DefaultTheme,
			FPS:    DefaultFPS,
		},
		Feedback: FeedbackConfig{
			Mode:      "none",
			Frequency: DefaultFrequency,
			Volume:    DefaultVolume,
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

func (c *Config) Validate() error {
	if err := c.SliderSettings().Validate(); err != nil {
		return err
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 || c.Display.Rows <= 0 {
		return fmt.Errorf("display: %w", ruler.ErrSize)
	}
	switch c.Feedback.Mode {
	case "", "none", "audio":
	default:
		return fmt.Errorf("unknown feedback mode %q", c.Feedback.Mode)
	}
	return nil
}

// SliderSettings converts the slider section for the controller.
func (c *Config) SliderSettings() slider.Settings {
	s := c.Slider
	return slider.Settings{
		Minimum:    s.Minimum,
		Maximum:    s.Maximum,
		Value:      s.Value,
		Tick:       s.Tick,
		MarkColor:  s.MarkColor,
		MarkWidth:  s.MarkWidth,
		MarkRadius: s.MarkRadius,
		MarkCount:  s.MarkCount,
		Padding:    s.Padding,
		Duration:   time.Duration(s.AnimationMs) * time.Millisecond,
	}
}

// Clone returns a copy that callers may edit freely.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
