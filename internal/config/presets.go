package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"percent": preset(func(c *Config) {
		c.Slider.Minimum, c.Slider.Maximum, c.Slider.Value = 0, 100, 50
		c.Slider.MarkCount = 20
	}),
	"temperature": preset(func(c *Config) {
		c.Slider.Minimum, c.Slider.Maximum, c.Slider.Value = 16, 30, 21
		c.Slider.Tick = 0.5
		c.Slider.MarkColor = "#ffb347"
		c.Display.Theme = "sunset"
	}),
	"fine": preset(func(c *Config) {
		c.Slider.Minimum, c.Slider.Maximum = -1000, 1000
		c.Slider.Tick = 10
		c.Slider.MarkCount = 40
		c.Slider.AnimationMs = 120
	}),
	"amount": preset(func(c *Config) {
		c.Slider.Minimum, c.Slider.Maximum, c.Slider.Value = 0, 5000, 500
		c.Slider.Tick = 50
		c.Slider.MarkCount = 20
		c.Display.Theme = "ocean"
	}),
}

func preset(edit func(*Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
