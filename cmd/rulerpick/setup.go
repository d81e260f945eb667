package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/rulerpick/internal/audio"
	"github.com/san-kum/rulerpick/internal/config"
	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/slider"
	"github.com/san-kum/rulerpick/internal/viz"
)

// setupLogging installs the default logger. Terminal UIs own stdout and
// stderr, so with interactive set logs go only to --log, if given.
func setupLogging(interactive bool) (func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closer, err
		}
		w, closer = f, func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

// loadConfig resolves --config, then --preset, then the defaults.
func loadConfig() (*config.Config, string, error) {
	var cfg *config.Config
	name := "default"
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
		cfg, name = c, configFile
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
		name = preset
	default:
		cfg = config.DefaultConfig()
	}

	if feedback != "" {
		cfg.Feedback.Mode = feedback
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if err := viz.CheckTheme(cfg.Display.Theme); err != nil {
		return nil, "", fmt.Errorf("display: %w", err)
	}
	return cfg, name, nil
}

// newSlider builds the picker with the configured feedback. The returned
// cleanup stops audio if it was started.
func newSlider(cfg *config.Config, j *viz.Journal) (*slider.Slider, func(), error) {
	var fb ruler.Feedback = ruler.NoFeedback
	cleanup := func() {}

	if cfg.Feedback.Mode == "audio" {
		click := audio.NewClick(cfg.Feedback.Frequency, cfg.Feedback.Volume)
		if err := click.Start(); err != nil {
			slog.Warn("audio feedback unavailable", "err", err)
		} else {
			fb, cleanup = click, click.Stop
		}
	}

	opts := []slider.Option{slider.WithFeedback(fb), slider.WithLogger(slog.Default())}
	if j != nil {
		opts = append(opts, slider.WithDelegate(j.Delegate()))
	}
	s, err := slider.New(cfg.SliderSettings(), opts...)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return s, cleanup, nil
}
