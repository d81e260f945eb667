package automation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/rulerpick/internal/clock"
	"github.com/san-kum/rulerpick/internal/config"
	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/slider"
)

// Sample is the picker value after an event or an animation step.
type Sample struct {
	T     float64 `json:"t"`
	Value float64 `json:"value"`
	Event string  `json:"event"`
}

// Notification is one value-changed delivery to the delegate.
type Notification struct {
	T     float64 `json:"t"`
	Value float64 `json:"value"`
}

type Trace struct {
	Name          string         `json:"name"`
	Preset        string         `json:"preset"`
	Minimum       float64        `json:"minimum"`
	Maximum       float64        `json:"maximum"`
	Tick          float64        `json:"tick"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	Began         int            `json:"began"`
	Ended         int            `json:"ended"`
	Final         float64        `json:"final"`
	Samples       []Sample       `json:"-"`
	Notifications []Notification `json:"notifications"`
}

// Values returns the sampled values in order.
func (t *Trace) Values() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Value
	}
	return out
}

var epoch = time.Unix(0, 0).UTC()

// Run replays the script on a manual clock. Between events and after the last
// one the settle animation is stepped at each due time. cfg may be nil, in
// which case the script's preset (or the default config) is used.
func Run(ctx context.Context, s *Script, cfg *config.Config) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		name := s.Preset
		if name == "" {
			name = "default"
		}
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, s.Preset)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	width, height := s.Width, s.Height
	if width <= 0 {
		width = cfg.Display.Width
	}
	if height <= 0 {
		height = cfg.Display.Height
	}

	clk := clock.NewManual(epoch)
	since := func() float64 { return clk.Now().Sub(epoch).Seconds() }

	tr := &Trace{Name: s.Name, Preset: s.Preset, Width: width, Height: height}
	delegate := slider.Delegate{
		OnTrackingBegin: func() { tr.Began++ },
		OnTrackingEnd:   func() { tr.Ended++ },
		OnValueChanged: func(v float64) {
			tr.Notifications = append(tr.Notifications, Notification{T: since(), Value: v})
		},
	}
	sl, err := slider.New(cfg.SliderSettings(),
		slider.WithClock(clk),
		slider.WithDelegate(delegate),
		slider.WithLogger(slog.Default().With("script", s.Name)),
	)
	if err != nil {
		return nil, err
	}
	sl.Resize(width, height)
	tr.Minimum, tr.Maximum = sl.Bounds()
	tr.Tick = sl.Tick()
	if tr.Tick == 0 && len(s.Events) > 0 {
		return nil, fmt.Errorf("script %q: %w", s.Name, ruler.ErrNotTrackable)
	}

	record := func(event string) {
		tr.Samples = append(tr.Samples, Sample{T: since(), Value: sl.Value(), Event: event})
	}
	settle := func(until time.Time, bounded bool) {
		for sl.Settling() {
			due, ok := sl.NextStep()
			if !ok || (bounded && due.After(until)) {
				return
			}
			clk.Set(due)
			if sl.Step() {
				record("step")
			}
		}
	}

	record("init")
	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return tr, fmt.Errorf("event %d: %w", i, err)
		}
		at := epoch.Add(time.Duration(ev.AtMs) * time.Millisecond)
		settle(at, true)
		clk.Set(at)
		switch ev.Kind {
		case KindStart:
			sl.DragStart(ev.X)
		case KindMove:
			sl.DragMove(ev.X)
		case KindEnd:
			sl.DragEnd(ev.X)
		}
		record(ev.Kind)
	}

	end := clk.Now().Add(time.Duration(s.SettleMs) * time.Millisecond)
	settle(end, false)
	if clk.Now().Before(end) {
		clk.Set(end)
		record("idle")
	}

	tr.Final = sl.Value()
	slog.Debug("script replayed", "script", s.Name, "samples", len(tr.Samples), "final", tr.Final)
	return tr, nil
}
