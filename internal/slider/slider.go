package slider

import (
	"log/slog"
	"time"

	"github.com/san-kum/rulerpick/internal/clock"
	"github.com/san-kum/rulerpick/internal/geometry"
	"github.com/san-kum/rulerpick/internal/gesture"
	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/snap"
)

type Slider struct {
	model    *ruler.Model
	tracker  *gesture.Tracker
	anim     *snap.Animator
	clock    clock.Clock
	feedback ruler.Feedback
	delegate Delegate
	log      *slog.Logger

	markColor  string
	markWidth  float64
	markRadius float64
	markCount  int
	padding    float64

	width, height float64
	animating     bool
	dirty         bool
}

func New(s Settings, opts ...Option) (*Slider, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	model, err := ruler.NewModel(s.Minimum, s.Maximum, s.Value, s.Tick)
	if err != nil {
		return nil, err
	}

	sl := &Slider{
		model:      model,
		anim:       snap.New(s.Duration),
		clock:      clock.System{},
		feedback:   ruler.NoFeedback,
		log:        slog.Default(),
		markColor:  s.MarkColor,
		markWidth:  s.MarkWidth,
		markRadius: s.MarkRadius,
		markCount:  s.MarkCount,
		padding:    s.Padding,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(sl)
	}
	if sl.log == nil {
		sl.log = slog.Default()
	}
	sl.tracker = gesture.New(model, sl.feedback)
	model.OnDirty(func() { sl.dirty = true })
	model.OnChange(func(v float64) { sl.delegate.valueChanged(v) })
	return sl, nil
}

func (s *Slider) Value() float64 { return s.model.Value() }

// SetValue moves the picker directly. It does not cancel a running settle.
func (s *Slider) SetValue(v float64) { s.model.SetValue(v) }

func (s *Slider) Tick() float64 { return s.model.Tick() }

func (s *Slider) SetTick(t float64) error { return s.model.SetTick(t) }

func (s *Slider) Bounds() (float64, float64) {
	return s.model.Minimum(), s.model.Maximum()
}

func (s *Slider) SetBounds(minimum, maximum float64) error {
	return s.model.SetBounds(minimum, maximum)
}

func (s *Slider) Padding() float64 { return s.padding }

func (s *Slider) SetPadding(p float64) {
	s.padding = p
	s.dirty = true
}

func (s *Slider) MarkColor() string { return s.markColor }

// Resize sets the strip size the layout is computed for.
func (s *Slider) Resize(width, height float64) {
	s.width, s.height = width, height
	s.dirty = true
}

func (s *Slider) Size() (float64, float64) { return s.width, s.height }

// Settings reports the current configuration.
func (s *Slider) Settings() Settings {
	return Settings{
		Minimum:    s.model.Minimum(),
		Maximum:    s.model.Maximum(),
		Value:      s.model.Value(),
		Tick:       s.model.Tick(),
		MarkColor:  s.markColor,
		MarkWidth:  s.markWidth,
		MarkRadius: s.markRadius,
		MarkCount:  s.markCount,
		Padding:    s.padding,
		Duration:   s.anim.Duration(),
	}
}

// Tracking reports whether a drag session is open.
func (s *Slider) Tracking() bool { return s.tracker.Active() }

// Animating is the redraw-only flag raised while the finger is down.
func (s *Slider) Animating() bool { return s.animating }

// Settling reports whether a snap animation is running.
func (s *Slider) Settling() bool { return s.anim.Active() }

// Interval is how often hosts should call Step while settling.
func (s *Slider) Interval() time.Duration { return s.anim.Interval() }

// NextStep is when the next animation step falls due.
func (s *Slider) NextStep() (time.Time, bool) { return s.anim.NextDue() }

func (s *Slider) NeedsRedraw() bool { return s.dirty }

// MarkDrawn clears the redraw flag once the host has painted.
func (s *Slider) MarkDrawn() { s.dirty = false }

func (s *Slider) setAnimating(v bool) {
	s.animating = v
	s.dirty = true
}

// DragStart opens a drag at x. It reports false when the tick is zero.
func (s *Slider) DragStart(x float64) bool {
	if !s.model.Trackable() {
		return false
	}
	if s.anim.Active() {
		s.anim.Cancel()
		s.log.Debug("snap cancelled by drag", "value", s.model.Value())
	}
	if s.tracker.Active() {
		s.tracker.Cancel()
		s.delegate.trackingEnd()
		s.log.Debug("stale drag ended", "value", s.model.Value())
	}
	s.tracker.Begin(x)
	s.delegate.trackingBegin()
	s.setAnimating(true)
	s.log.Debug("tracking began", "x", x, "value", s.model.Value())
	return true
}

// DragMove follows the drag to x.
func (s *Slider) DragMove(x float64) bool {
	if !s.tracker.Move(x, s.Spacing()) {
		return false
	}
	s.setAnimating(true)
	return true
}

// DragEnd releases the drag and starts settling on the nearest tick. The
// release position itself does not move the value.
func (s *Slider) DragEnd(x float64) bool {
	target, ok := s.tracker.End()
	if !ok {
		return false
	}
	s.delegate.trackingEnd()
	s.setAnimating(false)
	s.log.Debug("tracking ended", "x", x, "value", s.model.Value(), "target", target)
	s.Animate(target)
	return true
}

// Animate eases the value toward target, replacing any running settle.
func (s *Slider) Animate(target float64) bool {
	if !s.model.Trackable() {
		return false
	}
	target = s.model.Clamp(target)
	current := s.model.Value()
	if target == current {
		return false
	}
	s.anim.Cancel()
	s.anim.Start(current, target, s.clock.Now())
	s.log.Debug("snap started", "from", current, "to", target, "duration", s.anim.Duration())
	return true
}

// Step applies the next animation sample if one is due. It reports whether
// the value changed.
func (s *Slider) Step() bool {
	now := s.clock.Now()
	if !s.anim.Due(now) {
		return false
	}
	v, done := s.anim.Step(now)
	s.model.SetValue(v)
	if done {
		s.log.Debug("snap settled", "value", v)
	}
	return true
}

// Spacing is the screen distance of one tick.
func (s *Slider) Spacing() float64 {
	if s.markCount < 1 {
		return 0
	}
	return s.width / float64(s.markCount)
}

func (s *Slider) Params() geometry.Params {
	return geometry.Params{
		Value:      s.model.Value(),
		Minimum:    s.model.Minimum(),
		Maximum:    s.model.Maximum(),
		Tick:       s.model.Tick(),
		Width:      s.width,
		Height:     s.height,
		MarkCount:  s.markCount,
		MarkWidth:  s.markWidth,
		MarkRadius: s.markRadius,
	}
}

// Layout returns the marks to paint. A zero tick yields the static ruler.
func (s *Slider) Layout() []geometry.Mark {
	p := s.Params()
	if !s.model.Trackable() {
		return geometry.StaticLayout(p)
	}
	return geometry.Layout(p)
}
