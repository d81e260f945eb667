package ruler

import (
	"fmt"
	"math"
)

type Model struct {
	value    float64
	minimum  float64
	maximum  float64
	tick     float64
	onChange func(float64)
	onDirty  func()
}

// NewModel returns a model with value clamped into [minimum, maximum].
func NewModel(minimum, maximum, value, tick float64) (*Model, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("%w: %g > %g", ErrBounds, minimum, maximum)
	}
	if tick < 0 || math.IsNaN(tick) || math.IsInf(tick, 0) {
		return nil, fmt.Errorf("%w: %g", ErrTick, tick)
	}
	m := &Model{minimum: minimum, maximum: maximum, tick: tick}
	m.value = m.Clamp(value)
	return m, nil
}

func (m *Model) Value() float64   { return m.value }
func (m *Model) Minimum() float64 { return m.minimum }
func (m *Model) Maximum() float64 { return m.maximum }
func (m *Model) Tick() float64    { return m.tick }

// Trackable reports whether gestures and snapping are enabled.
func (m *Model) Trackable() bool { return m.tick != 0 }

// OnChange registers the host notification for tick-aligned values.
func (m *Model) OnChange(fn func(float64)) { m.onChange = fn }

// OnDirty registers a callback fired on every state mutation.
func (m *Model) OnDirty(fn func()) { m.onDirty = fn }

func (m *Model) Clamp(v float64) float64 {
	if v <= m.minimum {
		return m.minimum
	}
	if v >= m.maximum {
		return m.maximum
	}
	return v
}

// Round returns v rounded to the nearest multiple of the tick.
func (m *Model) Round(v float64) float64 {
	if m.tick == 0 {
		return v
	}
	return m.tick * math.Round(v/m.tick)
}

// SetValue clamps v into range, stores it and notifies the host when the
// rounded value sits on a whole number of ticks.
func (m *Model) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	m.value = m.Clamp(v)
	m.dirty()
	if m.tick == 0 || m.onChange == nil {
		return
	}
	rounded := m.Round(m.value)
	if TickAligned(rounded, m.tick) {
		m.onChange(rounded)
	}
}

func (m *Model) SetTick(tick float64) error {
	if tick < 0 || math.IsNaN(tick) || math.IsInf(tick, 0) {
		return fmt.Errorf("%w: %g", ErrTick, tick)
	}
	m.tick = tick
	m.dirty()
	return nil
}

// SetBounds replaces the range and re-clamps the current value.
func (m *Model) SetBounds(minimum, maximum float64) error {
	if minimum > maximum {
		return fmt.Errorf("%w: %g > %g", ErrBounds, minimum, maximum)
	}
	m.minimum, m.maximum = minimum, maximum
	m.SetValue(m.value)
	return nil
}

func (m *Model) dirty() {
	if m.onDirty != nil {
		m.onDirty()
	}
}

// TickAligned reports whether rounded is an integer number of ticks, using
// integer truncation of both operands. Ticks below 1 truncate to zero and
// always count as aligned.
func TickAligned(rounded, tick float64) bool {
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) {
		return false
	}
	step := int64(tick)
	if step == 0 {
		return true
	}
	return int64(rounded)%step == 0
}
