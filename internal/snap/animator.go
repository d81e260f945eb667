// Package snap eases the picker value onto the nearest tick after release.
package snap

import (
	"math"
	"time"
)

const (
	// DefaultDuration is the length of a settle animation.
	DefaultDuration = 200 * time.Millisecond
	// Samples is the number of steps taken over one animation.
	Samples = 4
)

// Animator runs at most one settle session. Starting a new session
// replaces the running one.
type Animator struct {
	duration  time.Duration
	start     float64
	target    float64
	startTime time.Time
	next      time.Time
	active    bool
}

func New(duration time.Duration) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{duration: duration}
}

func (a *Animator) Duration() time.Duration { return a.duration }

// Interval is the spacing between steps, never less than a nanosecond.
func (a *Animator) Interval() time.Duration {
	return max(a.duration/Samples, time.Nanosecond)
}

func (a *Animator) Active() bool    { return a.active }
func (a *Animator) Target() float64 { return a.target }

// NextDue is the time of the next step, if a session is running.
func (a *Animator) NextDue() (time.Time, bool) {
	return a.next, a.active
}

// Start begins a session from current to target. It reports false and
// leaves any running session untouched when there is nothing to animate.
func (a *Animator) Start(current, target float64, now time.Time) bool {
	if target == current {
		return false
	}
	a.start = current
	a.target = target
	a.startTime = now
	a.next = now.Add(a.Interval())
	a.active = true
	return true
}

func (a *Animator) Cancel() { a.active = false }

// Due reports whether a step should be applied at now.
func (a *Animator) Due(now time.Time) bool {
	return a.active && !now.Before(a.next)
}

// Step returns the eased value at now. Once the duration has elapsed it
// returns the exact target and ends the session.
func (a *Animator) Step(now time.Time) (float64, bool) {
	if !a.active {
		return a.target, true
	}
	elapsed := now.Sub(a.startTime)
	if elapsed >= a.duration {
		a.active = false
		return a.target, true
	}
	for !a.next.After(now) {
		a.next = a.next.Add(a.Interval())
	}
	return EaseIn(a.start, a.target, elapsed, a.duration), false
}

// EaseIn is the quadratic ease-in curve between start and target.
func EaseIn(start, target float64, t, d time.Duration) float64 {
	if t < 0 {
		t = 0
	}
	if t >= d {
		return target
	}
	f := float64(t) / float64(d)
	return (target-start)*f*f + start
}

// Nearest rounds value to the nearest multiple of tick.
func Nearest(value, tick float64) float64 {
	if tick == 0 {
		return value
	}
	return math.Round(value/tick) * tick
}
