package snap

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Unix(0, 0)

func TestAnimatorSettlesInFourSteps(t *testing.T) {
	a := New(DefaultDuration)
	if !a.Start(4.6, Nearest(4.6, 1), epoch) {
		t.Fatal("expected session to start")
	}

	expected := []float64{4.625, 4.7, 4.825, 5.0}
	now := epoch
	for i, want := range expected {
		now = now.Add(a.Interval())
		if !a.Due(now) {
			t.Fatalf("step %d: expected step to be due", i)
		}
		got, done := a.Step(now)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("step %d: expected %.4f, got %.4f", i, want, got)
		}
		if done != (i == len(expected)-1) {
			t.Errorf("step %d: unexpected done=%v", i, done)
		}
	}

	if a.Active() {
		t.Error("expected session to end")
	}
}

func TestAnimatorEndsExactlyOnTarget(t *testing.T) {
	a := New(DefaultDuration)
	a.Start(0.1, 0.7, epoch)

	got, done := a.Step(epoch.Add(DefaultDuration))
	if !done || got != 0.7 {
		t.Errorf("expected exact target 0.7, got %v (done=%v)", got, done)
	}
}

func TestEaseInEndpointsAndMonotonic(t *testing.T) {
	tests := []struct {
		name          string
		start, target float64
	}{
		{"increasing", -3, 12},
		{"decreasing", 8.5, 2},
	}

	d := 200 * time.Millisecond
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseIn(tt.start, tt.target, 0, d); got != tt.start {
				t.Errorf("expected start %f at t=0, got %f", tt.start, got)
			}
			if got := EaseIn(tt.start, tt.target, d, d); got != tt.target {
				t.Errorf("expected target %f at t=d, got %f", tt.target, got)
			}

			sign := math.Copysign(1, tt.target-tt.start)
			prev := tt.start
			for ms := 1; ms <= 200; ms++ {
				v := EaseIn(tt.start, tt.target, time.Duration(ms)*time.Millisecond, d)
				if (v-prev)*sign < 0 {
					t.Fatalf("not monotonic at %dms: %f after %f", ms, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestAnimatorTinyDuration(t *testing.T) {
	a := New(2 * time.Nanosecond)
	if a.Interval() != time.Nanosecond {
		t.Errorf("expected 1ns interval, got %v", a.Interval())
	}
	a.Start(4.6, 5, epoch)

	now := epoch.Add(time.Nanosecond)
	if !a.Due(now) {
		t.Fatal("expected step to be due")
	}
	if _, done := a.Step(now); done {
		t.Error("expected session to continue")
	}
	if due, _ := a.NextDue(); !due.After(now) {
		t.Errorf("expected next step after %v, got %v", now, due)
	}
	if v, done := a.Step(epoch.Add(2 * time.Nanosecond)); !done || v != 5 {
		t.Errorf("expected settled at 5, got %f (done=%v)", v, done)
	}
}

func TestAnimatorStartSameValueIsNoop(t *testing.T) {
	a := New(0)
	if a.Duration() != DefaultDuration {
		t.Errorf("expected default duration, got %v", a.Duration())
	}
	if a.Start(5, 5, epoch) {
		t.Error("expected no session for equal start and target")
	}
	if a.Active() {
		t.Error("expected inactive animator")
	}
}

func TestAnimatorRestartReplacesSession(t *testing.T) {
	a := New(DefaultDuration)
	a.Start(0, 10, epoch)
	later := epoch.Add(100 * time.Millisecond)
	a.Start(3, 4, later)

	if a.Target() != 4 {
		t.Errorf("expected target 4, got %f", a.Target())
	}
	v, done := a.Step(later.Add(DefaultDuration))
	if !done || v != 4 {
		t.Errorf("expected replacement session to finish at 4, got %f", v)
	}
}

func TestAnimatorDueGating(t *testing.T) {
	a := New(DefaultDuration)
	a.Start(0, 1, epoch)

	if a.Due(epoch.Add(10 * time.Millisecond)) {
		t.Error("step should not be due before the first interval")
	}
	a.Cancel()
	if a.Due(epoch.Add(time.Second)) {
		t.Error("cancelled session should never be due")
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		value, tick, want float64
	}{
		{4.6, 1, 5},
		{4.4, 1, 4},
		{-2.5, 1, -3},
		{7.4, 5, 5},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := Nearest(tt.value, tt.tick); got != tt.want {
			t.Errorf("Nearest(%g, %g) = %g, expected %g", tt.value, tt.tick, got, tt.want)
		}
	}
}
