// Package gesture turns horizontal drags into value changes.
package gesture

import (
	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/snap"
)

// Tracker follows a single drag session. Dragging right moves the ruler
// right, which lowers the value.
type Tracker struct {
	model     *ruler.Model
	feedback  ruler.Feedback
	active    bool
	previousX float64
}

func New(model *ruler.Model, feedback ruler.Feedback) *Tracker {
	if feedback == nil {
		feedback = ruler.NoFeedback
	}
	return &Tracker{model: model, feedback: feedback}
}

func (t *Tracker) Active() bool { return t.active }

// Begin opens a session at x. It reports false when the tick is zero.
func (t *Tracker) Begin(x float64) bool {
	if !t.model.Trackable() {
		return false
	}
	t.active = true
	t.previousX = x
	return true
}

// Move applies the drag from the previous position to x. spacing is the
// screen distance of one tick.
func (t *Tracker) Move(x, spacing float64) bool {
	if !t.model.Trackable() || !t.active || spacing == 0 {
		return false
	}
	delta := Delta(x-t.previousX, spacing, t.model.Tick())
	t.previousX = x
	t.model.SetValue(t.model.Value() - delta)
	t.feedback.Pulse()
	return true
}

// End closes the session and returns the snap target: the nearest tick,
// clamped to the range.
func (t *Tracker) End() (float64, bool) {
	if !t.model.Trackable() || !t.active {
		return 0, false
	}
	t.active = false
	return t.model.Clamp(snap.Nearest(t.model.Value(), t.model.Tick())), true
}

// Cancel drops the session without producing a target.
func (t *Tracker) Cancel() { t.active = false }

// Delta converts a screen distance into a value distance.
func Delta(dx, spacing, tick float64) float64 {
	return dx / spacing * tick
}
