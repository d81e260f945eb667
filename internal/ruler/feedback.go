package ruler

// Feedback is the opaque pulse fired on every drag move.
type Feedback interface {
	Pulse()
}

// FeedbackFunc adapts a plain function to [Feedback].
type FeedbackFunc func()

func (f FeedbackFunc) Pulse() {
	if f != nil {
		f()
	}
}

// NoFeedback discards pulses.
var NoFeedback Feedback = FeedbackFunc(nil)
