package slider

import (
	"log/slog"

	"github.com/san-kum/rulerpick/internal/clock"
	"github.com/san-kum/rulerpick/internal/ruler"
)

type Option func(*Slider)

func WithClock(c clock.Clock) Option {
	return func(s *Slider) { s.clock = c }
}

func WithFeedback(f ruler.Feedback) Option {
	return func(s *Slider) { s.feedback = f }
}

func WithDelegate(d Delegate) Option {
	return func(s *Slider) { s.delegate = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Slider) { s.log = l }
}
