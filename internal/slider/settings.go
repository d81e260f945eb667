package slider

import (
	"fmt"
	"time"

	"github.com/san-kum/rulerpick/internal/ruler"
	"github.com/san-kum/rulerpick/internal/snap"
)

// Settings is the externally configurable surface of the picker.
type Settings struct {
	Minimum    float64
	Maximum    float64
	Value      float64
	Tick       float64
	MarkColor  string
	MarkWidth  float64
	MarkRadius float64
	MarkCount  int
	Padding    float64
	Duration   time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Minimum:    -100,
		Maximum:    100,
		Value:      0,
		Tick:       1,
		MarkColor:  "#ffffff",
		MarkWidth:  1,
		MarkRadius: 1,
		MarkCount:  20,
		Padding:    10,
		Duration:   snap.DefaultDuration,
	}
}

func (s Settings) Validate() error {
	if s.Minimum > s.Maximum {
		return fmt.Errorf("%w: %g > %g", ruler.ErrBounds, s.Minimum, s.Maximum)
	}
	if s.Tick < 0 {
		return fmt.Errorf("%w: %g", ruler.ErrTick, s.Tick)
	}
	if s.MarkCount < 1 {
		return fmt.Errorf("%w: %d", ruler.ErrMarkCount, s.MarkCount)
	}
	if s.MarkWidth <= 0 {
		return fmt.Errorf("mark width: %w", ruler.ErrSize)
	}
	if s.MarkRadius < 0 || s.Padding < 0 {
		return fmt.Errorf("mark radius or padding: %w", ruler.ErrSize)
	}
	// zero falls back to the default
	if s.Duration < 0 || (s.Duration > 0 && s.Duration < snap.Samples) {
		return fmt.Errorf("%w: %v", ruler.ErrDuration, s.Duration)
	}
	return nil
}
