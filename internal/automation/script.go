// Package automation replays recorded gestures against a picker on synthetic
// time, producing a value trace that can be plotted, exported or stored.
package automation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownEvent indicates an event kind other than start, move or end.
	ErrUnknownEvent = errors.New("automation: unknown event kind")

	// ErrEventOrder indicates events out of time order, or a move or end
	// without an open drag.
	ErrEventOrder = errors.New("automation: event out of order")

	// ErrUnknownPreset indicates a script naming a preset that does not exist.
	ErrUnknownPreset = errors.New("automation: unknown preset")
)

const (
	KindStart = "start"
	KindMove  = "move"
	KindEnd   = "end"
)

// Script is a scripted gesture sequence.
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Preset      string  `yaml:"preset"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SettleMs    int     `yaml:"settle_ms"`
	Events      []Event `yaml:"events"`
}

// Event is a single pointer event at a time offset from the script start.
type Event struct {
	AtMs int     `yaml:"at_ms"`
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
}

// ScriptError wraps a validation failure with the offending event.
type ScriptError struct {
	Index   int
	Event   Event
	Wrapped error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("event %d (%s at %dms): %v", e.Index, e.Event.Kind, e.Event.AtMs, e.Wrapped)
}

func (e *ScriptError) Unwrap() error {
	return e.Wrapped
}

// LoadScript loads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks event kinds, time order and drag nesting. A start while a
// drag is open is allowed; the picker ends the stale drag without settling.
func (s *Script) Validate() error {
	tracking := false
	last := 0
	for i, ev := range s.Events {
		fail := func(err error) error {
			return &ScriptError{Index: i, Event: ev, Wrapped: err}
		}
		if ev.AtMs < last {
			return fail(ErrEventOrder)
		}
		last = ev.AtMs
		switch ev.Kind {
		case KindStart:
			tracking = true
		case KindMove:
			if !tracking {
				return fail(ErrEventOrder)
			}
		case KindEnd:
			if !tracking {
				return fail(ErrEventOrder)
			}
			tracking = false
		default:
			return fail(ErrUnknownEvent)
		}
	}
	return nil
}

// Drag builds a start, evenly spaced moves and an end covering from to to.
func Drag(atMs, durationMs int, from, to float64, moves int) []Event {
	if moves < 1 {
		moves = 1
	}
	events := []Event{{AtMs: atMs, Kind: KindStart, X: from}}
	for i := 1; i <= moves; i++ {
		events = append(events, Event{
			AtMs: atMs + durationMs*i/moves,
			Kind: KindMove,
			X:    from + (to-from)*float64(i)/float64(moves),
		})
	}
	events = append(events, Event{AtMs: atMs + durationMs, Kind: KindEnd, X: to})
	return events
}
