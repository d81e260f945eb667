package geometry

import "math"

// Zone identifies which range limit is currently suppressing marks.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLower
	ZoneUpper
)

func (z Zone) String() string {
	switch z {
	case ZoneLower:
		return "lower"
	case ZoneUpper:
		return "upper"
	}
	return "none"
}

// Cutoff is the screen-space range hidden at a boundary. In the lower zone
// marks in [0, End] are hidden, in the upper zone marks in [End, width].
type Cutoff struct {
	Zone Zone
	End  float64
}

func (c Cutoff) hides(pos, width float64) bool {
	switch c.Zone {
	case ZoneLower:
		return pos >= 0 && pos <= c.End
	case ZoneUpper:
		return pos >= c.End && pos <= width
	}
	return false
}

// Boundary returns the suppression cutoff for p.
func Boundary(p Params) Cutoff {
	if !p.Valid() {
		return Cutoff{}
	}
	return boundary(p, p.Spacing())
}

// boundary uses truncating integer arithmetic: the middle
// mark index and the group size are truncated, and the remainder is taken
// on the floored distance from the limit.
func boundary(p Params, spacing float64) Cutoff {
	middle := p.MarkCount / 2
	group := p.MarkCount * int(p.Tick) / 2
	if group <= 0 {
		return Cutoff{}
	}
	reach := float64(middle-1) * p.Tick
	mid := float64(middle)

	switch {
	case p.Value >= p.Minimum && p.Value <= p.Minimum+reach:
		rem := posmod(int(math.Floor(p.Value-p.Minimum)), group)
		end := (0.5 + mid - float64(rem)/p.Tick) * spacing
		return Cutoff{Zone: ZoneLower, End: end}
	case p.Value >= p.Maximum-reach && p.Value <= p.Maximum:
		rem := posmod(int(math.Floor(p.Value-p.Maximum)), group)
		end := (float64(p.MarkCount) - float64(rem)/p.Tick) * spacing
		if end >= p.Width {
			end = end - p.Width/2 + p.MarkWidth
		}
		return Cutoff{Zone: ZoneUpper, End: end}
	}
	return Cutoff{}
}

func posmod(a, n int) int {
	return ((a % n) + n) % n
}
