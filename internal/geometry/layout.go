package geometry

import "math"

const (
	// MinOpacity is the spotlight floor for visible marks.
	MinOpacity = 0.2
	// MinHeight is the shortest mark drawn.
	MinHeight = 20.0
	// SpotlightDivisor sets the spotlight width as a fraction of the strip.
	SpotlightDivisor = 5.0
)

// Params is everything the layout depends on.
type Params struct {
	Value     float64
	Minimum   float64
	Maximum   float64
	Tick      float64
	Width     float64
	Height    float64
	MarkCount int
	MarkWidth float64
	// MarkRadius is copied onto each mark for renderers; it does not affect placement.
	MarkRadius float64
}

// Mark is the derived visual of one tick.
type Mark struct {
	Index    int
	Position float64
	Opacity  float64
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Radius   float64
}

// Hidden reports whether the mark was suppressed at a range boundary.
func (m Mark) Hidden() bool { return m.Opacity == 0 }

// Valid reports whether the layout preconditions hold.
func (p Params) Valid() bool {
	return p.MarkCount >= 1 && p.Width > 0 && p.Tick != 0 &&
		!math.IsNaN(p.Value) && !math.IsInf(p.Value, 0)
}

// Spacing is the screen distance between neighbouring marks.
func (p Params) Spacing() float64 {
	if p.MarkCount < 1 {
		return 0
	}
	return p.Width / float64(p.MarkCount)
}

// Layout computes markCount+1 marks, or nil when the preconditions fail.
func Layout(p Params) []Mark {
	if !p.Valid() {
		return nil
	}
	spacing := p.Spacing()
	slide := -p.Value*spacing/p.Tick + p.Width/2
	cut := boundary(p, spacing)

	marks := make([]Mark, 0, p.MarkCount+1)
	for i := 0; i <= p.MarkCount; i++ {
		pos := Wrap(spacing*float64(i)+slide-p.Width/2, p.Width)
		alpha := Opacity(pos, p.Width)
		if cut.hides(pos, p.Width) {
			alpha = 0
		}
		marks = append(marks, newMark(p, i, pos, alpha, spacing))
	}
	return marks
}

func newMark(p Params, i int, pos, alpha, spacing float64) Mark {
	x := pos - p.MarkWidth/2
	h := MarkHeight(x, p.Width, p.Height, spacing)
	return Mark{
		Index:    i,
		Position: pos,
		Opacity:  alpha,
		X:        x,
		Y:        (p.Height - h) / 2,
		Width:    p.MarkWidth,
		Height:   h,
		Radius:   p.MarkRadius,
	}
}

// Wrap folds pos into [0, width).
func Wrap(pos, width float64) float64 {
	r := math.Mod(pos, width)
	if r < 0 {
		r += width
	}
	// a tiny negative remainder can round up to width itself
	if r >= width {
		r -= width
	}
	return r
}

// Opacity is the spotlight falloff for a mark at pos.
func Opacity(pos, width float64) float64 {
	spotlight := width / SpotlightDivisor
	return math.Max(MinOpacity, 1-math.Abs(pos-width/2)/spotlight)
}

// MarkHeight tapers the mark height with its distance from the centre.
func MarkHeight(markX, width, height, spacing float64) float64 {
	d := math.Ceil(math.Abs(markX - width/2))
	rounded := math.Round((height-d/spacing*2)/2) * 2
	return math.Max(MinHeight, rounded)
}
