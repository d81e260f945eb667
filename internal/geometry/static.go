package geometry

import "math"

// StaticLayout draws the ruler without scrolling. It is used when the tick
// is zero and the picker cannot be dragged. Opacity fades linearly to the
// edges and heights taper by index distance from the middle mark.
func StaticLayout(p Params) []Mark {
	if p.MarkCount < 1 || p.Width <= 0 {
		return nil
	}
	spacing := p.Spacing()
	half := p.Width / 2
	marks := make([]Mark, 0, p.MarkCount+1)
	for i := 0; i <= p.MarkCount; i++ {
		pos := math.Mod(spacing*float64(i), p.Width)
		alpha := math.Max(0, 1-math.Abs(pos-half)/half)
		d := math.Abs(float64(p.MarkCount/2 - i))
		h := math.Max(MinHeight, math.Round((p.Height-d)/2)*2)
		marks = append(marks, Mark{
			Index:    i,
			Position: pos,
			Opacity:  alpha,
			X:        pos - p.MarkWidth/2,
			Y:        (p.Height - h) / 2,
			Width:    p.MarkWidth,
			Height:   h,
			Radius:   p.MarkRadius,
		})
	}
	return marks
}
