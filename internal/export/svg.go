package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/rulerpick/internal/automation"
	"github.com/san-kum/rulerpick/internal/geometry"
)

// LayoutToSVG paints the marks as rounded rectangles. Hidden marks are omitted.
func LayoutToSVG(marks []geometry.Mark, width, height float64, markColor, background string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, markColor))

	for _, m := range marks {
		if m.Hidden() {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill-opacity="%.3f"/>
`, m.X, m.Y, m.Width, m.Height, m.Radius, m.Opacity))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TraceToSVG plots value over time for a replayed script.
func TraceToSVG(samples []automation.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minT, maxT := samples[0].T, samples[len(samples)-1].T
	minV, maxV := samples[0].Value, samples[0].Value
	for _, s := range samples {
		if s.Value < minV {
			minV = s.Value
		}
		if s.Value > maxV {
			maxV = s.Value
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	rangeV *= 1.2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range samples {
		x := (s.T - minT) / rangeT * float64(width)
		y := float64(height) - (s.Value-minV)/rangeV*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
