package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/rulerpick/internal/geometry"
)

const (
	markRune    = '█'
	pointerRune = '▲'
)

// Grid maps marks onto a cols x rows cell grid. Each cell holds the opacity of
// the mark covering it, or 0. height is the layout height the marks were
// computed for; one column is one layout unit.
func Grid(marks []geometry.Mark, cols, rows int, height float64) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
	}
	if cols <= 0 || rows <= 0 || height <= 0 {
		return grid
	}

	for _, m := range marks {
		if m.Hidden() {
			continue
		}
		col := int(math.Floor(m.Position))
		if col < 0 || col >= cols {
			continue
		}
		top := int(math.Round(m.Y / height * float64(rows)))
		bottom := int(math.Round((m.Y + m.Height) / height * float64(rows)))
		top = max(top, 0)
		bottom = min(bottom, rows)
		if bottom <= top {
			bottom = min(top+1, rows)
		}
		for r := top; r < bottom; r++ {
			grid[r][col] = math.Max(grid[r][col], m.Opacity)
		}
	}
	return grid
}

// RenderStrip colours a grid by blending the mark color into the background.
func RenderStrip(grid [][]float64, mark, background colorful.Color) []string {
	styles := map[string]lipgloss.Style{}
	lines := make([]string, len(grid))
	for r, row := range grid {
		var b strings.Builder
		for _, a := range row {
			if a <= 0 {
				b.WriteByte(' ')
				continue
			}
			hex := background.BlendLab(mark, a).Clamped().Hex()
			st, ok := styles[hex]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			b.WriteString(st.Render(string(markRune)))
		}
		lines[r] = b.String()
	}
	return lines
}

// Pointer is the centre indicator under the strip.
func Pointer(cols int, style lipgloss.Style) string {
	if cols <= 0 {
		return ""
	}
	mid := cols / 2
	return strings.Repeat(" ", mid) + style.Render(string(pointerRune)) + strings.Repeat(" ", cols-mid-1)
}

// FormatValue prints v with as many decimals as the tick needs.
func FormatValue(v, tick float64) string {
	return strconv.FormatFloat(v, 'f', Decimals(tick), 64)
}

// Decimals is the number of fractional digits in tick, capped at 4.
func Decimals(tick float64) int {
	for d := 0; d < 4; d++ {
		scaled := tick * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return 4
}
