package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/rulerpick/internal/slider"
)

const (
	margin          = 2
	historyCapacity = 240
)

type stepMsg time.Time

// Journal collects delegate callbacks. It is shared by pointer so the
// value-typed Model can be copied by Bubble Tea.
type Journal struct {
	Values []float64
	Began  int
	Ended  int
}

// Delegate returns a delegate that records into j.
func (j *Journal) Delegate() slider.Delegate {
	return slider.Delegate{
		OnTrackingBegin: func() { j.Began++ },
		OnTrackingEnd:   func() { j.Ended++ },
		OnValueChanged: func(v float64) {
			j.Values = append(j.Values, v)
			if len(j.Values) > historyCapacity {
				j.Values = j.Values[len(j.Values)-historyCapacity:]
			}
		},
	}
}

// Model is the picker screen.
type Model struct {
	slider   *slider.Slider
	journal  *Journal
	name     string
	theme    Theme
	rows     int
	height   float64
	width    int
	dragging bool
	ticking  bool
	graph    bool
	showHelp bool
}

// NewModel wraps a slider. rows is the strip height in lines and height the
// layout height in units those rows represent. The journal must be the one
// whose Delegate was given to the slider, or nil.
func NewModel(s *slider.Slider, j *Journal, name string, theme Theme, rows int, height float64) Model {
	if j == nil {
		j = &Journal{}
	}
	m := Model{
		slider:  s,
		journal: j,
		name:    name,
		theme:   theme,
		rows:    rows,
		height:  height,
		width:   80,
	}
	m.resize(m.width)
	return m
}

func (m Model) Slider() *slider.Slider { return m.slider }

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) resize(width int) {
	m.width = width
	m.slider.Resize(float64(m.cols()), m.height)
}

// cols is the strip width in terminal columns.
func (m Model) cols() int {
	return max(m.width-2*margin, 1)
}

func (m Model) stripX(x int) float64 {
	return float64(x - margin)
}

func (m *Model) schedule() tea.Cmd {
	if m.ticking || !m.slider.Settling() {
		return nil
	}
	m.ticking = true
	d := m.slider.Interval()
	if due, ok := m.slider.NextStep(); ok {
		d = time.Until(due)
	}
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return stepMsg(t) })
}

// nudge performs a one-tick drag so keyboard moves settle like gestures.
func (m *Model) nudge(ticks int) {
	spacing := m.slider.Spacing()
	c := float64(m.cols()) / 2
	if !m.slider.DragStart(c) {
		return
	}
	m.slider.DragMove(c - float64(ticks)*spacing)
	m.slider.DragEnd(c - float64(ticks)*spacing)
}

// Update handles mouse drags, keys and animation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.dragging = m.slider.DragStart(m.stripX(msg.X))
			}
		case tea.MouseActionMotion:
			if m.dragging {
				m.slider.DragMove(m.stripX(msg.X))
			}
		case tea.MouseActionRelease:
			if m.dragging {
				m.dragging = false
				m.slider.DragEnd(m.stripX(msg.X))
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.nudge(-1)
		case "right", "l":
			m.nudge(1)
		case "home":
			lo, _ := m.slider.Bounds()
			m.slider.Animate(lo)
		case "end":
			_, hi := m.slider.Bounds()
			m.slider.Animate(hi)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			m.graph = !m.graph
		case "?":
			m.showHelp = !m.showHelp
		}
	case stepMsg:
		m.ticking = false
		m.slider.Step()
	}
	cmd := m.schedule()
	return m, cmd
}

func (m Model) status() string {
	switch {
	case m.slider.Tick() == 0:
		return StatusDisabled.Render("DISABLED")
	case m.slider.Tracking():
		return StatusTracking.Render("TRACKING")
	case m.slider.Settling():
		return StatusSettling.Render("SETTLING")
	}
	return StatusIdle.Render("IDLE")
}

// View renders the picker.
func (m Model) View() string {
	cols := m.cols()
	lo, hi := m.slider.Bounds()
	tick := m.slider.Tick()
	pad := strings.Repeat(" ", margin)

	var s strings.Builder
	title := GradientText(strings.ToUpper(m.name), m.theme.Title, m.theme.TitleEnd)
	s.WriteString(pad + HeaderStyle.Render(title) + "\n\n")

	value := FormatValue(m.slider.Value(), tick)
	centred := lipgloss.PlaceHorizontal(cols, lipgloss.Center,
		ValueStyle.Foreground(m.theme.Text).Background(m.theme.Background).Render(value))
	s.WriteString(pad + centred + "\n\n")

	fg := hexOr(m.slider.MarkColor(), colorful.Color{R: 1, G: 1, B: 1})
	bg := hexOr(string(m.theme.Background), colorful.Color{})
	grid := Grid(m.slider.Layout(), cols, m.rows, m.height)
	for _, line := range RenderStrip(grid, fg, bg) {
		s.WriteString(pad + line + "\n")
	}
	s.WriteString(pad + Pointer(cols, lipgloss.NewStyle().Foreground(m.theme.Accent)) + "\n")

	lower, upper := FormatValue(lo, tick), FormatValue(hi, tick)
	gap := max(cols-len(lower)-len(upper), 1)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	s.WriteString(pad + muted.Render(lower+strings.Repeat(" ", gap)+upper) + "\n")
	percent := 0.0
	if hi > lo {
		percent = (m.slider.Value() - lo) / (hi - lo)
	}
	s.WriteString(pad + PositionBar(percent, cols) + "\n\n")

	s.WriteString(pad + MetricLabel.Render("Status") + m.status() + "\n")
	s.WriteString(pad + MetricLabel.Render("Tick") + FormatValue(tick, tick) + "\n")
	s.WriteString(pad + MetricLabel.Render("Theme") + m.theme.Name + "\n")
	s.WriteString(pad + MetricLabel.Render("Changes") + SparklineChart(m.journal.Values, max(min(cols-10, 40), 0)) + "\n")

	if gw := min(cols-10, 60); m.graph && len(m.journal.Values) > 1 && gw > 0 {
		chart := asciigraph.Plot(m.journal.Values,
			asciigraph.Height(6),
			asciigraph.Width(gw),
			asciigraph.Caption("notified values"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + pad + KeyHint.Render("drag: pick  ←→: nudge  home/end: limits  t: theme  g: graph  ?: help  q: quit") + "\n")

	if m.showHelp {
		return helpOverlay + "\n" + s.String()
	}
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Drag     - Scroll the ruler         ║
║  ← / h    - One tick down            ║
║  → / l    - One tick up              ║
║  Home/End - Settle on a limit        ║
║  T        - Cycle themes             ║
║  G        - Toggle value graph       ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the picker full screen with mouse tracking and returns the
// final value.
func Run(m Model) (float64, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return m.slider.Value(), fmt.Errorf("tui: %w", err)
	}
	return final.(Model).slider.Value(), nil
}
