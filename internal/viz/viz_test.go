package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rulerpick/internal/geometry"
	"github.com/san-kum/rulerpick/internal/slider"
)

func newTestModel(t *testing.T, s slider.Settings) (Model, *Journal) {
	t.Helper()
	j := &Journal{}
	sl, err := slider.New(s, slider.WithDelegate(j.Delegate()))
	if err != nil {
		t.Fatalf("slider: %v", err)
	}
	m := NewModel(sl, j, "test", ThemeMinimal, 12, 60)
	// 84 wide leaves an 80 column strip: 4 columns per tick
	next, _ := m.Update(tea.WindowSizeMsg{Width: 84, Height: 30})
	return next.(Model), j
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestGridCentreMark(t *testing.T) {
	marks := geometry.Layout(geometry.Params{
		Value: 0, Minimum: -100, Maximum: 100, Tick: 1,
		Width: 80, Height: 60, MarkCount: 20, MarkWidth: 1, MarkRadius: 1,
	})
	grid := Grid(marks, 80, 12, 60)

	if len(grid) != 12 || len(grid[0]) != 80 {
		t.Fatalf("expected 12x80 grid, got %dx%d", len(grid), len(grid[0]))
	}
	for r := 0; r < 12; r++ {
		if grid[r][40] != 1 {
			t.Errorf("row %d: expected opaque centre mark, got %f", r, grid[r][40])
		}
	}
	if grid[6][42] != 0 {
		t.Errorf("expected gap between marks, got %f", grid[6][42])
	}
}

func TestGridShorterEdges(t *testing.T) {
	marks := geometry.Layout(geometry.Params{
		Value: 0, Minimum: -100, Maximum: 100, Tick: 1,
		Width: 80, Height: 60, MarkCount: 20, MarkWidth: 1, MarkRadius: 1,
	})
	grid := Grid(marks, 80, 12, 60)

	edge := 0
	for r := range grid {
		if grid[r][4] > 0 {
			edge++
		}
	}
	if edge == 0 || edge >= 12 {
		t.Errorf("expected a shorter edge mark, got %d rows", edge)
	}
	if grid[6][4] != geometry.MinOpacity {
		t.Errorf("expected floor opacity at the edge, got %f", grid[6][4])
	}
}

func TestGridEmpty(t *testing.T) {
	grid := Grid(nil, 0, 3, 60)
	if len(grid) != 3 {
		t.Errorf("expected 3 rows, got %d", len(grid))
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v, tick float64
		want    string
	}{
		{5, 1, "5"},
		{-4.625, 1, "-5"},
		{21.5, 0.5, "21.5"},
		{0.25, 0.05, "0.25"},
		{1000, 10, "1000"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.tick); got != tt.want {
			t.Errorf("FormatValue(%g, %g): expected %s, got %s", tt.v, tt.tick, tt.want, got)
		}
	}
}

func TestPointer(t *testing.T) {
	p := Pointer(9, Subtle)
	if !strings.HasPrefix(p, "    ") {
		t.Errorf("expected pointer after 4 spaces, got %q", p)
	}
	if !strings.Contains(p, "▲") {
		t.Error("expected pointer rune")
	}
}

func TestNudgeKeys(t *testing.T) {
	m, _ := newTestModel(t, slider.DefaultSettings())

	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	if v := m.Slider().Value(); v != -1 {
		t.Errorf("expected -1 after left, got %f", v)
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if v := m.Slider().Value(); v != 1 {
		t.Errorf("expected 1 after two rights, got %f", v)
	}
	if m.Slider().Settling() {
		t.Error("one-tick nudge should land exactly on a tick")
	}
}

func TestMouseDrag(t *testing.T) {
	m, j := newTestModel(t, slider.DefaultSettings())

	m = update(m, tea.MouseMsg{X: 42, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Slider().Tracking() {
		t.Fatal("expected tracking after press")
	}
	// 20 columns right is five ticks down
	m = update(m, tea.MouseMsg{X: 62, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if v := m.Slider().Value(); v != -5 {
		t.Errorf("expected -5, got %f", v)
	}
	m = update(m, tea.MouseMsg{X: 62, Y: 5, Action: tea.MouseActionRelease})
	if m.Slider().Tracking() {
		t.Error("expected tracking to end on release")
	}
	if j.Began != 1 || j.Ended != 1 {
		t.Errorf("expected one begin and end, got %d/%d", j.Began, j.Ended)
	}
}

func TestMouseSettleSchedulesTick(t *testing.T) {
	m, _ := newTestModel(t, slider.DefaultSettings())

	m = update(m, tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(m, tea.MouseMsg{X: 44, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	next, cmd := m.Update(tea.MouseMsg{X: 44, Action: tea.MouseActionRelease})
	m = next.(Model)

	if !m.Slider().Settling() {
		t.Fatal("expected settle after releasing between ticks")
	}
	if cmd == nil {
		t.Error("expected a tick to be scheduled")
	}
	// a second message must not schedule a parallel tick chain
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}); cmd != nil {
		t.Error("expected no extra tick while one is pending")
	}
}

func TestZeroTickIgnoresInput(t *testing.T) {
	s := slider.DefaultSettings()
	s.Tick = 0
	m, j := newTestModel(t, s)

	m = update(m, tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(m, tea.MouseMsg{X: 60, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})

	if v := m.Slider().Value(); v != 0 {
		t.Errorf("expected value unchanged, got %f", v)
	}
	if j.Began != 0 {
		t.Errorf("expected no tracking callbacks, got %d", j.Began)
	}
	if !strings.Contains(m.View(), "DISABLED") {
		t.Error("expected disabled status")
	}
}

func TestViewShowsValue(t *testing.T) {
	s := slider.DefaultSettings()
	s.Value = 42
	m, _ := newTestModel(t, s)

	view := m.View()
	if !strings.Contains(view, "42") {
		t.Error("expected value in view")
	}
	if !strings.Contains(view, "-100") || !strings.Contains(view, "100") {
		t.Error("expected range labels in view")
	}
	if !strings.Contains(view, "TEST") {
		t.Error("expected title in view")
	}
}

func TestThemeCycle(t *testing.T) {
	m, _ := newTestModel(t, slider.DefaultSettings())
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.theme.Name != NextTheme("minimal").Name {
		t.Errorf("expected %s, got %s", NextTheme("minimal").Name, m.theme.Name)
	}
	if GetTheme("nope").Name != "minimal" {
		t.Error("expected minimal fallback")
	}
}

func TestMenuOpensPicker(t *testing.T) {
	built := ""
	menu := NewMenu([]Entry{{Name: "a"}, {Name: "b"}}, func(name string) (Model, error) {
		built = name
		m, _ := newTestModel(t, slider.DefaultSettings())
		return m, nil
	})

	next, _ := menu.Update(tea.WindowSizeMsg{Width: 84})
	next, _ = next.(Menu).Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(Menu).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(Menu)

	if built != "b" {
		t.Errorf("expected b to be built, got %q", built)
	}
	if _, ok := menu.Picker(); !ok {
		t.Fatal("expected picker to be open")
	}

	next, _ = menu.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p, _ := next.(Menu).Picker()
	if v := p.Slider().Value(); v != -1 {
		t.Errorf("expected keys forwarded to picker, got %f", v)
	}
}

func TestMenuBuildError(t *testing.T) {
	menu := NewMenu([]Entry{{Name: "bad"}}, func(string) (Model, error) {
		return Model{}, errors.New("boom")
	})
	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(Menu)
	if _, ok := menu.Picker(); ok {
		t.Error("expected no picker after build error")
	}
	if !strings.Contains(menu.View(), "boom") {
		t.Error("expected error in view")
	}
}

func TestNarrowTerminalView(t *testing.T) {
	m, j := newTestModel(t, slider.DefaultSettings())
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if len(j.Values) == 0 {
		t.Fatal("expected recorded values")
	}

	for _, w := range []int{30, 14, 13, 12, 6, 1, 0} {
		m = update(m, tea.WindowSizeMsg{Width: w, Height: 30})
		if !strings.Contains(m.View(), "Changes") {
			t.Errorf("width %d: expected metrics in view", w)
		}
	}
}

func TestSparklineWidth(t *testing.T) {
	if got := SparklineChart([]float64{1, 2, 3}, -4); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}
	if got := SparklineChart(nil, 0); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}
	if got := SparklineChart([]float64{1, 2, 3, 4}, 2); len([]rune(got)) < 2 {
		t.Errorf("expected two runes, got %q", got)
	}
}

func TestCheckTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if err := CheckTheme(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	if err := CheckTheme("neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}
