package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Builder creates the picker for a chosen entry.
type Builder func(name string) (Model, error)

// Entry is one line of the menu.
type Entry struct {
	Name string
	Info string
}

// Menu lists presets and opens the picker for the selected one.
type Menu struct {
	entries []Entry
	cursor  int
	build   Builder
	picker  *Model
	err     error
	width   int
}

func NewMenu(entries []Entry, build Builder) Menu {
	return Menu{entries: entries, build: build, width: 80}
}

func (m Menu) Init() tea.Cmd { return nil }

// Picker is the open picker, if any.
func (m Menu) Picker() (Model, bool) {
	if m.picker == nil {
		return Model{}, false
	}
	return *m.picker, true
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		next, cmd := m.picker.Update(msg)
		p := next.(Model)
		m.picker = &p
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.entries) == 0 {
				return m, nil
			}
			p, err := m.build(m.entries[m.cursor].Name)
			if err != nil {
				m.err = err
				return m, nil
			}
			// replay the known width so the strip fills the terminal
			next, cmd := p.Update(tea.WindowSizeMsg{Width: m.width})
			p = next.(Model)
			m.picker = &p
			return m, cmd
		}
	}
	return m, nil
}

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

func (m Menu) View() string {
	if m.picker != nil {
		return m.picker.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("RULERPICK") + "\n    " + menuSub.Render("scrolling ruler value picker") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, e := range m.entries {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-14s", e.Name)), menuInfo.Render(e.Info)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuIdle.Render(fmt.Sprintf("  %-14s", e.Name)), menuIdle.Render(e.Info)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusDisabled.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" navigate  ") + menuKey.Render("enter") + menuIdle.Render(" select  ") + menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

// RunMenu shows the menu full screen and returns the value of the picker
// that was open on exit, if any.
func RunMenu(m Menu) (float64, bool, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("tui: %w", err)
	}
	picker, ok := final.(Menu).Picker()
	if !ok {
		return 0, false, nil
	}
	return picker.slider.Value(), true, nil
}
