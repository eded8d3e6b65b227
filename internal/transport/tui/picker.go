package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/tuskmenu/internal/service/ui"
)

// pickerModel lets the user choose one of choices. chosen is -1 when the user
// went back.
type pickerModel struct {
	title       string
	description string
	choices     []string
	separator   string
	backLabel   string
	cursor      int
	chosen      int
	done        bool
}

func newPicker(title, description string, choices []string, separator string) pickerModel {
	return pickerModel{
		title:       title,
		description: description,
		choices:     choices,
		separator:   separator,
		backLabel:   "Back",
		chosen:      -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// the back entry sits after the choices
	last := len(m.choices)

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.chosen = -1
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "enter":
		m.done = true
		if m.cursor == last {
			m.chosen = -1
		} else {
			m.chosen = m.cursor
		}
		return m, tea.Quit
	default:
		n, err := strconv.Atoi(key.String())
		if err != nil {
			return m, nil
		}
		if n == 0 {
			m.cursor = last
		} else if n <= len(m.choices) {
			m.cursor = n - 1
		}
	}
	return m, nil
}

func (m pickerModel) finished() bool { return m.done }

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(ui.TitleStyle.Render(m.title) + "\n\n")
	}
	if m.description != "" {
		b.WriteString(ui.DescStyle.Render(m.description) + "\n\n")
	}

	entries := append(append([]string(nil), m.choices...), m.backLabel)
	for i, choice := range entries {
		if i > 0 && i < len(m.choices) && m.separator != "" {
			b.WriteString(ui.ItemStyle.Render(m.separator) + "\n")
		}
		num := i + 1
		if i == len(m.choices) {
			num = 0
		}
		line := fmt.Sprintf("%d. %s", num, choice)
		if m.cursor == i {
			b.WriteString(ui.SelectedStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString(ui.DescStyle.Render("\n(↑/↓ to move, enter to choose, esc to go back)") + "\n")
	return b.String()
}
