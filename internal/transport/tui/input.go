package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/tuskmenu/internal/service/ui"
)

// inputModel asks for a single line. check returns a message when the value
// must be re-entered.
type inputModel struct {
	label      string
	input      textinput.Model
	check      func(string) string
	allowEmpty bool
	problem    string
	value      string
	ok         bool
	cancelled  bool
	done       bool
}

func newInput(label string, check func(string) string, allowEmpty bool) inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	if allowEmpty {
		ti.Placeholder = "Optional - press Enter to skip"
	}

	return inputModel{
		label:      label,
		input:      ti,
		check:      check,
		allowEmpty: allowEmpty,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if value == "" {
		if m.allowEmpty {
			m.done = true
			return m, tea.Quit
		}
		m.problem = "A value is required"
		return m, nil
	}
	if m.check != nil {
		if problem := m.check(value); problem != "" {
			m.problem = problem
			return m, nil
		}
	}
	m.value = value
	m.ok = true
	m.done = true
	return m, tea.Quit
}

func (m inputModel) finished() bool { return m.done }

func (m inputModel) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s:\n\n%s\n", m.label, m.input.View())
	if m.problem != "" {
		view += "\n" + ui.ErrorStyle.Render(m.problem) + "\n"
	}
	return view + ui.DescStyle.Render("\n(press enter to confirm, esc to cancel)") + "\n"
}

type pauseModel struct{ done bool }

func (m pauseModel) Init() tea.Cmd {
	return nil
}

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pauseModel) finished() bool { return m.done }

func (m pauseModel) View() string {
	if m.done {
		return ""
	}
	return ui.DescStyle.Render("\nPress any key to continue...") + "\n"
}
