package installer

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitleWidth = "25"

// TitleWidthStep asks how many cells a collection name may take in a title
type TitleWidthStep struct {
	input textinput.Model
	err   error
}

func NewTitleWidthStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 3
	ti.Width = 10
	ti.Placeholder = defaultTitleWidth

	return &TitleWidthStep{input: ti}
}

func (s *TitleWidthStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TitleWidthStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := s.input.Value()
		if value == "" {
			value = defaultTitleWidth
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 4 {
			s.err = fmt.Errorf("%q is not a width of at least 4", value)
			return s, nil
		}
		state.EnvVars["TUSKMENU_TITLE_WIDTH"] = strconv.Itoa(n)
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TitleWidthStep) View(state *InstallState) string {
	view := fmt.Sprintf("Longest collection name shown in full in a title:\n\n%s\n", s.input.View())
	if s.err != nil {
		view += "\n" + errorStyle.Render(s.err.Error()) + "\n"
	}
	return view + "\n(press enter to confirm)\n"
}
