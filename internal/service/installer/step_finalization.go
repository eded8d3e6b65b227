package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills the defaults the user was not asked about
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if state.EnvVars["TUSKMENU_DEBUG"] == "" {
		state.EnvVars["TUSKMENU_DEBUG"] = "false"
	}
	if state.EnvVars["TUSKMENU_UI"] == "" {
		state.EnvVars["TUSKMENU_UI"] = "line"
	}
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
