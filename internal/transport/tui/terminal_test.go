package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/tuskmenu/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(s ...string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, k := range s {
		switch k {
		case "enter":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEsc})
		case "down":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyDown})
		case "up":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyUp})
		case "backspace":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyBackspace})
		default:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
	return msgs
}

type finisher interface{ finished() bool }

// scripted feeds messages to each model in turn, one script per program run.
func scripted(scripts ...[]tea.Msg) Runner {
	return func(ctx context.Context, m tea.Model) (tea.Model, error) {
		if len(scripts) == 0 {
			return nil, errors.New("no script left")
		}
		script := scripts[0]
		scripts = scripts[1:]
		for _, msg := range script {
			m, _ = m.Update(msg)
			_ = m.View()
			if m.(finisher).finished() {
				return m, nil
			}
		}
		return m, nil
	}
}

func TestTerminal_Select(t *testing.T) {
	tests := []struct {
		name     string
		script   []tea.Msg
		wantCode int
		wantRun  string
	}{
		{name: "enter on first", script: keys("enter"), wantCode: 1, wantRun: "Show"},
		{name: "move down", script: keys("down", "enter"), wantCode: 2, wantRun: "Add"},
		{name: "digit jump", script: keys("2", "enter"), wantCode: 2, wantRun: "Add"},
		{name: "cursor stops at back", script: keys("down", "down", "down", "enter"), wantCode: menu.Back},
		{name: "zero selects back", script: keys("0", "enter"), wantCode: menu.Back},
		{name: "esc", script: keys("esc"), wantCode: menu.Back},
		{name: "up at top stays", script: keys("up", "enter"), wantCode: 1, wantRun: "Show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran string
			opt := func(name string) menu.Option {
				return menu.Option{Name: name, Run: func(ctx context.Context) error {
					ran = name
					return nil
				}}
			}

			term := NewWithRunner(&bytes.Buffer{}, scripted(tt.script))
			code, err := term.Select(context.Background(), menu.SelectRequest{
				Options: []menu.Option{opt("Show"), opt("Add")},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantRun, ran)
		})
	}
}

func TestTerminal_SelectPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	term := NewWithRunner(&bytes.Buffer{}, scripted(keys("enter")))

	_, err := term.Select(context.Background(), menu.SelectRequest{
		Options: []menu.Option{{Name: "Fail", Run: func(ctx context.Context) error { return boom }}},
	})
	assert.ErrorIs(t, err, boom)

	term = NewWithRunner(&bytes.Buffer{}, scripted())
	_, err = term.Select(context.Background(), menu.SelectRequest{})
	assert.Error(t, err)
}

func TestTerminal_Number(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	t.Run("re-prompts until valid", func(t *testing.T) {
		term := NewWithRunner(&bytes.Buffer{}, scripted(keys("x", "enter", "backspace", "-", "1", "enter", "backspace", "backspace", "7", "enter")))
		n, ok, err := term.Number(context.Background(), "Price", positive, false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 7, n)
	})

	t.Run("empty allowed", func(t *testing.T) {
		term := NewWithRunner(&bytes.Buffer{}, scripted(keys("enter")))
		_, ok, err := term.Number(context.Background(), "Price", positive, true)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cancel required", func(t *testing.T) {
		term := NewWithRunner(&bytes.Buffer{}, scripted(keys("esc")))
		_, _, err := term.Number(context.Background(), "Price", positive, false)
		assert.ErrorIs(t, err, ErrCancelled)
	})
}

func TestTerminal_TextConfirmPause(t *testing.T) {
	term := NewWithRunner(&bytes.Buffer{}, scripted(
		keys("enter", "N", "o", "i", "r", "enter"),
		keys("enter"),
		keys("down", "enter"),
		keys(" "),
	))
	ctx := context.Background()

	s, ok, err := term.Text(ctx, "Name", nil, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Noir", s)

	yes, err := term.Confirm(ctx, "Delete?")
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = term.Confirm(ctx, "Delete?")
	require.NoError(t, err)
	assert.False(t, yes)

	require.NoError(t, term.Pause(ctx))
}

func TestPicker_View(t *testing.T) {
	p := newPicker("Main", "2 films", []string{"Show", "Add"}, "--")
	view := p.View()
	assert.Contains(t, view, "Main")
	assert.Contains(t, view, "2 films")
	assert.Contains(t, view, "1. Show")
	assert.Contains(t, view, "0. Back")
	assert.Contains(t, view, "--")
}
