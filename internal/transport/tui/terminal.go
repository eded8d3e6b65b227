package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/tuskmenu/internal/service/ui"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

var ErrCancelled = errors.New("input cancelled")

// Runner drives a bubbletea model to completion.
type Runner func(ctx context.Context, m tea.Model) (tea.Model, error)

// Terminal shows every prompt as a short-lived bubbletea program and writes
// titles and handler output straight to out.
type Terminal struct {
	out io.Writer
	run Runner
}

func New(in io.Reader, out io.Writer) *Terminal {
	return NewWithRunner(out, func(ctx context.Context, m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out)).Run()
	})
}

func NewWithRunner(out io.Writer, run Runner) *Terminal {
	return &Terminal{out: out, run: run}
}

func (t *Terminal) Title(title string, clear bool) {
	if clear {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
	fmt.Fprintln(t.out, ui.TitleStyle.Render(title))
	fmt.Fprintln(t.out, ui.DescStyle.Render(ui.Rule(title)))
}

func (t *Terminal) Println(text string) {
	fmt.Fprintln(t.out, text)
}

func (t *Terminal) Select(ctx context.Context, req menu.SelectRequest) (int, error) {
	if req.Refresh && req.Title != "" {
		t.Title(req.Title, true)
		req.Title = ""
	}

	names := make([]string, len(req.Options))
	for i, opt := range req.Options {
		names[i] = opt.Name
	}

	res, err := t.run(ctx, newPicker(req.Title, req.Description, names, req.Separator))
	if err != nil {
		return menu.Back, fmt.Errorf("picker failed: %w", err)
	}

	chosen := res.(pickerModel).chosen
	if chosen < 0 {
		return menu.Back, nil
	}

	log.FromCtx(ctx).Debug().Str("option", names[chosen]).Msg("option selected")
	if err := req.Options[chosen].Run(ctx); err != nil {
		return chosen + 1, err
	}
	return chosen + 1, nil
}

func (t *Terminal) Number(ctx context.Context, label string, valid func(int) bool, allowEmpty bool) (int, bool, error) {
	check := func(s string) string {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Sprintf("%q is not a number", s)
		}
		if valid != nil && !valid(n) {
			return fmt.Sprintf("%d is not a valid value", n)
		}
		return ""
	}

	s, ok, err := t.ask(ctx, label, check, allowEmpty)
	if err != nil || !ok {
		return 0, false, err
	}
	n, _ := strconv.Atoi(s)
	return n, true, nil
}

func (t *Terminal) Text(ctx context.Context, label string, valid func(string) bool, allowEmpty bool) (string, bool, error) {
	var check func(string) string
	if valid != nil {
		check = func(s string) string {
			if !valid(s) {
				return fmt.Sprintf("%q is not a valid value", s)
			}
			return ""
		}
	}
	return t.ask(ctx, label, check, allowEmpty)
}

func (t *Terminal) Confirm(ctx context.Context, label string) (bool, error) {
	p := newPicker("", label, []string{"Yes"}, "")
	p.backLabel = "No"
	res, err := t.run(ctx, p)
	if err != nil {
		return false, fmt.Errorf("confirm failed: %w", err)
	}
	return res.(pickerModel).chosen == 0, nil
}

func (t *Terminal) Pause(ctx context.Context) error {
	if _, err := t.run(ctx, pauseModel{}); err != nil {
		return fmt.Errorf("pause failed: %w", err)
	}
	return nil
}

func (t *Terminal) ask(ctx context.Context, label string, check func(string) string, allowEmpty bool) (string, bool, error) {
	res, err := t.run(ctx, newInput(label, check, allowEmpty))
	if err != nil {
		return "", false, fmt.Errorf("input failed: %w", err)
	}

	m := res.(inputModel)
	if m.cancelled && !allowEmpty {
		return "", false, fmt.Errorf("%s: %w", label, ErrCancelled)
	}
	return m.value, m.ok, nil
}
