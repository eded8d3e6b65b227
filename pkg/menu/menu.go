package menu

import (
	"context"

	"github.com/sandevgo/tuskmenu/pkg/log"
)

// Administrator is the instance a menu operates on.
type Administrator interface {
	Title() TitleSource
}

// Menu is the display loop of one administrator type.
type Menu[A Administrator] struct {
	Tools *Registry[A]
	// Before runs after the title is drawn and before the options are listed,
	// once per cycle.
	Before func(a A, ctx context.Context) error
	// ActiveKey picks the visible group. Nil always shows the default group.
	ActiveKey func(a A) Key
	// Describe supplies the text shown above the options.
	Describe func(a A) string
}

// Run redraws the menu until the selector reports Back. Errors from hooks and
// handlers are returned as is and end the loop.
func (m *Menu[A]) Run(ctx context.Context, term Terminal, a A) error {
	logger := log.FromCtx(ctx)

	for cycle := 1; ; cycle++ {
		title := a.Title().Resolve()
		term.Title(title, true)

		if m.Before != nil {
			if err := m.Before(a, ctx); err != nil {
				return err
			}
		}

		active := NoKey
		if m.ActiveKey != nil {
			active = m.ActiveKey(a)
		}

		req := SelectRequest{Options: m.options(title, term, active, a)}
		if m.Describe != nil {
			req.Description = m.Describe(a)
		}

		logger.Debug().
			Str("menu", title).
			Str("key", string(active)).
			Int("cycle", cycle).
			Int("tools", len(req.Options)).
			Msg("menu cycle")

		code, err := term.Select(ctx, req)
		if err != nil {
			return err
		}
		if code == Back {
			return nil
		}
	}
}

func (m *Menu[A]) options(title string, screen Screen, active Key, a A) []Option {
	if m.Tools == nil {
		return nil
	}

	tools := Select(m.Tools.Tools(), active)
	opts := make([]Option, 0, len(tools))
	for _, t := range tools {
		if !t.visible(a) {
			continue
		}
		opts = append(opts, Option{
			Name: t.Name,
			Run: func(ctx context.Context) error {
				return invoke(ctx, screen, title, t, a)
			},
		})
	}
	return opts
}
