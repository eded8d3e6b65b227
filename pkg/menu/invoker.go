package menu

import (
	"context"

	"github.com/sandevgo/tuskmenu/pkg/log"
)

func invoke[A any](ctx context.Context, screen Screen, parent string, t Tool[A], a A) error {
	log.FromCtx(ctx).Debug().Str("menu", parent).Str("tool", t.Name).Msg("invoking tool")

	screen.Title(parent+" - "+t.Name, true)
	if t.Description != "" {
		screen.Println(t.Description)
	}
	return t.Handler(a, ctx)
}
