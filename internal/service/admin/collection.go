package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/conv"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

// CollectionAdmin edits the films of a single collection.
type CollectionAdmin struct {
	Deps
	collection *core.Collection
}

// NewCollectionAdmin loads the collection; a missing one is core.ErrNotFound.
func NewCollectionAdmin(ctx context.Context, deps Deps, id int64) (*CollectionAdmin, error) {
	c, err := deps.Collections.GetCollection(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	return &CollectionAdmin{Deps: deps, collection: c}, nil
}

func (a *CollectionAdmin) Title() menu.TitleSource {
	width := a.TitleWidth
	return menu.Dynamic(func(c *core.Collection) string {
		return "Manage collection | " + ShortTitle(c.Name, width)
	}, a.collection)
}

func (a *CollectionAdmin) Run(ctx context.Context) error {
	return collectionMenu.Run(ctx, a.Console, a)
}

var collectionTools = menu.NewRegistry[*CollectionAdmin]().
	Add(menu.Tool[*CollectionAdmin]{
		Name:    "Show collection",
		Rank:    menu.At(1),
		When:    (*CollectionAdmin).notEmpty,
		Handler: (*CollectionAdmin).show,
	}).
	Add(menu.Tool[*CollectionAdmin]{
		Name:    "Add film",
		Rank:    menu.At(2),
		Handler: (*CollectionAdmin).addFilm,
	}).
	Add(menu.Tool[*CollectionAdmin]{
		Name:    "Remove film",
		Rank:    menu.At(3),
		When:    (*CollectionAdmin).notEmpty,
		Handler: (*CollectionAdmin).removeFilm,
	}).
	Add(menu.Tool[*CollectionAdmin]{
		Name:        "Rename",
		Rank:        menu.At(4),
		Description: "Collection names are unique.",
		Handler:     (*CollectionAdmin).rename,
	}).
	Add(menu.Tool[*CollectionAdmin]{
		Name:        "Edit description",
		Rank:        menu.At(5),
		Description: "Markdown is accepted. A single - clears the description.",
		Handler:     (*CollectionAdmin).describe,
	})

var collectionMenu = &menu.Menu[*CollectionAdmin]{
	Tools:  collectionTools,
	Before: (*CollectionAdmin).reload,
	Describe: func(a *CollectionAdmin) string {
		if a.collection.Description == "" {
			return a.collection.String()
		}
		return a.collection.String() + "\n" + conv.MarkdownToText(a.collection.Description)
	},
}

func (a *CollectionAdmin) notEmpty() bool {
	return a.collection.Len() > 0
}

// reload updates the collection in place so the bound title follows renames.
func (a *CollectionAdmin) reload(ctx context.Context) error {
	c, err := a.Collections.GetCollection(ctx, a.collection.ID)
	if err != nil {
		return err
	}
	*a.collection = *c
	return nil
}

func (a *CollectionAdmin) show(ctx context.Context) error {
	a.Console.Println(a.collection.Summary())
	a.Console.Println("")
	for _, f := range a.collection.Films {
		a.Console.Println(f.String())
	}
	return a.Console.Pause(ctx)
}

func (a *CollectionAdmin) addFilm(ctx context.Context) error {
	films, err := a.Films.ListFilms(ctx)
	if err != nil {
		return err
	}

	available := make(map[int64]bool)
	for _, f := range films {
		if a.collection.Has(f.ID) {
			continue
		}
		available[f.ID] = true
		a.Console.Println(f.String())
	}
	if len(available) == 0 {
		a.Console.Println("Every film in the catalog is already in this collection.")
		return a.Console.Pause(ctx)
	}
	a.Console.Println("")

	id, ok, err := a.Console.Number(ctx, "Film ID", func(n int) bool { return available[int64(n)] }, true)
	if err != nil || !ok {
		return err
	}

	if err := a.Collections.AddToCollection(ctx, a.collection.ID, int64(id)); err != nil {
		return err
	}
	log.FromCtx(ctx).Info().Int64("collection", a.collection.ID).Int("film", id).Msg("film added to collection")
	return nil
}

func (a *CollectionAdmin) removeFilm(ctx context.Context) error {
	for _, f := range a.collection.Films {
		a.Console.Println(f.String())
	}
	a.Console.Println("")

	id, ok, err := a.Console.Number(ctx, "Film ID", func(n int) bool { return a.collection.Has(int64(n)) }, true)
	if err != nil || !ok {
		return err
	}
	return a.Collections.RemoveFromCollection(ctx, a.collection.ID, int64(id))
}

func (a *CollectionAdmin) rename(ctx context.Context) error {
	all, err := a.Collections.ListCollections(ctx)
	if err != nil {
		return err
	}

	name, ok, err := a.Console.Text(ctx, "New name", func(s string) bool {
		other := collectionNamed(all, s)
		return notBlank(s) && (other == nil || other.ID == a.collection.ID)
	}, true)
	if err != nil || !ok {
		return err
	}
	name = strings.TrimSpace(name)
	if err := a.Collections.RenameCollection(ctx, a.collection.ID, name); err != nil {
		return err
	}
	a.collection.Name = name
	return nil
}

func (a *CollectionAdmin) describe(ctx context.Context) error {
	if a.collection.Description != "" {
		a.Console.Println(a.collection.Description)
		a.Console.Println("")
	}

	text, ok, err := a.Console.Text(ctx, "Description", notBlank, true)
	if err != nil || !ok {
		return err
	}
	if text == "-" {
		text = ""
	}
	return a.Collections.DescribeCollection(ctx, a.collection.ID, text)
}
