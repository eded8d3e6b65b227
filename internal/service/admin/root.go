package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

const (
	ViewCatalog     menu.Key = "catalog"
	ViewCollections menu.Key = "collections"
)

const (
	minYear = 1888
	maxYear = 2100
)

// RootAdmin is the entry menu. It shows either the catalog tools or the
// collection tools; a few tools live in both views at different positions.
type RootAdmin struct {
	Deps
	view        menu.Key
	films       []core.Film
	collections []*core.Collection
}

func NewRootAdmin(deps Deps) *RootAdmin {
	return &RootAdmin{Deps: deps, view: ViewCatalog}
}

func (a *RootAdmin) Title() menu.TitleSource {
	return menu.Static(core.AppName)
}

func (a *RootAdmin) Run(ctx context.Context) error {
	return rootMenu.Run(ctx, a.Console, a)
}

var rootTools = menu.NewRegistry[*RootAdmin]().
	Add(menu.Tool[*RootAdmin]{
		Name:    "Show catalog",
		Rank:    menu.At(1),
		Keys:    menu.InKey(ViewCatalog),
		When:    func(a *RootAdmin) bool { return len(a.films) > 0 },
		Handler: (*RootAdmin).showCatalog,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Add film",
		Rank:    menu.At(2),
		Keys:    menu.InKey(ViewCatalog),
		Handler: (*RootAdmin).addFilm,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:        "Search catalog",
		Rank:        menu.At(3),
		Keys:        menu.InKey(ViewCatalog),
		Description: "Fuzzy search over film titles.",
		When:        func(a *RootAdmin) bool { return len(a.films) > 0 },
		Handler:     (*RootAdmin).searchCatalog,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Show collections",
		Rank:    menu.At(1),
		Keys:    menu.InKey(ViewCollections),
		When:    func(a *RootAdmin) bool { return len(a.collections) > 0 },
		Handler: (*RootAdmin).showCollections,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "New collection",
		Rank:    menu.At(2),
		Keys:    menu.InKey(ViewCollections),
		Handler: (*RootAdmin).newCollection,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Manage collection",
		Rank:    menu.At(3),
		Keys:    menu.InKey(ViewCollections),
		When:    func(a *RootAdmin) bool { return len(a.collections) > 0 },
		Handler: (*RootAdmin).manageCollection,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Delete collection",
		Rank:    menu.At(4),
		Keys:    menu.InKey(ViewCollections),
		When:    func(a *RootAdmin) bool { return len(a.collections) > 0 },
		Handler: (*RootAdmin).deleteCollection,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Switch view",
		Rank:    menu.AtEach(4, 5),
		Keys:    menu.InKeys(ViewCatalog, ViewCollections),
		Handler: (*RootAdmin).switchView,
	}).
	Add(menu.Tool[*RootAdmin]{
		Name:    "Manage dishes",
		Rank:    menu.AtEach(5, 6),
		Keys:    menu.InKeys(ViewCatalog, ViewCollections),
		Handler: (*RootAdmin).manageDishes,
	})

var rootMenu = &menu.Menu[*RootAdmin]{
	Tools:     rootTools,
	Before:    (*RootAdmin).refresh,
	ActiveKey: func(a *RootAdmin) menu.Key { return a.view },
	Describe: func(a *RootAdmin) string {
		if a.view == ViewCollections {
			return "Collections view"
		}
		return "Catalog view"
	},
}

// refresh reloads the catalog and prints the summary line on every redraw.
func (a *RootAdmin) refresh(ctx context.Context) error {
	films, err := a.Films.ListFilms(ctx)
	if err != nil {
		return err
	}
	collections, err := a.Collections.ListCollections(ctx)
	if err != nil {
		return err
	}
	a.films, a.collections = films, collections

	a.Console.Println(fmt.Sprintf("Catalog: %d films · Collections: %d", len(films), len(collections)))
	a.Console.Println("")
	return nil
}

func (a *RootAdmin) showCatalog(ctx context.Context) error {
	for _, f := range a.films {
		a.Console.Println(f.String())
	}
	return a.Console.Pause(ctx)
}

func (a *RootAdmin) addFilm(ctx context.Context) error {
	title, ok, err := a.Console.Text(ctx, "Title", notBlank, true)
	if err != nil || !ok {
		return err
	}
	year, _, err := a.Console.Number(ctx, "Year", func(y int) bool { return y >= minYear && y <= maxYear }, true)
	if err != nil {
		return err
	}

	film, err := a.Films.AddFilm(ctx, strings.TrimSpace(title), year)
	if err != nil {
		return err
	}
	log.FromCtx(ctx).Info().Int64("film", film.ID).Msg("film added")
	return nil
}

func (a *RootAdmin) searchCatalog(ctx context.Context) error {
	query, ok, err := a.Console.Text(ctx, "Search", notBlank, true)
	if err != nil || !ok {
		return err
	}

	titles := make([]string, len(a.films))
	for i, f := range a.films {
		titles[i] = strings.ToLower(f.Title)
	}

	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(query)), titles)
	if len(matches) == 0 {
		a.Console.Println("No films match " + fmt.Sprintf("%q", query))
	}
	for _, m := range matches {
		a.Console.Println(a.films[m.Index].String())
	}
	return a.Console.Pause(ctx)
}

func (a *RootAdmin) showCollections(ctx context.Context) error {
	for _, c := range a.collections {
		a.Console.Println(fmt.Sprintf("#%d %s", c.ID, c))
	}
	return a.Console.Pause(ctx)
}

func (a *RootAdmin) newCollection(ctx context.Context) error {
	name, ok, err := a.Console.Text(ctx, "Name", func(s string) bool {
		return notBlank(s) && a.collectionByName(strings.TrimSpace(s)) == nil
	}, true)
	if err != nil || !ok {
		return err
	}
	descr, _, err := a.Console.Text(ctx, "Description", nil, true)
	if err != nil {
		return err
	}

	c, err := a.Collections.CreateCollection(ctx, strings.TrimSpace(name), strings.TrimSpace(descr))
	if err != nil {
		return err
	}
	log.FromCtx(ctx).Info().Int64("collection", c.ID).Msg("collection created")
	return nil
}

func (a *RootAdmin) manageCollection(ctx context.Context) error {
	id, ok, err := a.pickCollection(ctx)
	if err != nil || !ok {
		return err
	}

	ca, err := NewCollectionAdmin(ctx, a.Deps, id)
	if err != nil {
		return err
	}
	return ca.Run(ctx)
}

func (a *RootAdmin) deleteCollection(ctx context.Context) error {
	id, ok, err := a.pickCollection(ctx)
	if err != nil || !ok {
		return err
	}
	sure, err := a.Console.Confirm(ctx, "Delete the collection? The films stay in the catalog")
	if err != nil || !sure {
		return err
	}
	return a.Collections.DeleteCollection(ctx, id)
}

func (a *RootAdmin) switchView(ctx context.Context) error {
	if a.view == ViewCatalog {
		a.view = ViewCollections
	} else {
		a.view = ViewCatalog
	}
	return nil
}

func (a *RootAdmin) manageDishes(ctx context.Context) error {
	return NewDishAdmin(a.Deps).Run(ctx)
}

func (a *RootAdmin) pickCollection(ctx context.Context) (int64, bool, error) {
	for _, c := range a.collections {
		a.Console.Println(fmt.Sprintf("#%d %s", c.ID, c))
	}
	a.Console.Println("")

	id, ok, err := a.Console.Number(ctx, "Collection ID", func(n int) bool {
		return a.collectionByID(int64(n)) != nil
	}, true)
	return int64(id), ok, err
}

func (a *RootAdmin) collectionByID(id int64) *core.Collection {
	for _, c := range a.collections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (a *RootAdmin) collectionByName(name string) *core.Collection {
	return collectionNamed(a.collections, name)
}
