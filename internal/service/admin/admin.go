// Package admin holds the concrete administrators of the catalog application.
// Each administrator declares its tools once in a package-level registry and
// runs them through a menu.Menu.
package admin

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

// Console is what the administrators talk to: a menu terminal with form prompts.
type Console interface {
	menu.Terminal
	core.Forms
}

type Deps struct {
	Console     Console
	Films       core.CatalogRepository
	Collections core.CollectionRepository
	Dishes      core.DishRepository
	// TitleWidth is the longest collection name shown untouched in a title.
	TitleWidth int
}

const ellipsis = "..."

// ShortTitle keeps s when it fits in width cells, otherwise cuts it to
// width-10 cells followed by an ellipsis. A width of 25 keeps 15.
func ShortTitle(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	keep := width - 10
	if keep < 1 {
		keep = 1
	}
	return runewidth.Truncate(s, keep+len(ellipsis), ellipsis)
}

func notBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return true
		}
	}
	return false
}

// collectionNamed finds a collection by name, ignoring case and surrounding
// blanks. Names are unique under that comparison.
func collectionNamed(collections []*core.Collection, name string) *core.Collection {
	name = strings.TrimSpace(name)
	for _, c := range collections {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
