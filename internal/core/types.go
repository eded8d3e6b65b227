package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	AppName    = "TuskMenu"
	AppVersion = "0.1.0"
)

var ErrNotFound = errors.New("not found")

type Film struct {
	ID    int64
	Title string
	Year  int
}

func (f Film) String() string {
	if f.Year == 0 {
		return fmt.Sprintf("#%d %s", f.ID, f.Title)
	}
	return fmt.Sprintf("#%d %s (%d)", f.ID, f.Title, f.Year)
}

type Collection struct {
	ID          int64
	Name        string
	Description string
	Films       []Film
}

func (c *Collection) Len() int {
	return len(c.Films)
}

func (c *Collection) Has(filmID int64) bool {
	for _, f := range c.Films {
		if f.ID == filmID {
			return true
		}
	}
	return false
}

// Summary is the film count line shown above a collection listing.
func (c *Collection) Summary() string {
	switch n := c.Len(); n {
	case 0:
		return "No films"
	case 1:
		return "1 film"
	default:
		return fmt.Sprintf("%d films", n)
	}
}

func (c *Collection) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, strings.ToLower(c.Summary()))
}

type Dish struct {
	ID         int64
	Name       string
	PriceCents int
	Vegetarian bool
}

func (d Dish) String() string {
	prefix := ""
	if d.Vegetarian {
		prefix = "(V) "
	}
	return fmt.Sprintf("%s%s - %d.%02d€", prefix, d.Name, d.PriceCents/100, d.PriceCents%100)
}
