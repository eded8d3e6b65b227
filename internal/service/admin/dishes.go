package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

type DishAdmin struct {
	Deps
	dishes []core.Dish
}

func NewDishAdmin(deps Deps) *DishAdmin {
	return &DishAdmin{Deps: deps}
}

func (a *DishAdmin) Title() menu.TitleSource {
	return menu.Static("Dishes")
}

func (a *DishAdmin) Run(ctx context.Context) error {
	return dishMenu.Run(ctx, a.Console, a)
}

var dishTools = menu.NewRegistry[*DishAdmin]().
	Add(menu.Tool[*DishAdmin]{Name: "Show dishes", Rank: menu.At(1), When: (*DishAdmin).any, Handler: (*DishAdmin).show}).
	Add(menu.Tool[*DishAdmin]{Name: "Add dish", Rank: menu.At(2), Handler: (*DishAdmin).add}).
	Add(menu.Tool[*DishAdmin]{Name: "Remove dish", Rank: menu.At(3), When: (*DishAdmin).any, Handler: (*DishAdmin).remove}).
	Add(menu.Tool[*DishAdmin]{
		Name:        "Toggle vegetarian",
		Rank:        menu.At(4),
		Description: "Vegetarian dishes are listed with a (V) mark.",
		When:        (*DishAdmin).any,
		Handler:     (*DishAdmin).toggleVegetarian,
	})

var dishMenu = &menu.Menu[*DishAdmin]{
	Tools:  dishTools,
	Before: (*DishAdmin).reload,
	Describe: func(a *DishAdmin) string {
		veg := 0
		for _, d := range a.dishes {
			if d.Vegetarian {
				veg++
			}
		}
		return fmt.Sprintf("%d dishes, %d vegetarian", len(a.dishes), veg)
	},
}

func (a *DishAdmin) any() bool {
	return len(a.dishes) > 0
}

func (a *DishAdmin) reload(ctx context.Context) error {
	dishes, err := a.Dishes.ListDishes(ctx)
	if err != nil {
		return err
	}
	a.dishes = dishes
	return nil
}

func (a *DishAdmin) show(ctx context.Context) error {
	for _, d := range a.dishes {
		a.Console.Println(d.String())
	}
	return a.Console.Pause(ctx)
}

func (a *DishAdmin) add(ctx context.Context) error {
	name, ok, err := a.Console.Text(ctx, "Name", notBlank, true)
	if err != nil || !ok {
		return err
	}
	price, ok, err := a.Console.Number(ctx, "Price (cents)", func(n int) bool { return n > 0 }, true)
	if err != nil || !ok {
		return err
	}
	veg, err := a.Console.Confirm(ctx, "Vegetarian?")
	if err != nil {
		return err
	}

	_, err = a.Dishes.AddDish(ctx, core.Dish{Name: strings.TrimSpace(name), PriceCents: price, Vegetarian: veg})
	return err
}

func (a *DishAdmin) remove(ctx context.Context) error {
	d, ok, err := a.pick(ctx)
	if err != nil || !ok {
		return err
	}
	return a.Dishes.DeleteDish(ctx, d.ID)
}

func (a *DishAdmin) toggleVegetarian(ctx context.Context) error {
	d, ok, err := a.pick(ctx)
	if err != nil || !ok {
		return err
	}
	d.Vegetarian = !d.Vegetarian
	return a.Dishes.UpdateDish(ctx, d)
}

func (a *DishAdmin) pick(ctx context.Context) (core.Dish, bool, error) {
	for _, d := range a.dishes {
		a.Console.Println(fmt.Sprintf("#%d %s", d.ID, d))
	}
	a.Console.Println("")

	id, ok, err := a.Console.Number(ctx, "Dish ID", func(n int) bool {
		_, found := a.byID(int64(n))
		return found
	}, true)
	if err != nil || !ok {
		return core.Dish{}, false, err
	}
	d, _ := a.byID(int64(id))
	return d, true, nil
}

func (a *DishAdmin) byID(id int64) (core.Dish, bool) {
	for _, d := range a.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return core.Dish{}, false
}
