package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/log"
)

var demoFilms = []core.Film{
	{Title: "Laura", Year: 1944},
	{Title: "Gilda", Year: 1946},
	{Title: "The Third Man", Year: 1949},
	{Title: "Rashomon", Year: 1950},
	{Title: "Viridiana", Year: 1961},
	{Title: "Stalker", Year: 1979},
}

var demoDishes = []core.Dish{
	{Name: "Escalivada", PriceCents: 750, Vegetarian: true},
	{Name: "Fideuà", PriceCents: 1250},
	{Name: "Crema catalana", PriceCents: 500, Vegetarian: true},
}

// Seed fills an empty database with a small demo catalog. It reports whether
// anything was written.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM films`).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count films: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	films := NewFilmsRepo(db)
	collections := NewCollectionsRepo(db)
	dishes := NewDishesRepo(db)

	var added []core.Film
	for _, f := range demoFilms {
		film, err := films.AddFilm(ctx, f.Title, f.Year)
		if err != nil {
			return false, err
		}
		added = append(added, film)
	}

	noir, err := collections.CreateCollection(ctx, "Film noir", "Shadows, *femmes fatales* and rain.")
	if err != nil {
		return false, err
	}
	for _, f := range added[:3] {
		if err := collections.AddToCollection(ctx, noir.ID, f.ID); err != nil {
			return false, err
		}
	}

	for _, d := range demoDishes {
		if _, err := dishes.AddDish(ctx, d); err != nil {
			return false, err
		}
	}

	log.FromCtx(ctx).Info().Int("films", len(added)).Int("dishes", len(demoDishes)).Msg("seeded demo catalog")
	return true, nil
}
