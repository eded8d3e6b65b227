package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/tuskmenu/internal/core"
)

type FilmsRepo struct {
	db *sql.DB
}

func NewFilmsRepo(db *sql.DB) *FilmsRepo {
	return &FilmsRepo{db: db}
}

func (r *FilmsRepo) AddFilm(ctx context.Context, title string, year int) (core.Film, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO films (title, year) VALUES (?, ?)`, title, year)
	if err != nil {
		return core.Film{}, fmt.Errorf("failed to insert film: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Film{}, err
	}
	return core.Film{ID: id, Title: title, Year: year}, nil
}

func (r *FilmsRepo) GetFilm(ctx context.Context, id int64) (core.Film, error) {
	f := core.Film{ID: id}
	err := r.db.QueryRowContext(ctx, `SELECT title, year FROM films WHERE id = ?`, id).Scan(&f.Title, &f.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Film{}, fmt.Errorf("film %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Film{}, fmt.Errorf("failed to query film: %w", err)
	}
	return f, nil
}

func (r *FilmsRepo) ListFilms(ctx context.Context) ([]core.Film, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, year FROM films ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	var films []core.Film
	for rows.Next() {
		var f core.Film
		if err := rows.Scan(&f.ID, &f.Title, &f.Year); err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, f)
	}
	return films, rows.Err()
}
