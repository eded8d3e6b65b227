package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/tuskmenu/internal/core"
	"github.com/sandevgo/tuskmenu/pkg/log"
)

type CollectionsRepo struct {
	db *sql.DB
}

func NewCollectionsRepo(db *sql.DB) *CollectionsRepo {
	return &CollectionsRepo{db: db}
}

func (r *CollectionsRepo) CreateCollection(ctx context.Context, name, description string) (*core.Collection, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO collections (name, description) VALUES (?, ?)`, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to insert collection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &core.Collection{ID: id, Name: name, Description: description}, nil
}

func (r *CollectionsRepo) GetCollection(ctx context.Context, id int64) (*core.Collection, error) {
	c := &core.Collection{ID: id}
	err := r.db.QueryRowContext(ctx, `SELECT name, description FROM collections WHERE id = ?`, id).
		Scan(&c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collection %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	films, err := r.films(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Films = films
	return c, nil
}

func (r *CollectionsRepo) ListCollections(ctx context.Context) ([]*core.Collection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM collections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	res := make([]*core.Collection, 0, len(ids))
	for _, id := range ids {
		c, err := r.GetCollection(ctx, id)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (r *CollectionsRepo) RenameCollection(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE collections SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename collection: %w", err)
	}
	return expectRow(res, "collection", id)
}

func (r *CollectionsRepo) DescribeCollection(ctx context.Context, id int64, description string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE collections SET description = ? WHERE id = ?`, description, id)
	if err != nil {
		return fmt.Errorf("failed to update collection description: %w", err)
	}
	return expectRow(res, "collection", id)
}

func (r *CollectionsRepo) DeleteCollection(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return expectRow(res, "collection", id)
}

func (r *CollectionsRepo) AddToCollection(ctx context.Context, collectionID, filmID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pos int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM collection_films WHERE collection_id = ?`, collectionID).
		Scan(&pos)
	if err != nil {
		return fmt.Errorf("failed to compute position: %w", err)
	}

	// Adding a film twice is a no-op
	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO collection_films (collection_id, film_id, position) VALUES (?, ?, ?)`,
		collectionID, filmID, pos)
	if err != nil {
		return fmt.Errorf("failed to add film to collection: %w", err)
	}

	log.FromCtx(ctx).Debug().Int64("collection", collectionID).Int64("film", filmID).Msg("film added to collection")
	return tx.Commit()
}

func (r *CollectionsRepo) RemoveFromCollection(ctx context.Context, collectionID, filmID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM collection_films WHERE collection_id = ? AND film_id = ?`, collectionID, filmID)
	if err != nil {
		return fmt.Errorf("failed to remove film from collection: %w", err)
	}
	return expectRow(res, "collection film", filmID)
}

func (r *CollectionsRepo) films(ctx context.Context, collectionID int64) ([]core.Film, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.title, f.year
		FROM collection_films cf
		JOIN films f ON f.id = cf.film_id
		WHERE cf.collection_id = ?
		ORDER BY cf.position`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection films: %w", err)
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

func expectRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, core.ErrNotFound)
	}
	return nil
}
