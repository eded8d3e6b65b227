package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/tuskmenu/internal/core"
)

type DishesRepo struct {
	db *sql.DB
}

func NewDishesRepo(db *sql.DB) *DishesRepo {
	return &DishesRepo{db: db}
}

func (r *DishesRepo) AddDish(ctx context.Context, d core.Dish) (core.Dish, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO dishes (name, price_cents, vegetarian) VALUES (?, ?, ?)`, d.Name, d.PriceCents, d.Vegetarian)
	if err != nil {
		return core.Dish{}, fmt.Errorf("failed to insert dish: %w", err)
	}
	d.ID, err = res.LastInsertId()
	if err != nil {
		return core.Dish{}, err
	}
	return d, nil
}

func (r *DishesRepo) ListDishes(ctx context.Context) ([]core.Dish, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price_cents, vegetarian FROM dishes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []core.Dish
	for rows.Next() {
		var d core.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.PriceCents, &d.Vegetarian); err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *DishesRepo) UpdateDish(ctx context.Context, d core.Dish) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dishes SET name = ?, price_cents = ?, vegetarian = ? WHERE id = ?`,
		d.Name, d.PriceCents, d.Vegetarian, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update dish: %w", err)
	}
	return expectRow(res, "dish", d.ID)
}

func (r *DishesRepo) DeleteDish(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dishes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dish: %w", err)
	}
	return expectRow(res, "dish", id)
}
