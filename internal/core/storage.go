package core

import "context"

type CatalogRepository interface {
	AddFilm(ctx context.Context, title string, year int) (Film, error)
	GetFilm(ctx context.Context, id int64) (Film, error)
	ListFilms(ctx context.Context) ([]Film, error)
}

type CollectionRepository interface {
	CreateCollection(ctx context.Context, name, description string) (*Collection, error)
	GetCollection(ctx context.Context, id int64) (*Collection, error)
	ListCollections(ctx context.Context) ([]*Collection, error)
	RenameCollection(ctx context.Context, id int64, name string) error
	DescribeCollection(ctx context.Context, id int64, description string) error
	DeleteCollection(ctx context.Context, id int64) error
	AddToCollection(ctx context.Context, collectionID, filmID int64) error
	RemoveFromCollection(ctx context.Context, collectionID, filmID int64) error
}

type DishRepository interface {
	AddDish(ctx context.Context, d Dish) (Dish, error)
	ListDishes(ctx context.Context) ([]Dish, error)
	UpdateDish(ctx context.Context, d Dish) error
	DeleteDish(ctx context.Context, id int64) error
}
