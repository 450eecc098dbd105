package storage

import (
	"recipes/internal/db"
	"recipes/internal/domain/favorites"
	"recipes/internal/domain/reviews"
	"recipes/internal/domain/shoppinglist"
)

type Container struct {
	Favorites    favorites.Store
	ShoppingList shoppinglist.Store
	Reviews      reviews.Store
}

func NewContainer(q db.Querier) *Container {
	return &Container{
		Favorites:    favorites.NewRepository(q),
		ShoppingList: shoppinglist.NewRepository(q),
		Reviews:      reviews.NewRepository(q),
	}
}
