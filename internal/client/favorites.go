package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"recipes/internal/domain/favorites"
)

// SaveFavorite is what the recipe screen sends when the heart is tapped.
type SaveFavorite struct {
	UserID   string  `json:"userId"`
	RecipeID int64   `json:"recipeId"`
	Title    string  `json:"title"`
	Image    *string `json:"image,omitempty"`
	CookTime *string `json:"cookTime,omitempty"`
	Servings *string `json:"servings,omitempty"`
}

type Favorites struct {
	c *Client
}

// List returns the user's favorites, or an empty list when the request fails.
func (f *Favorites) List(ctx context.Context, userID string) []favorites.Favorite {
	out := []favorites.Favorite{}
	if err := f.c.do(ctx, http.MethodGet, "/favorites/"+url.PathEscape(userID), nil, &out); err != nil {
		f.c.logger.Errorw("error fetching favorites", "user_id", userID, "error", err)
		return []favorites.Favorite{}
	}
	return out
}

func (f *Favorites) IsSaved(ctx context.Context, userID string, recipeID int64) (bool, error) {
	var out struct {
		Saved bool `json:"saved"`
	}
	path := fmt.Sprintf("/favorites/%s/%d", url.PathEscape(userID), recipeID)
	if err := f.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out.Saved, nil
}

func (f *Favorites) Save(ctx context.Context, in SaveFavorite) (*favorites.Favorite, error) {
	var out favorites.Favorite
	if err := f.c.do(ctx, http.MethodPost, "/favorites", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Favorites) Remove(ctx context.Context, userID string, recipeID int64) error {
	path := fmt.Sprintf("/favorites/%s/%d", url.PathEscape(userID), recipeID)
	return f.c.do(ctx, http.MethodDelete, path, nil, nil)
}
