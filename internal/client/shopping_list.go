package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"recipes/internal/domain/shoppinglist"
)

type ShoppingList struct {
	c *Client
}

type addItemRequest struct {
	UserID     string `json:"userId"`
	Ingredient string `json:"ingredient"`
}

type toggleRequest struct {
	IsChecked int    `json:"isChecked"`
	UserID    string `json:"userId"`
}

// Items returns the user's list in creation order, or an empty list when the
// request fails.
func (s *ShoppingList) Items(ctx context.Context, userID string) []shoppinglist.Item {
	out := []shoppinglist.Item{}
	if err := s.c.do(ctx, http.MethodGet, "/shopping-list/"+url.PathEscape(userID), nil, &out); err != nil {
		s.c.logger.Errorw("error fetching shopping list", "user_id", userID, "error", err)
		return []shoppinglist.Item{}
	}
	return out
}

func (s *ShoppingList) AddItem(ctx context.Context, userID, ingredient string) (*shoppinglist.Item, error) {
	var out shoppinglist.Item
	if err := s.c.do(ctx, http.MethodPost, "/shopping-list", addItemRequest{UserID: userID, Ingredient: ingredient}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItems adds ingredients one at a time, in order, and stops at the first
// failure. The items created before the failure are returned with the error.
func (s *ShoppingList) AddItems(ctx context.Context, userID string, ingredients []string) ([]shoppinglist.Item, error) {
	added := make([]shoppinglist.Item, 0, len(ingredients))
	for _, ingredient := range ingredients {
		item, err := s.AddItem(ctx, userID, ingredient)
		if err != nil {
			return added, fmt.Errorf("add %q: %w", ingredient, err)
		}
		added = append(added, *item)
	}
	return added, nil
}

func (s *ShoppingList) Toggle(ctx context.Context, id int64, userID string, checked bool) error {
	body := toggleRequest{UserID: userID}
	if checked {
		body.IsChecked = 1
	}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/shopping-list/%d", id), body, nil)
}

func (s *ShoppingList) Delete(ctx context.Context, id int64, userID string) error {
	path := fmt.Sprintf("/shopping-list/%d?userId=%s", id, url.QueryEscape(userID))
	return s.c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ClearChecked removes every checked item and returns how many were removed.
func (s *ShoppingList) ClearChecked(ctx context.Context, userID string) (int64, error) {
	var out struct {
		Deleted int64 `json:"deleted"`
	}
	if err := s.c.do(ctx, http.MethodDelete, "/shopping-list/"+url.PathEscape(userID)+"/checked", nil, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}
