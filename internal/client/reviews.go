package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"recipes/internal/domain/reviews"
)

type NewReview struct {
	UserID     string  `json:"userId"`
	UserName   *string `json:"userName,omitempty"`
	UserAvatar *string `json:"userAvatar,omitempty"`
	RecipeID   int64   `json:"recipeId"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
}

type Reviews struct {
	c *Client
}

// ByRecipe returns a recipe's reviews oldest first, or an empty list on failure.
func (rv *Reviews) ByRecipe(ctx context.Context, recipeID int64) []reviews.Review {
	out := []reviews.Review{}
	if err := rv.c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/%d", recipeID), nil, &out); err != nil {
		rv.c.logger.Errorw("error fetching reviews", "recipe_id", recipeID, "error", err)
		return []reviews.Review{}
	}
	return out
}

// ByUser returns the reviews a user wrote, or an empty list on failure.
func (rv *Reviews) ByUser(ctx context.Context, userID string) []reviews.Review {
	out := []reviews.Review{}
	if err := rv.c.do(ctx, http.MethodGet, "/reviews/user/"+url.PathEscape(userID), nil, &out); err != nil {
		rv.c.logger.Errorw("error fetching user reviews", "user_id", userID, "error", err)
		return []reviews.Review{}
	}
	return out
}

func (rv *Reviews) Add(ctx context.Context, in NewReview) (*reviews.Review, error) {
	var out reviews.Review
	if err := rv.c.do(ctx, http.MethodPost, "/reviews", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (rv *Reviews) Stats(ctx context.Context, recipeID int64) (*reviews.Stats, error) {
	var out reviews.Stats
	if err := rv.c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/%d/stats", recipeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
