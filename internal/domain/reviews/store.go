package reviews

import (
	"context"
	"fmt"

	"recipes/internal/db"
)

type Store interface {
	Create(ctx context.Context, review *Review) error
	ListByRecipe(ctx context.Context, recipeID int64) ([]Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	Stats(ctx context.Context, recipeID int64) (total int, average float64, err error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Store {
	return &Repository{db: q}
}

func (r *Repository) Create(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        INSERT INTO reviews (user_id, user_name, user_avatar, recipe_id, rating, comment)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.UserName,
		review.UserAvatar,
		review.RecipeID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *Repository) ListByRecipe(ctx context.Context, recipeID int64) ([]Review, error) {
	return r.list(ctx, `WHERE recipe_id = $1`, recipeID)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Review, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

func (r *Repository) list(ctx context.Context, where string, arg any) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, user_id, user_name, user_avatar, recipe_id, rating, comment, created_at
        FROM reviews
        ` + where + `
        ORDER BY created_at, id
    `
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.UserName,
			&rv.UserAvatar,
			&rv.RecipeID,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *Repository) Stats(ctx context.Context, recipeID int64) (total int, average float64, err error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT
            COUNT(id) AS total_reviews,
            COALESCE(AVG(rating), 0)::float8 AS average_rating
        FROM reviews
        WHERE recipe_id = $1
    `
	err = r.db.QueryRow(ctx, query, recipeID).Scan(&total, &average)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get review stats: %w", err)
	}
	return total, average, nil
}
