package favorites

import (
	"context"
	"fmt"

	"recipes/internal/db"
)

type Store interface {
	Create(ctx context.Context, fav *Favorite) error
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Exists(ctx context.Context, userID string, recipeID int64) (bool, error)
	Remove(ctx context.Context, userID string, recipeID int64) error
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Store {
	return &Repository{db: q}
}

// Create saves a recipe for a user. Saving the same recipe twice keeps the
// original row and only refreshes its display fields.
func (r *Repository) Create(ctx context.Context, fav *Favorite) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO favorites (user_id, recipe_id, title, image, cook_time, servings)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT favorites_user_recipe_key
		DO UPDATE SET title = EXCLUDED.title,
		              image = EXCLUDED.image,
		              cook_time = EXCLUDED.cook_time,
		              servings = EXCLUDED.servings
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		fav.UserID,
		fav.RecipeID,
		fav.Title,
		fav.Image,
		fav.CookTime,
		fav.Servings,
	).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// ListByUser returns every favorite of a user, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT id, user_id, recipe_id, title, image, cook_time, servings, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.RecipeID, &f.Title,
			&f.Image, &f.CookTime, &f.Servings, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *Repository) Exists(ctx context.Context, userID string, recipeID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND recipe_id = $2
		)
	`
	if err := r.db.QueryRow(ctx, query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// Remove deletes the favorite. Removing a recipe that is not saved is not an error.
func (r *Repository) Remove(ctx context.Context, userID string, recipeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND recipe_id = $2
	`
	if _, err := r.db.Exec(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
