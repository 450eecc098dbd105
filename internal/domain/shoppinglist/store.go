package shoppinglist

import (
	"context"
	"fmt"

	"recipes/internal/db"
)

type Store interface {
	AddItem(ctx context.Context, item *Item) error
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	SetChecked(ctx context.Context, id int64, ownerID string, checked bool) error
	Delete(ctx context.Context, id int64, ownerID string) error
	ClearChecked(ctx context.Context, userID string) (int64, error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Store {
	return &Repository{db: q}
}

// AddItem inserts an unchecked item. Identical ingredients are kept as separate rows.
func (r *Repository) AddItem(ctx context.Context, item *Item) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO shopping_list (user_id, ingredient)
		VALUES ($1, $2)
		RETURNING id, is_checked, created_at
	`
	err := r.db.QueryRow(ctx, query, item.UserID, item.Ingredient).
		Scan(&item.ID, &item.IsChecked, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add shopping list item: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT id, user_id, ingredient, is_checked, created_at
		FROM shopping_list
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping list: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.Ingredient, &it.IsChecked, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetChecked updates the flag of an item owned by ownerID. An unknown id, or
// an id owned by someone else, updates nothing and is not reported.
func (r *Repository) SetChecked(ctx context.Context, id int64, ownerID string, checked bool) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	flag := 0
	if checked {
		flag = 1
	}

	query := `
		UPDATE shopping_list
		SET is_checked = $3
		WHERE id = $1 AND user_id = $2
	`
	if _, err := r.db.Exec(ctx, query, id, ownerID, flag); err != nil {
		return fmt.Errorf("failed to update shopping list item: %w", err)
	}
	return nil
}

// Delete removes an item owned by ownerID; same not-found semantics as SetChecked.
func (r *Repository) Delete(ctx context.Context, id int64, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `DELETE FROM shopping_list WHERE id = $1 AND user_id = $2`
	if _, err := r.db.Exec(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete shopping list item: %w", err)
	}
	return nil
}

// ClearChecked deletes every checked item of a user and returns how many went.
func (r *Repository) ClearChecked(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `DELETE FROM shopping_list WHERE user_id = $1 AND is_checked <> 0`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear checked items: %w", err)
	}
	return tag.RowsAffected(), nil
}
