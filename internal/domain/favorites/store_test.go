package favorites

import (
	"context"
	"testing"

	"recipes/internal/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRepository(t *testing.T) {
	store := NewRepository(dbtest.NewPool(t))
	ctx := context.Background()

	t.Run("create then list returns server assigned fields", func(t *testing.T) {
		fav := &Favorite{UserID: "u1", RecipeID: 52771, Title: "Spicy Chicken", CookTime: strPtr("30 minutes")}
		require.NoError(t, store.Create(ctx, fav))
		assert.NotZero(t, fav.ID)
		assert.False(t, fav.CreatedAt.IsZero())

		list, err := store.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, fav.ID, list[0].ID)
		assert.Equal(t, "Spicy Chicken", list[0].Title)
		assert.Equal(t, "30 minutes", *list[0].CookTime)
		assert.Nil(t, list[0].Image)
	})

	t.Run("saving twice keeps a single row", func(t *testing.T) {
		first := &Favorite{UserID: "u2", RecipeID: 1, Title: "Old title"}
		require.NoError(t, store.Create(ctx, first))
		second := &Favorite{UserID: "u2", RecipeID: 1, Title: "New title"}
		require.NoError(t, store.Create(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

		list, err := store.ListByUser(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "New title", list[0].Title)
	})

	t.Run("exists and remove", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, &Favorite{UserID: "u3", RecipeID: 7, Title: "Soup"}))

		ok, err := store.Exists(ctx, "u3", 7)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, store.Remove(ctx, "u3", 7))
		// removing again is not an error
		require.NoError(t, store.Remove(ctx, "u3", 7))

		ok, err = store.Exists(ctx, "u3", 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown user has an empty list", func(t *testing.T) {
		list, err := store.ListByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
