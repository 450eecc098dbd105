package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"recipes/internal/domain/favorites"
	"recipes/internal/domain/reviews"
	"recipes/internal/domain/shoppinglist"
	"recipes/internal/domain/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("connection refused")

// clock hands out strictly increasing timestamps so ordering is deterministic.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

type memFavorites struct {
	mu     sync.Mutex
	clock  *clock
	rows   []favorites.Favorite
	nextID int64
	err    error
}

func (m *memFavorites) Create(_ context.Context, fav *favorites.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, row := range m.rows {
		if row.UserID == fav.UserID && row.RecipeID == fav.RecipeID {
			row.Title, row.Image, row.CookTime, row.Servings = fav.Title, fav.Image, fav.CookTime, fav.Servings
			m.rows[i] = row
			fav.ID, fav.CreatedAt = row.ID, row.CreatedAt
			return nil
		}
	}
	m.nextID++
	fav.ID = m.nextID
	fav.CreatedAt = m.clock.next()
	m.rows = append(m.rows, *fav)
	return nil
}

func (m *memFavorites) ListByUser(_ context.Context, userID string) ([]favorites.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []favorites.Favorite{}
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memFavorites) Exists(_ context.Context, userID string, recipeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, row := range m.rows {
		if row.UserID == userID && row.RecipeID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) Remove(_ context.Context, userID string, recipeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.rows[:0]
	for _, row := range m.rows {
		if row.UserID != userID || row.RecipeID != recipeID {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

type memShoppingList struct {
	mu     sync.Mutex
	clock  *clock
	rows   []shoppinglist.Item
	nextID int64
	err    error
}

func (m *memShoppingList) AddItem(_ context.Context, item *shoppinglist.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	item.ID = m.nextID
	item.IsChecked = 0
	item.CreatedAt = m.clock.next()
	m.rows = append(m.rows, *item)
	return nil
}

func (m *memShoppingList) ListByUser(_ context.Context, userID string) ([]shoppinglist.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []shoppinglist.Item{}
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memShoppingList) SetChecked(_ context.Context, id int64, ownerID string, checked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, row := range m.rows {
		if row.ID == id && row.UserID == ownerID {
			m.rows[i].IsChecked = 0
			if checked {
				m.rows[i].IsChecked = 1
			}
		}
	}
	return nil
}

func (m *memShoppingList) Delete(_ context.Context, id int64, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.rows[:0]
	for _, row := range m.rows {
		if row.ID != id || row.UserID != ownerID {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

func (m *memShoppingList) ClearChecked(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	kept := m.rows[:0]
	for _, row := range m.rows {
		if row.UserID == userID && row.IsChecked != 0 {
			n++
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	return n, nil
}

type memReviews struct {
	mu     sync.Mutex
	clock  *clock
	rows   []reviews.Review
	nextID int64
	err    error
}

func (m *memReviews) Create(_ context.Context, review *reviews.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	review.ID = m.nextID
	review.CreatedAt = m.clock.next()
	m.rows = append(m.rows, *review)
	return nil
}

func (m *memReviews) filter(keep func(reviews.Review) bool) ([]reviews.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []reviews.Review{}
	for _, row := range m.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memReviews) ListByRecipe(_ context.Context, recipeID int64) ([]reviews.Review, error) {
	return m.filter(func(r reviews.Review) bool { return r.RecipeID == recipeID })
}

func (m *memReviews) ListByUser(_ context.Context, userID string) ([]reviews.Review, error) {
	return m.filter(func(r reviews.Review) bool { return r.UserID == userID })
}

func (m *memReviews) Stats(ctx context.Context, recipeID int64) (int, float64, error) {
	list, err := m.ListByRecipe(ctx, recipeID)
	if err != nil || len(list) == 0 {
		return 0, 0, err
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return len(list), float64(sum) / float64(len(list)), nil
}

type testStores struct {
	favorites    *memFavorites
	shoppingList *memShoppingList
	reviews      *memReviews
}

func newTestApplication(t *testing.T, cfg config) (*application, *testStores) {
	t.Helper()

	c := &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	stores := &testStores{
		favorites:    &memFavorites{clock: c},
		shoppingList: &memShoppingList{clock: c},
		reviews:      &memReviews{clock: c},
	}

	app := &application{
		config: cfg,
		logger: zap.NewNop().Sugar(),
		store: &storage.Container{
			Favorites:    stores.favorites,
			ShoppingList: stores.shoppingList,
			Reviews:      stores.reviews,
		},
	}
	return app, stores
}

func executeRequest(t *testing.T, mux http.Handler, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
