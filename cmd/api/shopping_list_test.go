package main

import (
	"net/http"
	"testing"

	"recipes/internal/domain/shoppinglist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItem(t *testing.T, mux http.Handler, userID, ingredient string) shoppinglist.Item {
	t.Helper()
	rr := executeRequest(t, mux, http.MethodPost, "/api/shopping-list", map[string]any{
		"userId":     userID,
		"ingredient": ingredient,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[shoppinglist.Item](t, rr)
}

func listItems(t *testing.T, mux http.Handler, userID string) []shoppinglist.Item {
	t.Helper()
	rr := executeRequest(t, mux, http.MethodGet, "/api/shopping-list/"+userID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[[]shoppinglist.Item](t, rr)
}

func TestShoppingListDuplicatesAreKept(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	a := addItem(t, mux, "u1", "2 cups flour")
	b := addItem(t, mux, "u1", "2 cups flour")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, a.IsChecked)
	assert.Len(t, listItems(t, mux, "u1"), 2)
}

func TestShoppingListOrderedByCreation(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	for _, ing := range []string{"eggs", "milk", "butter", "sugar"} {
		addItem(t, mux, "u1", ing)
	}
	addItem(t, mux, "u2", "salt")

	items := listItems(t, mux, "u1")
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.Before(items[i-1].CreatedAt))
	}
}

func TestShoppingListToggleRoundTrip(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	item := addItem(t, mux, "u1", "basil")

	for _, body := range []string{`{"isChecked":1,"userId":"u1"}`, `{"isChecked":true,"userId":"u1"}`} {
		rr := executeRequest(t, mux, http.MethodPut, "/api/shopping-list/"+itoa(item.ID), body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, 1, listItems(t, mux, "u1")[0].IsChecked)
	}

	rr := executeRequest(t, mux, http.MethodPut, "/api/shopping-list/"+itoa(item.ID), `{"isChecked":0,"userId":"u1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Item updated", decode[messageResponse](t, rr).Message)
	assert.Equal(t, 0, listItems(t, mux, "u1")[0].IsChecked)
}

func TestShoppingListUpdateValidation(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()
	item := addItem(t, mux, "u1", "basil")
	path := "/api/shopping-list/" + itoa(item.ID)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing flag", path, `{"userId":"u1"}`},
		{"bad flag", path, `{"isChecked":2,"userId":"u1"}`},
		{"missing owner", path, `{"isChecked":1}`},
		{"bad id", "/api/shopping-list/abc", `{"isChecked":1,"userId":"u1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(t, mux, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		})
	}
}

func TestShoppingListMutationsNeedOwner(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	item := addItem(t, mux, "owner", "saffron")
	path := "/api/shopping-list/" + itoa(item.ID)

	rr := executeRequest(t, mux, http.MethodPut, path, `{"isChecked":1,"userId":"intruder"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(t, mux, http.MethodDelete, path+"?userId=intruder", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	items := listItems(t, mux, "owner")
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].IsChecked)

	rr = executeRequest(t, mux, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodDelete, path+"?userId=owner", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Item deleted", decode[messageResponse](t, rr).Message)
	assert.Empty(t, listItems(t, mux, "owner"))
}

func TestShoppingListMissingIDsSucceed(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPut, "/api/shopping-list/4242", `{"isChecked":1,"userId":"u1"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(t, mux, http.MethodDelete, "/api/shopping-list/4242?userId=u1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClearCheckedItems(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	keep := addItem(t, mux, "u1", "rice")
	drop := addItem(t, mux, "u1", "beans")
	executeRequest(t, mux, http.MethodPut, "/api/shopping-list/"+itoa(drop.ID), `{"isChecked":1,"userId":"u1"}`)

	rr := executeRequest(t, mux, http.MethodDelete, "/api/shopping-list/u1/checked", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 1, decode[clearCheckedResponse](t, rr).Deleted)

	items := listItems(t, mux, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
}

func TestAddShoppingItemValidation(t *testing.T) {
	app, stores := newTestApplication(t, config{})
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/shopping-list", map[string]any{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[errorEnvelope](t, rr).Error, "ingredient is required")

	stores.shoppingList.err = errStoreDown
	rr = executeRequest(t, mux, http.MethodPost, "/api/shopping-list", map[string]any{"userId": "u1", "ingredient": "x"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
