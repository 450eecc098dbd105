package main

import (
	"errors"
	"net/http"
	"strings"

	"recipes/internal/domain/shoppinglist"
	"recipes/internal/nulls"
)

type addShoppingItemPayload struct {
	UserID     string `json:"userId" validate:"required"`
	Ingredient string `json:"ingredient" validate:"required"`
}

type updateShoppingItemPayload struct {
	IsChecked nulls.Flag `json:"isChecked" validate:"required" swaggertype:"integer" enums:"0,1"`
	UserID    string     `json:"userId,omitempty"`
}

type clearCheckedResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// itemOwner resolves who is mutating a shopping-list item: the token subject
// when bearer auth is on, otherwise the userId the client sent.
func (app *application) itemOwner(w http.ResponseWriter, r *http.Request, claimed string) (string, bool) {
	claimed = strings.TrimSpace(claimed)
	if subject := getUserIDFromContext(r); subject != "" {
		if claimed != "" && claimed != subject {
			app.forbiddenResponse(w, r)
			return "", false
		}
		return subject, true
	}
	if claimed == "" {
		app.badRequestResponse(w, r, errors.New("userId is required"))
		return "", false
	}
	return claimed, true
}

// AddShoppingItem godoc
//
//	@Summary		Add an ingredient to the shopping list
//	@Tags			Shopping_List
//	@Accept			json
//	@Produce		json
//	@Param			item	body		addShoppingItemPayload	true	"Item payload"
//	@Success		201		{object}	shoppinglist.Item
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/shopping-list [post]
func (app *application) addShoppingItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload addShoppingItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.UserID = strings.TrimSpace(payload.UserID)
	payload.Ingredient = strings.TrimSpace(payload.Ingredient)
	if err := validatePayload(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.authorizeUser(w, r, payload.UserID) {
		return
	}

	item := &shoppinglist.Item{
		UserID:     payload.UserID,
		Ingredient: payload.Ingredient,
	}
	if err := app.store.ShoppingList.AddItem(r.Context(), item); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, item)
}

// ListShoppingItems godoc
//
//	@Summary		List a user's shopping list
//	@Description	Items are ordered by creation time, oldest first.
//	@Tags			Shopping_List
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{array}		shoppinglist.Item
//	@Failure		500		{object}	errorEnvelope
//	@Router			/shopping-list/{userId} [get]
func (app *application) listShoppingItemsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.authorizeUser(w, r, userID) {
		return
	}

	items, err := app.store.ShoppingList.ListByUser(r.Context(), userID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, items)
}

// UpdateShoppingItem godoc
//
//	@Summary		Check or uncheck a shopping-list item
//	@Description	Only the owner's item is changed. Unknown ids succeed without effect.
//	@Tags			Shopping_List
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Item ID"
//	@Param			item	body		updateShoppingItemPayload	true	"Checked flag"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/shopping-list/{id} [put]
func (app *application) updateShoppingItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID, err := readIDParam(r, "itemID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload updateShoppingItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := validatePayload(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner, ok := app.itemOwner(w, r, payload.UserID)
	if !ok {
		return
	}

	if err := app.store.ShoppingList.SetChecked(r.Context(), itemID, owner, payload.IsChecked.Bool()); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "Item updated"})
}

// DeleteShoppingItem godoc
//
//	@Summary		Delete a shopping-list item
//	@Description	Only the owner's item is deleted. Unknown ids succeed without effect.
//	@Tags			Shopping_List
//	@Produce		json
//	@Param			id		path		int		true	"Item ID"
//	@Param			userId	query		string	false	"Owner (required without bearer auth)"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/shopping-list/{id} [delete]
func (app *application) deleteShoppingItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID, err := readIDParam(r, "itemID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner, ok := app.itemOwner(w, r, r.URL.Query().Get("userId"))
	if !ok {
		return
	}

	if err := app.store.ShoppingList.Delete(r.Context(), itemID, owner); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "Item deleted"})
}

// ClearCheckedItems godoc
//
//	@Summary		Remove every checked item
//	@Tags			Shopping_List
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	clearCheckedResponse
//	@Failure		500		{object}	errorEnvelope
//	@Router			/shopping-list/{userId}/checked [delete]
func (app *application) clearCheckedItemsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.authorizeUser(w, r, userID) {
		return
	}

	n, err := app.store.ShoppingList.ClearChecked(r.Context(), userID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, clearCheckedResponse{Message: "Checked items cleared", Deleted: n})
}
