package main

import (
	"net/http"
	"strings"

	"recipes/internal/domain/favorites"
	"recipes/internal/nulls"
)

type createFavoritePayload struct {
	UserID   string       `json:"userId" validate:"required"`
	RecipeID int64        `json:"recipeId" validate:"required,gt=0"`
	Title    string       `json:"title" validate:"required"`
	Image    nulls.String `json:"image" swaggertype:"string"`
	CookTime nulls.String `json:"cookTime" swaggertype:"string"`
	Servings nulls.String `json:"servings" swaggertype:"string"`
}

// CreateFavorite godoc
//
//	@Summary		Save a recipe to favorites
//	@Description	Saves a recipe for a user. Saving the same recipe again returns the existing row.
//	@Tags			Favorites
//	@Accept			json
//	@Produce		json
//	@Param			favorite	body		createFavoritePayload	true	"Favorite payload"
//	@Success		201			{object}	favorites.Favorite
//	@Failure		400			{object}	errorEnvelope	"Missing required fields"
//	@Failure		500			{object}	errorEnvelope	"Could not add favorite"
//	@Router			/favorites [post]
func (app *application) createFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var payload createFavoritePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.UserID = strings.TrimSpace(payload.UserID)
	payload.Title = strings.TrimSpace(payload.Title)
	if err := validatePayload(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.authorizeUser(w, r, payload.UserID) {
		return
	}

	fav := &favorites.Favorite{
		UserID:   payload.UserID,
		RecipeID: payload.RecipeID,
		Title:    payload.Title,
		Image:    payload.Image.Ptr(),
		CookTime: payload.CookTime.Ptr(),
		Servings: payload.Servings.Ptr(),
	}

	if err := app.store.Favorites.Create(r.Context(), fav); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, fav)
}

// ListFavorites godoc
//
//	@Summary		List a user's favorites
//	@Tags			Favorites
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{array}		favorites.Favorite
//	@Failure		500		{object}	errorEnvelope
//	@Router			/favorites/{userId} [get]
func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.authorizeUser(w, r, userID) {
		return
	}

	list, err := app.store.Favorites.ListByUser(r.Context(), userID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// IsFavorite godoc
//
//	@Summary		Check whether a recipe is saved
//	@Tags			Favorites
//	@Produce		json
//	@Param			userId		path		string	true	"User ID"
//	@Param			recipeId	path		int		true	"Recipe ID"
//	@Success		200			{object}	map[string]bool
//	@Failure		400			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/favorites/{userId}/{recipeId} [get]
func (app *application) isFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	recipeID, err := readIDParam(r, "recipeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.authorizeUser(w, r, userID) {
		return
	}

	saved, err := app.store.Favorites.Exists(r.Context(), userID, recipeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]bool{"saved": saved})
}

// RemoveFavorite godoc
//
//	@Summary		Remove a recipe from favorites
//	@Description	Deletes the favorite. Succeeds even if the recipe was not saved.
//	@Tags			Favorites
//	@Produce		json
//	@Param			userId		path		string	true	"User ID"
//	@Param			recipeId	path		int		true	"Recipe ID"
//	@Success		200			{object}	messageResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/favorites/{userId}/{recipeId} [delete]
func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	recipeID, err := readIDParam(r, "recipeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.authorizeUser(w, r, userID) {
		return
	}

	if err := app.store.Favorites.Remove(r.Context(), userID, recipeID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "Favorite removed successfully"})
}
