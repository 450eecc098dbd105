package main

import (
	"math"
	"net/http"
	"strings"

	"recipes/internal/domain/reviews"
	"recipes/internal/nulls"
)

type createReviewPayload struct {
	UserID     string       `json:"userId" validate:"required"`
	UserName   nulls.String `json:"userName" swaggertype:"string"`
	UserAvatar nulls.String `json:"userAvatar" swaggertype:"string"`
	RecipeID   int64        `json:"recipeId" validate:"required,gt=0"`
	Rating     int          `json:"rating" validate:"required,min=1,max=5"`
	Comment    nulls.String `json:"comment" swaggertype:"string"`
}

// CreateReview godoc
//
//	@Summary		Review a recipe
//	@Description	Adds an immutable rating (1-5) with an optional comment.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		createReviewPayload	true	"Review payload"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.UserID = strings.TrimSpace(payload.UserID)
	if err := validatePayload(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.authorizeUser(w, r, payload.UserID) {
		return
	}

	review := &reviews.Review{
		UserID:     payload.UserID,
		UserName:   payload.UserName.Ptr(),
		UserAvatar: payload.UserAvatar.Ptr(),
		RecipeID:   payload.RecipeID,
		Rating:     payload.Rating,
		Comment:    payload.Comment.Ptr(),
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, review)
}

// ListRecipeReviews godoc
//
//	@Summary		List reviews of a recipe
//	@Tags			Reviews
//	@Produce		json
//	@Param			recipeId	path		int	true	"Recipe ID"
//	@Success		200			{array}		reviews.Review
//	@Failure		400			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/reviews/{recipeId} [get]
func (app *application) listRecipeReviewsHandler(w http.ResponseWriter, r *http.Request) {
	recipeID, err := readIDParam(r, "recipeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list, err := app.store.Reviews.ListByRecipe(r.Context(), recipeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// RecipeReviewStats godoc
//
//	@Summary		Review count and average rating of a recipe
//	@Tags			Reviews
//	@Produce		json
//	@Param			recipeId	path		int	true	"Recipe ID"
//	@Success		200			{object}	reviews.Stats
//	@Failure		400			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/reviews/{recipeId}/stats [get]
func (app *application) recipeReviewStatsHandler(w http.ResponseWriter, r *http.Request) {
	recipeID, err := readIDParam(r, "recipeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	total, average, err := app.store.Reviews.Stats(r.Context(), recipeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, reviews.Stats{
		RecipeID:     recipeID,
		TotalReviews: total,
		Average:      math.Round(average*10) / 10,
	})
}

// ListUserReviews godoc
//
//	@Summary		List reviews written by a user
//	@Tags			Reviews
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{array}		reviews.Review
//	@Failure		500		{object}	errorEnvelope
//	@Router			/reviews/user/{userId} [get]
func (app *application) listUserReviewsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readUserParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list, err := app.store.Reviews.ListByUser(r.Context(), userID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, list)
}
