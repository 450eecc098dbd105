package reviews

import "time"

var QueryTimeoutDuration = time.Second * 5

// Review is an immutable rating left on a recipe. Rating is 1-5.
type Review struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	UserName   *string   `json:"userName"`
	UserAvatar *string   `json:"userAvatar"`
	RecipeID   int64     `json:"recipeId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Stats struct {
	RecipeID     int64   `json:"recipeId"`
	TotalReviews int     `json:"totalReviews"`
	Average      float64 `json:"average"`
}
