package favorites

import "time"

var QueryTimeoutDuration = time.Second * 5

// Favorite is a user's saved reference to a recipe from the meal-data API.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	Title     string    `json:"title"`
	Image     *string   `json:"image"`
	CookTime  *string   `json:"cookTime"`
	Servings  *string   `json:"servings"`
	CreatedAt time.Time `json:"createdAt"`
}
