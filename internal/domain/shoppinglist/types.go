package shoppinglist

import "time"

var QueryTimeoutDuration = time.Second * 5

// Item is one ingredient on a user's shopping list. IsChecked is 0 or 1.
type Item struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	Ingredient string    `json:"ingredient"`
	IsChecked  int       `json:"isChecked"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (i Item) Checked() bool {
	return i.IsChecked != 0
}
