package model

import "time"

// Favorite links a user to a recipe. The (user, recipe) pair is
// unique; the index doubles as the backstop for concurrent duplicate
// favorite attempts.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uq_favorite_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:uq_favorite_user_recipe"`
	CreatedAt time.Time `json:"created_at"`
}
