package model

import "time"

// Note is a user's personal note on a recipe. No uniqueness rule: a
// user may keep several notes on the same recipe.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
