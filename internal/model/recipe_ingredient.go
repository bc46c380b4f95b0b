package model

import "time"

// RecipeIngredient is one ingredient line of a recipe. Names are
// matched case-insensitively and whitespace-trimmed during search.
type RecipeIngredient struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Quantity  string    `json:"quantity,omitempty" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}
