package model

import "time"

// Category groups recipes (e.g. Breakfast, Vegan). Linked to recipes
// through the recipe_categories join table.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Recipes []Recipe `json:"-" gorm:"many2many:recipe_categories;constraint:OnDelete:CASCADE"`
}
