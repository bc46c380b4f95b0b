package model

import "time"

// Recipe is the central entity. Only public recipes are surfaced by
// listing, detail and search. Ingredients, favorites, notes and
// category links are all removed when the recipe is deleted.
type Recipe struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null;index"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Instructions    string    `json:"instructions,omitempty" gorm:"type:text"`
	ImageURL        string    `json:"image_url,omitempty" gorm:"size:500"`
	PrepTimeMinutes int       `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int       `json:"cook_time_minutes,omitempty"`
	Servings        int       `json:"servings,omitempty"`
	IsPublic        bool      `json:"is_public" gorm:"not null;default:true;index"`
	AuthorID        *uint     `json:"author_id,omitempty" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Categories  []Category         `json:"categories,omitempty" gorm:"many2many:recipe_categories;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Favorites   []Favorite         `json:"-" gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Notes       []Note             `json:"-" gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
