package repository

import (
	"context"

	"gorm.io/gorm"

	"recipehub/internal/model"
)

// RecipeRepository defines recipe persistence operations, including
// the grouped-aggregate ingredient search.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	ListPublic(ctx context.Context, limit, offset int) ([]model.Recipe, error)
	SearchByIngredients(ctx context.Context, terms []string, limit, offset int) ([]model.Recipe, error)
	ListFavoritedBy(ctx context.Context, userID uint) ([]model.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository builds a GORM-backed repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// FindByID loads a recipe with its categories and ingredients.
func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Ingredients").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListPublic(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchByIngredients returns public recipes containing every one of
// the already-normalized terms. A recipe qualifies only when the
// count of distinct normalized ingredient names matching the term set
// equals the number of terms, which is the AND/intersection rule.
func (r *recipeRepository) SearchByIngredients(ctx context.Context, terms []string, limit, offset int) ([]model.Recipe, error) {
	matched := r.db.Model(&model.RecipeIngredient{}).
		Select("recipe_id").
		Where("LOWER(TRIM(name)) IN ?", terms).
		Group("recipe_id").
		Having("COUNT(DISTINCT LOWER(TRIM(name))) = ?", len(terms))

	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Where("id IN (?)", matched).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListFavoritedBy returns the recipes a user has favorited, most
// recently favorited first.
func (r *recipeRepository) ListFavoritedBy(ctx context.Context, userID uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
