package service

import (
	"context"
	"fmt"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// FavoriteService manages the acting user's favorite recipes.
type FavoriteService interface {
	ListRecipes(ctx context.Context, userID uint) ([]model.Recipe, error)
	Add(ctx context.Context, userID, recipeID uint) (*model.Favorite, error)
	Remove(ctx context.Context, userID, recipeID uint) error
}

type favoriteService struct {
	favorites repository.FavoriteRepository
	recipes   repository.RecipeRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository, recipes repository.RecipeRepository) FavoriteService {
	return &favoriteService{favorites: favorites, recipes: recipes}
}

func (s *favoriteService) ListRecipes(ctx context.Context, userID uint) ([]model.Recipe, error) {
	return s.recipes.ListFavoritedBy(ctx, userID)
}

// Add favorites a recipe for the user. The recipe must exist but need
// not be public: a user holding a private recipe's id may favorite
// it. A duplicate pair fails whether caught by the pre-check or by the
// unique index when two requests race.
func (s *favoriteService) Add(ctx context.Context, userID, recipeID uint) (*model.Favorite, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe: %w", err)
	}

	if existing, err := s.favorites.Find(ctx, userID, recipeID); err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyFavorited
	} else if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("check favorite existence: %w", err)
	}

	favorite := &model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyFavorited
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// Remove deletes the user's favorite for a recipe. Removal is not
// idempotent: a second call reports not found.
func (s *favoriteService) Remove(ctx context.Context, userID, recipeID uint) error {
	deleted, err := s.favorites.Delete(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrFavoriteNotFound
	}
	return nil
}
