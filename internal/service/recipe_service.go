package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"recipehub/internal/cache"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	recipeCacheTTL = 5 * time.Minute
)

// RecipeService exposes public recipe browsing and ingredient search.
type RecipeService interface {
	ListPublic(ctx context.Context, limit, offset int) ([]model.Recipe, error)
	GetPublic(ctx context.Context, id uint) (*model.Recipe, error)
	SearchByIngredients(ctx context.Context, ingredients string, limit, offset int) ([]model.Recipe, error)
}

type recipeService struct {
	recipes repository.RecipeRepository
	cache   *cache.Client
}

// NewRecipeService builds a RecipeService with repository and cache.
func NewRecipeService(recipes repository.RecipeRepository, cache *cache.Client) RecipeService {
	return &recipeService{recipes: recipes, cache: cache}
}

// clampPage forces limit into [1, 200] (default 50) and offset to >= 0.
func clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *recipeService) ListPublic(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	limit, offset = clampPage(limit, offset)
	return s.recipes.ListPublic(ctx, limit, offset)
}

func (s *recipeService) cacheKey(id uint) string {
	return fmt.Sprintf("recipe:%d", id)
}

// GetPublic returns a public recipe with categories and ingredients.
// Missing and private recipes are both reported as not found. There is
// no recipe write surface, so the cached detail can only go stale on
// TTL, never on a mutation.
func (s *recipeService) GetPublic(ctx context.Context, id uint) (*model.Recipe, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Recipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe: %w", err)
	}
	if !recipe.IsPublic {
		return nil, apperrors.ErrRecipeNotFound
	}

	if payload, err := json.Marshal(recipe); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, recipeCacheTTL)
	}
	return recipe, nil
}

// SearchByIngredients parses a comma-separated ingredient list and
// returns public recipes containing all of them. Terms are trimmed,
// lowercased and deduplicated before the query; a blank list is an
// empty result, not an error.
func (s *recipeService) SearchByIngredients(ctx context.Context, ingredients string, limit, offset int) ([]model.Recipe, error) {
	terms := parseIngredientTerms(ingredients)
	if len(terms) == 0 {
		return []model.Recipe{}, nil
	}
	limit, offset = clampPage(limit, offset)
	return s.recipes.SearchByIngredients(ctx, terms, limit, offset)
}

// parseIngredientTerms splits on commas, drops blank tokens, and
// normalizes the rest to trimmed lowercase, deduplicated in order of
// first appearance.
func parseIngredientTerms(ingredients string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, part := range strings.Split(ingredients, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}
