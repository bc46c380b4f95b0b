package service

import (
	"context"
	"encoding/json"
	"time"

	"recipehub/internal/cache"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	categoryCacheKey = "categories"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService lists recipe categories.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	cache      *cache.Client
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(categories repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{categories: categories, cache: cache}
}

// List returns all categories ordered by name, served from the cache
// when warm. Categories only change via seeding, so a short TTL is
// plenty.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryCacheKey, payload, categoryCacheTTL)
	}
	return categories, nil
}
