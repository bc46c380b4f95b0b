package repository

import (
	"context"

	"gorm.io/gorm"

	"recipehub/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FirstOrCreate(ctx context.Context, category *model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FirstOrCreate inserts the category unless one with the same name
// exists. Used by seeding.
func (r *categoryRepository) FirstOrCreate(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).
		Where("name = ?", category.Name).
		FirstOrCreate(category).Error
}
