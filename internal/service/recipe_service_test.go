package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

func TestParseIngredientTerms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "only separators and blanks", input: " , ,,  ", want: nil},
		{name: "trims and lowercases", input: " Tomato , ONION ", want: []string{"tomato", "onion"}},
		{name: "deduplicates after normalization", input: "tomato,Tomato, TOMATO ", want: []string{"tomato"}},
		{name: "keeps multi-word names", input: "olive oil, sourdough bread", want: []string{"olive oil", "sourdough bread"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIngredientTerms(tt.input))
		})
	}
}

func TestRecipeService_SearchByIngredients(t *testing.T) {
	t.Run("blank list returns empty without querying", func(t *testing.T) {
		repo := new(MockRecipeRepository)
		svc := NewRecipeService(repo, nil)

		recipes, err := svc.SearchByIngredients(context.Background(), " , ", 50, 0)
		assert.NoError(t, err)
		assert.Empty(t, recipes)
		repo.AssertNotCalled(t, "SearchByIngredients")
	})

	t.Run("normalized deduplicated terms reach the repository", func(t *testing.T) {
		repo := new(MockRecipeRepository)
		want := []model.Recipe{{ID: 7, Title: "Tomato Basil Pasta"}}
		repo.On("SearchByIngredients", mock.Anything, []string{"tomato", "onion"}, 50, 0).
			Return(want, nil)

		svc := NewRecipeService(repo, nil)
		recipes, err := svc.SearchByIngredients(context.Background(), "Tomato, onion,tomato", 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, want, recipes)
		repo.AssertExpectations(t)
	})

	t.Run("pagination is clamped", func(t *testing.T) {
		repo := new(MockRecipeRepository)
		repo.On("SearchByIngredients", mock.Anything, []string{"kiwi"}, 200, 0).
			Return([]model.Recipe{}, nil)

		svc := NewRecipeService(repo, nil)
		_, err := svc.SearchByIngredients(context.Background(), "kiwi", 9999, -3)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestRecipeService_ListPublic(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{name: "defaults applied", limit: 0, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "limit capped at 200", limit: 500, offset: 10, wantLimit: 200, wantOffset: 10},
		{name: "negative offset reset", limit: 1, offset: -1, wantLimit: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecipeRepository)
			repo.On("ListPublic", mock.Anything, tt.wantLimit, tt.wantOffset).
				Return([]model.Recipe{}, nil)

			svc := NewRecipeService(repo, nil)
			_, err := svc.ListPublic(context.Background(), tt.limit, tt.offset)
			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_GetPublic(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *MockRecipeRepository)
		wantErr   error
	}{
		{
			name: "missing recipe",
			setupMock: func(repo *MockRecipeRepository) {
				repo.On("FindByID", mock.Anything, uint(99)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrRecipeNotFound,
		},
		{
			name: "private recipe hidden",
			setupMock: func(repo *MockRecipeRepository) {
				repo.On("FindByID", mock.Anything, uint(99)).
					Return(&model.Recipe{ID: 99, Title: "Secret Family Tiramisu", IsPublic: false}, nil)
			},
			wantErr: apperrors.ErrRecipeNotFound,
		},
		{
			name: "public recipe returned",
			setupMock: func(repo *MockRecipeRepository) {
				repo.On("FindByID", mock.Anything, uint(99)).
					Return(&model.Recipe{ID: 99, Title: "Tomato Basil Pasta", IsPublic: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecipeRepository)
			tt.setupMock(repo)

			svc := NewRecipeService(repo, nil)
			recipe, err := svc.GetPublic(context.Background(), 99)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, recipe)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(99), recipe.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}
