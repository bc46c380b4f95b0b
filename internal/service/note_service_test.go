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

func TestNoteService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		notes := new(MockNoteRepository)
		recipes := new(MockRecipeRepository)
		recipes.On("FindByID", mock.Anything, uint(7)).
			Return(&model.Recipe{ID: 7, IsPublic: true}, nil)
		notes.On("Create", mock.Anything, mock.AnythingOfType("*model.Note")).Return(nil)

		svc := NewNoteService(notes, recipes)
		note, err := svc.Create(context.Background(), 1, 7, "less salt next time")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), note.UserID)
		assert.Equal(t, uint(7), note.RecipeID)
		assert.Equal(t, "less salt next time", note.Content)
		notes.AssertExpectations(t)
		recipes.AssertExpectations(t)
	})

	t.Run("recipe missing", func(t *testing.T) {
		notes := new(MockNoteRepository)
		recipes := new(MockRecipeRepository)
		recipes.On("FindByID", mock.Anything, uint(7)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewNoteService(notes, recipes)
		note, err := svc.Create(context.Background(), 1, 7, "less salt next time")
		assert.ErrorIs(t, err, apperrors.ErrRecipeNotFound)
		assert.Nil(t, note)
		notes.AssertNotCalled(t, "Create")
	})
}

// Notes owned by another user must be indistinguishable from missing
// notes across get, update and delete.
func TestNoteService_OwnershipFoldedIntoNotFound(t *testing.T) {
	otherUsersNote := &model.Note{ID: 5, UserID: 2, RecipeID: 7, Content: "theirs"}

	setups := []struct {
		name      string
		setupMock func(notes *MockNoteRepository)
	}{
		{
			name: "note missing",
			setupMock: func(notes *MockNoteRepository) {
				notes.On("FindByID", mock.Anything, uint(5)).
					Return(nil, gorm.ErrRecordNotFound)
			},
		},
		{
			name: "note owned by another user",
			setupMock: func(notes *MockNoteRepository) {
				notes.On("FindByID", mock.Anything, uint(5)).
					Return(otherUsersNote, nil)
			},
		},
	}

	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			notes := new(MockNoteRepository)
			s.setupMock(notes)
			svc := NewNoteService(notes, new(MockRecipeRepository))

			got, err := svc.Get(context.Background(), 1, 5)
			assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
			assert.Nil(t, got)

			updated, err := svc.Update(context.Background(), 1, 5, "mine now")
			assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
			assert.Nil(t, updated)

			err = svc.Delete(context.Background(), 1, 5)
			assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)

			notes.AssertNotCalled(t, "Save")
			notes.AssertNotCalled(t, "Delete")
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	notes := new(MockNoteRepository)
	owned := &model.Note{ID: 5, UserID: 1, RecipeID: 7, Content: "old"}
	notes.On("FindByID", mock.Anything, uint(5)).Return(owned, nil)
	notes.On("Save", mock.Anything, mock.AnythingOfType("*model.Note")).Return(nil)

	svc := NewNoteService(notes, new(MockRecipeRepository))
	note, err := svc.Update(context.Background(), 1, 5, "new content")
	assert.NoError(t, err)
	assert.Equal(t, "new content", note.Content)
	notes.AssertExpectations(t)
}

func TestNoteService_Delete(t *testing.T) {
	notes := new(MockNoteRepository)
	owned := &model.Note{ID: 5, UserID: 1, RecipeID: 7, Content: "done with this"}
	notes.On("FindByID", mock.Anything, uint(5)).Return(owned, nil)
	notes.On("Delete", mock.Anything, owned).Return(nil)

	svc := NewNoteService(notes, new(MockRecipeRepository))
	assert.NoError(t, svc.Delete(context.Background(), 1, 5))
	notes.AssertExpectations(t)
}
