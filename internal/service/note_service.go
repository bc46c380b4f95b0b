package service

import (
	"context"
	"fmt"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// NoteService manages the acting user's personal recipe notes. Every
// by-id operation folds the ownership check into the existence check,
// so another user's note is indistinguishable from a missing one.
type NoteService interface {
	ListMine(ctx context.Context, userID uint) ([]model.Note, error)
	Create(ctx context.Context, userID, recipeID uint, content string) (*model.Note, error)
	Get(ctx context.Context, userID, noteID uint) (*model.Note, error)
	Update(ctx context.Context, userID, noteID uint, content string) (*model.Note, error)
	Delete(ctx context.Context, userID, noteID uint) error
}

type noteService struct {
	notes   repository.NoteRepository
	recipes repository.RecipeRepository
}

// NewNoteService creates a new note service.
func NewNoteService(notes repository.NoteRepository, recipes repository.RecipeRepository) NoteService {
	return &noteService{notes: notes, recipes: recipes}
}

func (s *noteService) ListMine(ctx context.Context, userID uint) ([]model.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

func (s *noteService) Create(ctx context.Context, userID, recipeID uint, content string) (*model.Note, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe: %w", err)
	}

	note := &model.Note{UserID: userID, RecipeID: recipeID, Content: content}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// findOwned loads a note and verifies ownership, reporting both a
// missing note and someone else's note as not found.
func (s *noteService) findOwned(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("load note: %w", err)
	}
	if note.UserID != userID {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	return s.findOwned(ctx, userID, noteID)
}

func (s *noteService) Update(ctx context.Context, userID, noteID uint, content string) (*model.Note, error) {
	note, err := s.findOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	note.Content = content
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID, noteID uint) error {
	note, err := s.findOwned(ctx, userID, noteID)
	if err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, note); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
