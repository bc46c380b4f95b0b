package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"recipehub/internal/auth"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/service"
)

// NoteHandler handles the acting user's recipe notes.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteCreateRequest carries a new note.
type NoteCreateRequest struct {
	RecipeID uint   `json:"recipe_id" validate:"required"`
	Content  string `json:"content" validate:"required,min=1"`
}

// NoteUpdateRequest carries replacement content for a note.
type NoteUpdateRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// NoteResponse is the public representation of a note.
type NoteResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	RecipeID  uint      `json:"recipe_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		RecipeID:  note.RecipeID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func noteID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid note id")
	}
	return uint(id), nil
}

// List godoc
// @Summary List my notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} NoteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)
	notes, err := h.noteService.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NoteCreateRequest true "Note data"
// @Success 201 {object} NoteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	var req NoteCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	note, err := h.noteService.Create(c.Request().Context(), user.ID, req.RecipeID, req.Content)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// Get godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} NoteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	note, err := h.noteService.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body NoteUpdateRequest true "Updated content"
// @Success 200 {object} NoteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}
	var req NoteUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	note, err := h.noteService.Update(c.Request().Context(), user.ID, id, req.Content)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	if err := h.noteService.Delete(c.Request().Context(), user.ID, id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
