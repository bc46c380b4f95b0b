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

// FavoriteHandler handles the acting user's favorites.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteCreateRequest carries the recipe to favorite.
type FavoriteCreateRequest struct {
	RecipeID uint `json:"recipe_id" validate:"required"`
}

// FavoriteResponse is the created favorite link.
type FavoriteResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	RecipeID  uint      `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toFavoriteResponse(favorite *model.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		RecipeID:  favorite.RecipeID,
		CreatedAt: favorite.CreatedAt,
	}
}

// List godoc
// @Summary List my favorite recipes
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RecipeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)
	recipes, err := h.favoriteService.ListRecipes(c.Request().Context(), user.ID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toRecipeResponses(recipes))
}

// Add godoc
// @Summary Add recipe to favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteCreateRequest true "Recipe to favorite"
// @Success 201 {object} FavoriteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req FavoriteCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	favorite, err := h.favoriteService.Add(c.Request().Context(), user.ID, req.RecipeID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toFavoriteResponse(favorite))
}

// Remove godoc
// @Summary Remove recipe from favorites
// @Tags favorites
// @Security BearerAuth
// @Param recipe_id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites/{recipe_id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe id")
	}

	user := auth.CurrentUser(c)
	if err := h.favoriteService.Remove(c.Request().Context(), user.ID, uint(recipeID)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
