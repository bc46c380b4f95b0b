package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/service"
)

// RecipeHandler handles public recipe browsing and ingredient search.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RecipeResponse is the listing representation of a recipe.
type RecipeResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	PrepTimeMinutes int       `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int       `json:"cook_time_minutes,omitempty"`
	Servings        int       `json:"servings,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecipeDetailResponse adds instructions, categories and ingredients.
type RecipeDetailResponse struct {
	RecipeResponse
	Instructions string               `json:"instructions,omitempty"`
	Categories   []CategoryResponse   `json:"categories"`
	Ingredients  []IngredientResponse `json:"ingredients"`
}

// IngredientResponse is one ingredient line of a recipe.
type IngredientResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

func toRecipeResponse(r *model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		CreatedAt:       r.CreatedAt,
	}
}

func toRecipeResponses(recipes []model.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return out
}

func toRecipeDetailResponse(r *model.Recipe) RecipeDetailResponse {
	categories := make([]CategoryResponse, 0, len(r.Categories))
	for i := range r.Categories {
		categories = append(categories, toCategoryResponse(&r.Categories[i]))
	}
	ingredients := make([]IngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientResponse{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
		})
	}
	return RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(r),
		Instructions:   r.Instructions,
		Categories:     categories,
		Ingredients:    ingredients,
	}
}

// pageParams reads limit/offset query parameters, leaving range
// enforcement to the service.
func pageParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

// List godoc
// @Summary List public recipes
// @Tags recipes
// @Produce json
// @Param limit query int false "Maximum number of recipes (1-200, default 50)"
// @Param offset query int false "Pagination offset"
// @Success 200 {array} RecipeResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)
	recipes, err := h.recipeService.ListPublic(c.Request().Context(), limit, offset)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toRecipeResponses(recipes))
}

// Get godoc
// @Summary Get recipe details
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} RecipeDetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe id")
	}

	recipe, err := h.recipeService.GetPublic(c.Request().Context(), uint(id))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}

// Search godoc
// @Summary Search recipes by ingredients
// @Description Returns public recipes containing all of the requested ingredients. Matching is case-insensitive and whitespace-insensitive; a blank list yields an empty result.
// @Tags recipes
// @Produce json
// @Param ingredients query string true "Comma-separated ingredient names" example(tomato,onion,basil)
// @Param limit query int false "Maximum number of recipes (1-200, default 50)"
// @Param offset query int false "Pagination offset"
// @Success 200 {array} RecipeResponse
// @Router /recipes/search [get]
func (h *RecipeHandler) Search(c echo.Context) error {
	limit, offset := pageParams(c)
	recipes, err := h.recipeService.SearchByIngredients(c.Request().Context(), c.QueryParam("ingredients"), limit, offset)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toRecipeResponses(recipes))
}
