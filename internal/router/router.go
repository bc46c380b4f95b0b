package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipehub/internal/auth"
	"recipehub/internal/config"
	"recipehub/internal/handler"
	"recipehub/internal/repository"
)

// Register wires routes and middleware. Route order matters in one
// place: /recipes/search must precede /recipes/:id so "search" is
// never captured as a recipe id.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	recipeHandler *handler.RecipeHandler,
	favoriteHandler *handler.FavoriteHandler,
	noteHandler *handler.NoteHandler,
	diagHandler *handler.DiagHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig(cfg)))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", diagHandler.Health)
	e.GET("/config/runtime", diagHandler.RuntimeConfig)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/categories", categoryHandler.List)
	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/search", recipeHandler.Search)
	e.GET("/recipes/:id", recipeHandler.Get)

	// Protected routes (bearer token resolved to an active user)
	guard := auth.Guard(tokens, users)

	e.GET("/auth/me", authHandler.Me, guard...)

	favorites := e.Group("/favorites", guard...)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Add)
	favorites.DELETE("/:recipe_id", favoriteHandler.Remove)

	notes := e.Group("/notes", guard...)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)
}

// corsConfig allows the configured origins, or any origin when none
// are configured.
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	origins := cfg.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
