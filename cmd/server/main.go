package main

import (
	"log"
	"net/http"
	"os"

	_ "recipehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipehub/internal/auth"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/handler"
	"recipehub/internal/model"
	"recipehub/internal/repository"
	"recipehub/internal/router"
	"recipehub/internal/service"
)

// @title Recipe Hub API
// @version 1.0
// @description Recipe sharing backend with JWT authentication, ingredient search, favorites, and notes.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Note{},
			&model.Favorite{},
			&model.RecipeIngredient{},
			"recipe_categories",
			&model.Recipe{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.Note{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenMinutes)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo, cacheClient)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)
	noteService := service.NewNoteService(noteRepo, recipeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	noteHandler := handler.NewNoteHandler(noteService)
	diagHandler := handler.NewDiagHandler(cfg, cacheClient)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenService,
		userRepo,
		authHandler,
		categoryHandler,
		recipeHandler,
		favoriteHandler,
		noteHandler,
		diagHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
