package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// seedRecipe bundles a recipe with its ingredient lines and category
// names for loading.
type seedRecipe struct {
	recipe      model.Recipe
	ingredients []model.RecipeIngredient
	categories  []string
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.Note{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)

	categories := map[string]*model.Category{}
	for _, c := range sampleCategories() {
		category := c
		if err := categoryRepo.FirstOrCreate(ctx, &category); err != nil {
			log.Fatalf("Failed to seed category %q: %v", category.Name, err)
		}
		categories[category.Name] = &category
	}
	log.Printf("Seeded %d categories", len(categories))

	seeded, skipped := 0, 0
	for _, s := range sampleRecipes() {
		created, err := seedOne(gormDB, s, categories)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", s.recipe.Title, err)
		}
		if created {
			seeded++
		} else {
			skipped++
		}
	}
	log.Printf("Seed complete: %d recipes created, %d already present", seeded, skipped)
}

// seedOne inserts a recipe with its ingredients and category links
// unless a recipe with the same title already exists.
func seedOne(gormDB *gorm.DB, s seedRecipe, categories map[string]*model.Category) (bool, error) {
	var existing model.Recipe
	err := gormDB.Where("title = ?", s.recipe.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	recipe := s.recipe
	recipe.Ingredients = s.ingredients
	for _, name := range s.categories {
		if category, ok := categories[name]; ok {
			recipe.Categories = append(recipe.Categories, *category)
		}
	}
	if err := gormDB.Create(&recipe).Error; err != nil {
		return false, err
	}
	return true, nil
}

func sampleCategories() []model.Category {
	return []model.Category{
		{Name: "Breakfast", Description: "Morning meals"},
		{Name: "Italian", Description: "Italian classics"},
		{Name: "Vegan", Description: "No animal products"},
		{Name: "Dessert", Description: "Sweet endings"},
		{Name: "Soup", Description: "Soups and stews"},
	}
}

func sampleRecipes() []seedRecipe {
	return []seedRecipe{
		{
			recipe: model.Recipe{
				Title:           "Tomato Basil Pasta",
				Description:     "Simple weeknight pasta with a fresh tomato sauce.",
				Instructions:    "Cook the pasta. Simmer tomatoes with garlic and olive oil. Toss with basil.",
				PrepTimeMinutes: 10,
				CookTimeMinutes: 20,
				Servings:        4,
				IsPublic:        true,
			},
			ingredients: []model.RecipeIngredient{
				{Name: "tomato", Quantity: "6"},
				{Name: "basil", Quantity: "1 bunch"},
				{Name: "spaghetti", Quantity: "400g"},
				{Name: "garlic", Quantity: "3 cloves"},
				{Name: "olive oil", Quantity: "3 tbsp"},
			},
			categories: []string{"Italian"},
		},
		{
			recipe: model.Recipe{
				Title:           "French Onion Soup",
				Description:     "Caramelized onions in a rich broth under melted cheese.",
				Instructions:    "Caramelize the onions slowly. Add broth and simmer. Top with bread and cheese, then broil.",
				PrepTimeMinutes: 15,
				CookTimeMinutes: 60,
				Servings:        4,
				IsPublic:        true,
			},
			ingredients: []model.RecipeIngredient{
				{Name: "onion", Quantity: "5"},
				{Name: "beef broth", Quantity: "1.5l"},
				{Name: "baguette", Quantity: "1/2"},
				{Name: "gruyere", Quantity: "200g"},
			},
			categories: []string{"Soup"},
		},
		{
			recipe: model.Recipe{
				Title:           "Avocado Toast",
				Description:     "Smashed avocado on sourdough with chili flakes.",
				Instructions:    "Toast the bread. Smash the avocado with lemon and salt. Assemble and sprinkle chili flakes.",
				PrepTimeMinutes: 5,
				CookTimeMinutes: 5,
				Servings:        2,
				IsPublic:        true,
			},
			ingredients: []model.RecipeIngredient{
				{Name: "avocado", Quantity: "2"},
				{Name: "sourdough bread", Quantity: "4 slices"},
				{Name: "lemon", Quantity: "1/2"},
				{Name: "chili flakes", Quantity: "1 tsp"},
			},
			categories: []string{"Breakfast", "Vegan"},
		},
		{
			recipe: model.Recipe{
				Title:           "Tomato Onion Salad",
				Description:     "Sharp and juicy side salad.",
				Instructions:    "Slice tomatoes and onion thin. Dress with vinegar, oil, and salt.",
				PrepTimeMinutes: 10,
				Servings:        2,
				IsPublic:        true,
			},
			ingredients: []model.RecipeIngredient{
				{Name: "tomato", Quantity: "3"},
				{Name: "onion", Quantity: "1"},
				{Name: "red wine vinegar", Quantity: "2 tbsp"},
			},
			categories: []string{"Vegan"},
		},
		{
			recipe: model.Recipe{
				Title:           "Secret Family Tiramisu",
				Description:     "Kept private until perfected.",
				Instructions:    "Layer espresso-soaked ladyfingers with mascarpone cream. Chill overnight.",
				PrepTimeMinutes: 30,
				Servings:        8,
				IsPublic:        false,
			},
			ingredients: []model.RecipeIngredient{
				{Name: "mascarpone", Quantity: "500g"},
				{Name: "ladyfingers", Quantity: "24"},
				{Name: "espresso", Quantity: "300ml"},
			},
			categories: []string{"Dessert", "Italian"},
		},
	}
}
