package config

import (
	"Fitness-Coach-API/internal/api/handlers"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/internal/api/routes"
	"Fitness-Coach-API/internal/middleware"
	"Fitness-Coach-API/internal/utils"
	"Fitness-Coach-API/pkg/diet"
	"Fitness-Coach-API/pkg/exercise"
	"Fitness-Coach-API/pkg/food"
	"Fitness-Coach-API/pkg/health"
	"Fitness-Coach-API/pkg/meal"
	"Fitness-Coach-API/pkg/store"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const AppName = "Fitness Coach API v1.0.0"

func NewApp(documentStore store.DocumentStore) (*fiber.App, error) {
	if utils.Validate == nil {
		utils.InitValidator()
	}
	app := fiber.New(fiber.Config{
		AppName:           AppName,
		EnablePrintRoutes: true,
		Immutable:         true,
		UnescapePath:      true,
		ErrorHandler:      presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up access logging and limiter
	output, err := accessLogOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	}))

	if limit := utils.GetConfigInt("RATE_LIMIT_MAX"); limit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        limit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	mealRepository := meal.NewMealRepository(documentStore)
	foodRepository := food.NewFoodRepository(documentStore)

	// Service
	mealService := meal.NewMealService(mealRepository)
	foodService := food.NewFoodService(foodRepository)
	dietService := diet.NewDietService()
	exerciseService := exercise.NewExerciseService()
	healthService := health.NewHealthService(documentStore, health.StoreSettings{
		DatabaseURL:  utils.GetConfig("DATABASE_URL"),
		DatabaseName: utils.GetConfig("DATABASE_NAME"),
	})

	// Handler
	mealHandler := handlers.NewMealHandler(mealService, validator)
	dietHandler := handlers.NewDietHandler(dietService, validator)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService, validator)
	foodHandler := handlers.NewFoodHandler(foodService)
	healthHandler := handlers.NewHealthHandler(healthService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		MealHandler:     mealHandler,
		DietHandler:     dietHandler,
		ExerciseHandler: exerciseHandler,
		FoodHandler:     foodHandler,
		HealthHandler:   healthHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// accessLogOutput opens path for appending, or returns stdout when path is empty.
func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}
