package routes

import (
	"Fitness-Coach-API/internal/api/handlers"
	"Fitness-Coach-API/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	MealHandler     handlers.MealHandler
	DietHandler     handlers.DietHandler
	ExerciseHandler handlers.ExerciseHandler
	FoodHandler     handlers.FoodHandler
	HealthHandler   handlers.HealthHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Meal()
	c.Diet()
	c.Exercise()
	c.FoodItems()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.HealthHandler.Root)
	c.App.Get("/test", c.HealthHandler.Diagnostics)
	c.App.Get("/schema", c.HealthHandler.Schema)
}

func (c *Config) Meal() {
	meal := c.App.Group("/api/meal")
	meal.Post("/log", c.MealHandler.LogMeal)
	meal.Get("/summary/:user_id/:date", c.MealHandler.GetDailySummary)
}

func (c *Config) Diet() {
	c.App.Post("/api/diet/plan", c.DietHandler.CreatePlan)
}

func (c *Config) Exercise() {
	c.App.Post("/api/exercise/form", c.ExerciseHandler.GetFormGuide)
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/food")
	foodItems.Get("/items", c.FoodHandler.GetFoodItems)
}
