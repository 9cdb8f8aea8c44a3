package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/interfaces/api/handlers"
	"taskdeck/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	categories := api.Group("/categories")
	categories.Use(middleware.Protected(jwtSecret))

	categories.Post("/", h.CategoryHandler.CreateCategory)
	categories.Get("/", h.CategoryHandler.GetCategories)
	categories.Put("/:categoryId", h.CategoryHandler.UpdateCategory)
	categories.Delete("/:categoryId", h.CategoryHandler.DeleteCategory)
}
