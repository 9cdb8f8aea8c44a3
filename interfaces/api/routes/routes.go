package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/interfaces/api/handlers"
	"taskdeck/pkg/utils"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)
	SetupCategoryRoutes(api, h, jwtSecret)
	SetupNoteRoutes(api, h, jwtSecret)

	// Fallback for unmatched routes, fixed body per API contract.
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Route does not exist")
	})
}
