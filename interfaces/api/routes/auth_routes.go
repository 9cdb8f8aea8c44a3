package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/interfaces/api/handlers"
	"taskdeck/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
	auth.Put("/profile", middleware.Protected(jwtSecret), h.AuthHandler.UpdateProfile)
}
