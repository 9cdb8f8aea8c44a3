package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/interfaces/api/handlers"
	"taskdeck/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))

	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.GetTasks)
	// static-prefix routes are registered before the :taskId wildcard
	tasks.Get("/timeframe/:timeframe", h.TaskHandler.GetTasksByTimeframe)
	tasks.Get("/:taskId", h.TaskHandler.GetTask)
	tasks.Put("/:taskId", h.TaskHandler.UpdateTask)
	tasks.Delete("/:taskId", h.TaskHandler.DeleteTask)
	tasks.Put("/:taskId/move", h.TaskHandler.MoveTask)
	tasks.Put("/:taskId/completed-units", h.TaskHandler.UpdateCompletedUnits)
	tasks.Put("/:taskId/priority", h.TaskHandler.UpdatePriority)
	tasks.Put("/:taskId/times", h.TaskHandler.UpdateWindow)
}
