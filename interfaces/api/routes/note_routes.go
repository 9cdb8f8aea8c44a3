package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/interfaces/api/handlers"
	"taskdeck/interfaces/api/middleware"
)

func SetupNoteRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	notes := api.Group("/notes")
	notes.Use(middleware.Protected(jwtSecret))

	notes.Post("/", h.NoteHandler.CreateNote)
	notes.Get("/", h.NoteHandler.GetNotes)
	notes.Get("/:noteId", h.NoteHandler.GetNote)
	notes.Put("/:noteId", h.NoteHandler.UpdateNote)
	notes.Delete("/:noteId", h.NoteHandler.DeleteNote)
}
