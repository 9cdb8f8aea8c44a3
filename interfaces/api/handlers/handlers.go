package handlers

import (
	"taskdeck/domain/services"
)

// Handlers bundles all HTTP handlers for route registration.
type Handlers struct {
	AuthHandler     *AuthHandler
	TaskHandler     *TaskHandler
	CategoryHandler *CategoryHandler
	NoteHandler     *NoteHandler
}

type Services struct {
	UserService     services.UserService
	TaskService     services.TaskService
	CategoryService services.CategoryService
	NoteService     services.NoteService
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(s.UserService),
		TaskHandler:     NewTaskHandler(s.TaskService),
		CategoryHandler: NewCategoryHandler(s.CategoryService),
		NoteHandler:     NewNoteHandler(s.NoteService),
	}
}
