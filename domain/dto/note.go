package dto

import (
	"time"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
	Color   string `json:"color" validate:"required,max=20"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty"`
	Color   *string `json:"color" validate:"omitempty,max=20"`
}

type NoteResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Color      string    `json:"color"`
	UserID     uuid.UUID `json:"userId"`
	LastEdited time.Time `json:"lastEdited"`
}

func NoteToNoteResponse(note *models.Note) *NoteResponse {
	if note == nil {
		return nil
	}
	return &NoteResponse{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		Color:      note.Color,
		UserID:     note.UserID,
		LastEdited: note.LastEdited,
	}
}

func NotesToNoteResponses(notes []*models.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = *NoteToNoteResponse(note)
	}
	return responses
}
