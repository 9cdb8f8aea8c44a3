package services

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (*models.Note, error)
	GetUserNotes(ctx context.Context, userID uuid.UUID) ([]*models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *dto.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}
