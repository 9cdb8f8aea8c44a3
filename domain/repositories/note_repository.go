package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Note, error)
	GetByUserAndTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
