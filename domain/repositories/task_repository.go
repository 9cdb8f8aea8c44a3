package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	GetByUserAndTimeframe(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, error)
	GetByUserAndName(ctx context.Context, userID uuid.UUID, taskName string) (*models.Task, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
