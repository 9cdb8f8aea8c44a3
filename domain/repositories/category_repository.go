package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	GetByParentTaskID(ctx context.Context, parentTaskID uuid.UUID) (*models.Category, error)
	// Update persists scalar fields and replaces the children association
	// with category.Children.
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
