package services

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategories(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}
