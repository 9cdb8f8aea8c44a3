package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	GetByPincode(ctx context.Context, pincode string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
