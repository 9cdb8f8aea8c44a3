package services

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
)

type UserService interface {
	// Register creates the user and issues a signed credential.
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	// Login authenticates by pincode alone and bumps LastLogin.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
}
