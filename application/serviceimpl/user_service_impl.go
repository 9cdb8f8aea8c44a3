package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
	"taskdeck/domain/services"
	"taskdeck/pkg/apperrors"
	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	existing, _ := s.userRepo.GetByPhoneNumber(ctx, req.PhoneNumber)
	if existing != nil {
		logger.WarnContext(ctx, "Phone number already registered", "phone_number", req.PhoneNumber)
		return "", nil, apperrors.Validationf("Phone number already registered")
	}

	existing, _ = s.userRepo.GetByPincode(ctx, req.Pincode)
	if existing != nil {
		logger.WarnContext(ctx, "Pincode already in use")
		return "", nil, apperrors.Validationf("Pincode already in use")
	}

	user := &models.User{
		ID:          uuid.New(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Pincode:     req.Pincode,
		JobRoles:    req.JobRoles,
		CreatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique indexes on phone number and pincode backstop the pre-checks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.Validationf("Phone number or pincode already registered")
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.PhoneNumber, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign credential", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "phone_number", user.PhoneNumber)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByPincode(ctx, req.Pincode)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - no user for pincode")
		return "", nil, apperrors.Authf("Invalid pincode")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update last login", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.PhoneNumber, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign credential", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return token, user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User not found for profile update", "user_id", userID)
		return nil, apperrors.NotFoundf("User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Pincode != nil {
		existing, _ := s.userRepo.GetByPincode(ctx, *req.Pincode)
		if existing != nil && existing.ID != userID {
			return nil, apperrors.Validationf("Pincode already in use")
		}
		user.Pincode = *req.Pincode
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validationf("Pincode already in use")
		}
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)

	return user, nil
}
