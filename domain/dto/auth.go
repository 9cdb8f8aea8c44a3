package dto

import (
	"time"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type RegisterRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=50"`
	PhoneNumber string   `json:"phoneNumber" validate:"required,len=10,numeric"`
	Pincode     string   `json:"pincode" validate:"required,len=4,numeric"`
	JobRoles    []string `json:"jobRoles" validate:"required,min=1,dive,required"`
}

// LoginRequest carries the pincode only. The pincode doubles as the login
// secret; there is no second factor.
type LoginRequest struct {
	Pincode string `json:"pincode" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=3,max=50"`
	Pincode *string `json:"pincode" validate:"omitempty,len=4,numeric"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	JobRoles    []string   `json:"jobRoles"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func UserToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		JobRoles:    user.JobRoles,
		CreatedAt:   user.CreatedAt,
		LastLogin:   user.LastLogin,
	}
}
