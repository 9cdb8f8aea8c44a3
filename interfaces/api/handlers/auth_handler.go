package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/domain/dto"
	"taskdeck/domain/services"
	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logger.WarnContext(ctx, "Validation failed", "errors", utils.GetValidationErrors(err))
		return utils.BadRequestResponse(c, utils.ValidationErrorMessage(err))
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		User:  dto.UserToUserResponse(user),
		Token: token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if req.Pincode == "" {
		return utils.BadRequestResponse(c, "Please provide pincode")
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		User:  dto.UserToUserResponse(user),
		Token: token,
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationErrorMessage(err))
	}

	updated, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}
