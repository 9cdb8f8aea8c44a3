package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskdeck/pkg/apperrors"
)

// Response is the envelope shared by every endpoint: a success flag plus
// either the payload or an error message.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Authentication invalid"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func ForbiddenResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Not authorized to access this resource"
	}
	return ErrorResponse(c, fiber.StatusForbidden, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func InternalServerErrorResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Something went wrong, please try again later"
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message)
}

// HandleError translates a service error into the envelope. Storage sentinel
// errors that escape the service layer are normalized here as well.
// Conflicts surface as 400, matching the API contract.
func HandleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundResponse(c, "Resource not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return BadRequestResponse(c, "Duplicate value entered")
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindConflict:
		return BadRequestResponse(c, err.Error())
	case apperrors.KindAuth:
		return UnauthorizedResponse(c, err.Error())
	case apperrors.KindForbidden:
		return ForbiddenResponse(c, err.Error())
	case apperrors.KindNotFound:
		return NotFoundResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, err.Error())
	}
}
