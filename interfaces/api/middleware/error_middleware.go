package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

// ErrorHandler is the Fiber fallback for errors that escape the handlers.
// Handlers normally translate service errors themselves via
// utils.HandleError; anything reaching here is normalized into the envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return utils.ErrorResponse(c, e.Code, e.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)

		return utils.HandleError(c, err)
	}
}
