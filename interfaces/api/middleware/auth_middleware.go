package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

// Protected validates the bearer credential and sets the caller's identity
// in locals. Fails closed: missing header, malformed header, bad signature
// and expiry all reject with 401.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Authentication token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Authentication invalid")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
