package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	ErrAuthMissing     = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized Access")
	ErrAuthInvalid     = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized Access")
	ErrForbidden       = fiber.NewError(fiber.StatusForbidden, "Forbidden Access")
	ErrMissingEmail    = fiber.NewError(fiber.StatusForbidden, "could not find products")
	ErrUserNotFound    = fiber.NewError(fiber.StatusNotFound, "User not found!")
	ErrInvalidID       = fiber.NewError(fiber.StatusBadRequest, "invalid id")
	ErrStorageDisabled = fiber.NewError(fiber.StatusServiceUnavailable, "image storage is not configured")
	ErrTooManyRequests = fiber.NewError(fiber.StatusTooManyRequests, "too many requests, retry later")
)

const internalMessage = "internal error"

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

// Handler renders every error as {"message": ...}. Errors that are not
// *fiber.Error are store or driver failures and become a logged 500.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": internalMessage})
	}
}
