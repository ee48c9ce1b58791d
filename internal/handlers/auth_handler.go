package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/services"
	"github.com/retocart/server/internal/store"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// IssueToken signs an access token for the user named by ?email=.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	token, err := h.Auth.IssueToken(c.UserContext(), c.Query("email"))
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"accessToken": token})
}
