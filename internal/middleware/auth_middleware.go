package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/services"
)

const claimsKey = "claims"

// TokenParser is satisfied by services.AuthService.
type TokenParser interface {
	ParseToken(token string) (*services.Claims, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// decoded claims for the rest of the request.
func AuthMiddleware(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return apperr.ErrAuthMissing
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return apperr.ErrAuthInvalid
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			return apperr.ErrAuthInvalid
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by AuthMiddleware.
func ClaimsFrom(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*services.Claims)
	return claims, ok
}
