package middleware

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/pkg/jwt"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	token, found := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

// AuthMiddleware rejects the request unless it carries a valid bearer token.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageTokenNotProvided, domain.ErrTokenNotFound)
		}

		token, ok := bearerToken(c)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageTokenInvalid, domain.ErrTokenInvalid)
		}

		userID, email, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageTokenExpired, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageTokenInvalid, err)
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller's identity when a valid token is
// present and otherwise lets the request through anonymously.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		userID, email, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			slog.Debug("ignoring unusable token on optional route", "path", c.Path(), "error", err)
			return c.Next()
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// UserID returns "" for anonymous callers.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
