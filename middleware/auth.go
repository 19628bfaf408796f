package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"finance-assistant-go-be/auth"
)

// UserIDKey is the locals key under which RequireAuth stores the user id.
const UserIDKey = "userID"

// RequireAuth rejects requests without a valid Bearer token and stores the
// authenticated user id in the request locals.
func RequireAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header required"})
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Authorization header format"})
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
