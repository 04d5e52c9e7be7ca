package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/auth"
)

// RequireAuth extracts the bearer credential from the Authorization header,
// verifies it, and stores the verified email in c.Locals("email"). Routes
// without this middleware stay public.
func RequireAuth(v auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return fiber.ErrUnauthorized
		}

		email, err := v.Verify(parts[1])
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// Email returns the verified identity attached by RequireAuth, or "" on a
// route that skipped it.
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
