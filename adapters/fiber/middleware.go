package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ebran/doorman"
)

// RequireAuth returns a middleware that verifies the caller's token and
// stores its claims in the context for downstream handlers.
func RequireAuth(auth doorman.AuthProvider) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(http.StatusUnauthorized).SendString("missing token")
		}

		claims, err := auth.Authenticate(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).SendString(doorman.ErrInvalidToken.Error())
		}

		c.Locals("userId", claims.UserID)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// extractToken extracts the authentication token from the request.
// Checks Authorization header (Bearer token) first, then falls back to the
// session cookie.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return c.Cookies(SessionCookieName)
}
