package fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ebran/doorman"
)

// SessionCookieName is the cookie carrying the sign-in token
const SessionCookieName = "token"

const internalErrorMessage = "Something went wrong"

// handleRegister returns a handler for the registration endpoint
func handleRegister(auth doorman.AuthProvider) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input doorman.RegisterInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).SendString("invalid request body")
		}

		result, err := auth.Register(c.Context(), input)
		if err != nil {
			return handleAuthError(c, err)
		}

		return c.Status(http.StatusOK).JSON(result)
	}
}

// handleSignIn returns a handler for the sign-in endpoint. On success the
// token is also written to an HttpOnly session cookie expiring cookieMaxAge
// from now. Registration never sets the cookie.
func handleSignIn(auth doorman.AuthProvider, cookieMaxAge time.Duration) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input doorman.SignInInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).SendString("invalid request body")
		}

		result, err := auth.SignIn(c.Context(), input)
		if err != nil {
			return handleAuthError(c, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    result.Token,
			Expires:  time.Now().Add(cookieMaxAge),
			HTTPOnly: true,
		})

		return c.Status(http.StatusOK).JSON(result)
	}
}

// handleAuthError maps authentication errors to HTTP responses. Every error
// produces a response; unexpected ones become an opaque 500 with the detail
// kept server-side.
func handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		return c.Status(status).SendString(internalErrorMessage)
	}
	return c.Status(status).SendString(err.Error())
}

// mapErrorToStatus maps doorman error types to HTTP status codes
func mapErrorToStatus(err error) int {
	var validationErr *doorman.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, doorman.ErrUserExists):
		return http.StatusBadRequest

	// Unknown email and wrong password both answer 404, as observed.
	case errors.Is(err, doorman.ErrUserNotFound),
		errors.Is(err, doorman.ErrIncorrectPassword):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
