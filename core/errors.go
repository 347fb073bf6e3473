package core

import "errors"

// ValidationError reports missing or malformed credential fields.
// Message is the exact text returned to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Format errors. These carry client-facing text and map to 400.
var (
	ErrInvalidEmail = &ValidationError{Message: "Please enter a valid email address"}
	ErrWeakPassword = &ValidationError{Message: "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character that is not alphanumeric"}
)

// Authentication errors
var (
	ErrUserExists        = errors.New("User already exists with the same email") // 400 Bad Request
	ErrUserNotFound      = errors.New("User not found")                          // 404 Not Found
	ErrIncorrectPassword = errors.New("Incorrect password")                      // 404 Not Found
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired       = errors.New("user store is required")     // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")   // 500
	ErrSecretRequired      = errors.New("signing secret is required") // 500
	ErrSecretTooShort      = errors.New("signing secret too short")   // 500
)
