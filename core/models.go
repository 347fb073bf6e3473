package core

import "time"

// User represents a stored user record.
//
// Records are created once at registration and never mutated or deleted.
// The store assigns ID and CreatedAt on insert.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterInput contains the data needed to register a new user
type RegisterInput struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserPayload is the sanitized user view returned to clients.
//
// Password is always null in responses; the stored hash never leaves the
// store layer.
type UserPayload struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Email     string  `json:"email"`
	Password  *string `json:"password"`
	Token     string  `json:"token"`
}

// RegisterResult is the success response body for registration
type RegisterResult struct {
	Message string       `json:"message"`
	User    *UserPayload `json:"user"`
}

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult is the success response body for sign-in.
// The token is additionally written to the session cookie by the HTTP layer.
type SignInResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
