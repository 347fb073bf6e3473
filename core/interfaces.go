package core

import (
	"context"
	"time"

	"github.com/ebran/doorman/pkg/crypto"
)

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT (Database operations)
// ============================================

// UserStore defines user-record database operations.
//
// Create must enforce email uniqueness atomically at insertion and return
// ErrUserExists on a duplicate, regardless of any earlier FindByEmail
// result. The flows' pre-insert lookup is an optimization only; the store's
// constraint is the source of truth.
type UserStore interface {
	// FindByEmail returns ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create assigns ID and CreatedAt and returns the stored record.
	Create(ctx context.Context, u *User) (*User, error)
}

// ============================================
// AUTH HANDLER (for HTTP adapters)
// ============================================

// AuthProvider provides authentication operations for HTTP adapters
type AuthProvider interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInResult, error)

	// Authenticate verifies a previously issued token. Used by adapter
	// middleware guarding protected routes.
	Authenticate(token string) (*crypto.Claims, error)
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(handler AuthProvider, cookieMaxAge time.Duration) error
}
