package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebran/doorman/pkg/crypto"
)

// Ensure Doorman implements AuthProvider
var _ AuthProvider = (*Doorman)(nil)

const (
	registeredMessage = "You have successfully registered!"
	signedInMessage   = "You have successfully logged in!"
)

// Register creates a new user from validated credentials and issues a token.
//
// The registration token carries both the user id and the email claim; the
// sign-in token carries only the id. Both paths keep the behavior they were
// observed with.
func (d *Doorman) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// Step 1: Validate presence and format of all fields
	if err := ValidateRegistration(input); err != nil {
		return nil, err
	}

	// Step 2: Check if the user already exists. Advisory only: the store's
	// uniqueness constraint at Create is the real guard.
	existing, err := d.Store.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		d.Logger.Error("failed to check existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	// Step 3: Hash the password
	hashedPassword, err := d.PasswordHasher.Hash(input.Password)
	if err != nil {
		d.Logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 4: Create the user. A concurrent registration may still win the
	// race after a clean pre-check, so a conflict here is expected, not
	// exceptional.
	user, err := d.Store.Create(ctx, &User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, ErrUserExists
		}
		d.Logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Step 5: Issue a token with the email claim included
	token, err := d.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		d.Logger.Error("failed to issue token", "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterResult{
		Message: registeredMessage,
		User: &UserPayload{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Password:  nil, // cleared in every response
			Token:     token,
		},
	}, nil
}

// SignIn authenticates a user with email and password
func (d *Doorman) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	// Step 1: Validate presence and format of both fields
	if err := ValidateSignIn(input); err != nil {
		return nil, err
	}

	// Step 2: Find the user by email
	user, err := d.Store.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		d.Logger.Error("failed to find user", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Step 3: Verify the password
	valid, err := d.PasswordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		d.Logger.Error("failed to verify password", "error", err)
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrIncorrectPassword
	}

	// Step 4: Issue a token without the email claim
	token, err := d.Tokens.Issue(user.ID, "")
	if err != nil {
		d.Logger.Error("failed to issue token", "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &SignInResult{
		Message: signedInMessage,
		Success: true,
		Token:   token,
	}, nil
}

// Authenticate verifies a token issued by either flow and returns its claims
func (d *Doorman) Authenticate(token string) (*crypto.Claims, error) {
	return d.Tokens.Parse(token)
}
