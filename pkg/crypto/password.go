package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// Ensure Bcrypt implements PasswordHandler
var _ PasswordHandler = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a per-call random salt. The cost is the
// adaptive work factor; identical inputs produce different stored digests.
type Bcrypt struct {
	Cost int
}

// NewBcrypt returns a Bcrypt hasher with work factor 10 (bcrypt.DefaultCost).
func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. The comparison is
// constant-time inside bcrypt. A malformed stored hash is a mismatch, never
// an error or a panic.
func (b *Bcrypt) Verify(password, encodedHash string) (bool, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
