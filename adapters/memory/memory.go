// Package memory provides an in-memory user store for tests and quick
// starts. Uniqueness is enforced atomically: the existence check and the
// insert happen under one lock.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ebran/doorman"
)

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*doorman.User
}

var _ doorman.UserStore = (*Store)(nil)

func New() *Store {
	return &Store{
		byEmail: make(map[string]*doorman.User),
	}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*doorman.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return nil, doorman.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

func (s *Store) Create(ctx context.Context, user *doorman.User) (*doorman.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return nil, doorman.ErrUserExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	s.byEmail[stored.Email] = &stored

	clone := stored
	return &clone, nil
}

// Len reports the number of stored users
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
