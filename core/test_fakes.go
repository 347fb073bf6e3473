package core

import (
	"context"
	"sync"
)

// FakeUserStore is a test-only fake implementing UserStore.
// It stores users in a map and exposes error fields for behavior injection.
type FakeUserStore struct {
	users map[string]*User
	mu    sync.Mutex

	findErr   error
	createErr error
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{
		users: make(map[string]*User),
	}
}

func (f *FakeUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	user, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *FakeUserStore) Create(ctx context.Context, user *User) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	if _, ok := f.users[user.Email]; ok {
		return nil, ErrUserExists
	}

	stored := *user
	stored.ID = "user-" + user.Email
	f.users[user.Email] = &stored
	return &stored, nil
}
