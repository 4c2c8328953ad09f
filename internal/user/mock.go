package user

import (
	"context"

	"github.com/google/uuid"
)

// MockRepository fabricates identities instead of persisting them.
// Every call mints a fresh ID, so the same email signed in twice yields
// two unrelated users. Passwords are accepted and discarded.
type MockRepository struct{}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Create(ctx context.Context, name, email, password string) (*User, error) {
	return &User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}, nil
}

func (m *MockRepository) Authenticate(ctx context.Context, email, password string) (*User, error) {
	return &User{
		ID:    uuid.NewString(),
		Name:  "Test User",
		Email: email,
	}, nil
}
