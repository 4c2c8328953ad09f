package user

import "context"

// Repository is the seam between the auth handlers and user storage.
// Create registers a new account; Authenticate checks credentials for an
// existing one. Swapping in a durable implementation must not require
// handler changes.
type Repository interface {
	Create(ctx context.Context, name, email, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
