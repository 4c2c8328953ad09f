package session

import (
	"context"
	"errors"
	"time"

	"github.com/sujoygiri/test-back/internal/user"
)

// ErrUnavailable reports that the session store could not be reached.
// Callers must treat it as an outage, never as "no session" — otherwise
// every visitor looks logged-out while the store is down.
var ErrUnavailable = errors.New("session: store unavailable")

// Session is the server-side record referenced by the client cookie.
// The cookie carries only the ID; user data never leaves the store.
type Session struct {
	ID        string     `json:"id"`
	User      *user.User `json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Authenticated reports whether a user is bound to this session.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// Store defines how sessions are stored and retrieved.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns (nil, nil) when the session is absent or expired.
	// Connectivity failures return an error wrapping ErrUnavailable.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}
