package session

import (
	"context"
	"net/http"
	"time"

	"github.com/sujoygiri/test-back/internal/user"
)

// opTimeout bounds every store call so a stalled store surfaces as a
// retryable failure instead of a hung request.
const opTimeout = 3 * time.Second

// Manager binds per-request sessions to store records and issues the
// matching cookies. It is the only component that touches the Store.
type Manager struct {
	store  Store
	secret string
	domain string
	isProd bool
}

func NewManager(store Store, secret, domain string, isProd bool) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		domain: domain,
		isProd: isProd,
	}
}

// Load resolves the request cookie to a session. A missing cookie, a bad
// signature, or an absent/expired record all yield a fresh anonymous
// session; only a store outage is an error.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}, nil
	}

	sessionID, ok := verify(cookie.Value, m.secret)
	if !ok {
		return &Session{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return &Session{}, nil
	}

	return sess, nil
}

// Attach binds a user to the session, persists the record with a 24h TTL
// and issues the cookie. The session ID is minted lazily on first write,
// so anonymous visitors never touch the store.
func (m *Manager) Attach(ctx context.Context, w http.ResponseWriter, sess *Session, u *user.User) error {
	now := time.Now()

	if sess.ID == "" {
		id, err := GenerateID()
		if err != nil {
			return err
		}
		sess.ID = id
		sess.CreatedAt = now
	}

	sess.User = u
	sess.ExpiresAt = now.Add(MaxAge)

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}

	SetCookie(w, sess.ID, m.secret, m.cookieOptions())
	return nil
}

// Clear deletes the store record and expires the cookie. The cookie is
// expired even when the store delete fails, so the client always ends up
// signed out.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	var err error

	if sess.ID != "" {
		ctx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		err = m.store.Delete(ctx, sess.ID)
	}

	ClearCookie(w, m.cookieOptions())

	sess.ID = ""
	sess.User = nil

	return err
}

func (m *Manager) cookieOptions() CookieOptions {
	if m.isProd {
		return CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
			Domain:   m.domain,
		}
	}
	return CookieOptions{
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Domain:   "localhost",
	}
}
