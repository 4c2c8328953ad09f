package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujoygiri/test-back/internal/auth/handler"
	"github.com/sujoygiri/test-back/internal/middleware"
	"github.com/sujoygiri/test-back/internal/session"
	"github.com/sujoygiri/test-back/internal/user"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeStore struct {
	mu      sync.Mutex
	records map[string]session.Session
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]session.Session)}
}

func (f *fakeStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.records[sessionID]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (f *fakeStore) Save(ctx context.Context, s *session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records[s.ID] = *s
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.records, sessionID)
	return nil
}

// newTestServer wires the router the same way the app does, with an
// in-memory store in place of Redis.
func newTestServer(store *fakeStore) *gin.Engine {
	manager := session.NewManager(store, "test-secret", "", false)
	h := handler.NewHandler(manager, user.NewMockRepository())

	router := gin.New()
	userGroup := router.Group("/user")
	userGroup.Use(middleware.LoadSession(manager))
	h.RegisterRoutes(userGroup)
	return router
}

type apiResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCurrentUserUnauthenticated(t *testing.T) {
	router := newTestServer(newFakeStore())

	w, resp := doJSON(t, router, http.MethodGet, "/user/data", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "User not authenticated", resp.Message)
}

func TestSignupThenCurrentUser(t *testing.T) {
	router := newTestServer(newFakeStore())

	w, resp := doJSON(t, router, http.MethodPost, "/user/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "Ann", resp.User.Name)
	assert.Equal(t, "ann@x.com", resp.User.Email)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	w2, resp2 := doJSON(t, router, http.MethodGet, "/user/data", "", cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	require.True(t, resp2.Success)
	assert.Equal(t, resp.User, resp2.User, "session must hold the exact signup identity")
}

func TestSignupValidation(t *testing.T) {
	router := newTestServer(newFakeStore())

	cases := map[string]string{
		"not json":      `{"name":`,
		"missing name":  `{"email":"a@x.com","password":"pw"}`,
		"missing email": `{"name":"Ann","password":"pw"}`,
		"bad email":     `{"name":"Ann","email":"nope","password":"pw"}`,
		"no password":   `{"name":"Ann","email":"a@x.com"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w, resp := doJSON(t, router, http.MethodPost, "/user/signup", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSigninReturnsFabricatedIdentity(t *testing.T) {
	router := newTestServer(newFakeStore())

	w, resp := doJSON(t, router, http.MethodPost, "/user/signin",
		`{"email":"ann@x.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Test User", resp.User.Name)
	assert.Equal(t, "ann@x.com", resp.User.Email)
}

func TestSigninIdentityIsNotDurable(t *testing.T) {
	// Two signins with one email in two browser sessions fabricate two
	// unrelated identities. Documented limitation, not a bug.
	router := newTestServer(newFakeStore())

	_, first := doJSON(t, router, http.MethodPost, "/user/signin",
		`{"email":"ann@x.com","password":"pw"}`, nil)
	_, second := doJSON(t, router, http.MethodPost, "/user/signin",
		`{"email":"ann@x.com","password":"pw"}`, nil)

	require.NotNil(t, first.User)
	require.NotNil(t, second.User)
	assert.NotEqual(t, first.User.ID, second.User.ID)
}

func TestSigninValidationFailsWith401(t *testing.T) {
	// Signup rejects bad input with 400, signin with 401.
	router := newTestServer(newFakeStore())

	w, resp := doJSON(t, router, http.MethodPost, "/user/signin", `{"email":"nope"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}

func TestStoreOutageIsA500NotALogout(t *testing.T) {
	store := newFakeStore()
	router := newTestServer(store)

	w, _ := doJSON(t, router, http.MethodPost, "/user/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw"}`, nil)
	cookies := w.Result().Cookies()

	store.err = session.ErrUnavailable

	w2, resp := doJSON(t, router, http.MethodGet, "/user/data", "", cookies)
	assert.Equal(t, http.StatusInternalServerError, w2.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestSignupStoreOutage(t *testing.T) {
	store := newFakeStore()
	store.err = session.ErrUnavailable
	router := newTestServer(store)

	w, resp := doJSON(t, router, http.MethodPost, "/user/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestSignout(t *testing.T) {
	store := newFakeStore()
	router := newTestServer(store)

	w, _ := doJSON(t, router, http.MethodPost, "/user/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw"}`, nil)
	cookies := w.Result().Cookies()

	w2, resp := doJSON(t, router, http.MethodPost, "/user/signout", "", cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, store.records)

	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)

	w3, _ := doJSON(t, router, http.MethodGet, "/user/data", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)
}

func TestSignoutWithoutSessionIsIdempotent(t *testing.T) {
	router := newTestServer(newFakeStore())

	w, resp := doJSON(t, router, http.MethodPost, "/user/signout", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}
