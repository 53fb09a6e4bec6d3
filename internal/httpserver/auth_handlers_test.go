package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kairo/backend/internal/config"
	domain "kairo/backend/internal/domain/auth"
	"kairo/backend/internal/infrastructure/password"
	"kairo/backend/internal/infrastructure/token"
	authusecase "kairo/backend/internal/usecase/auth"
)

type memUserRepo struct {
	users map[string]*domain.User // keyed by username
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, user := range r.users {
		if filter.Verified != nil && user.Verified != *filter.Verified {
			continue
		}
		clone := *user
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memUserRepo) SetVerified(_ context.Context, id string, verified bool, updatedAt time.Time) error {
	for _, user := range r.users {
		if user.ID == id {
			user.Verified = verified
			user.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestServer(t *testing.T) (*Server, *memUserRepo, *token.JWTManager) {
	t.Helper()

	repo := newMemUserRepo()
	tokens := token.NewJWTManager("test-secret", time.Hour, "kairo")
	authService := authusecase.NewService(repo, password.NewBcryptHasher(), tokens)

	cfg := config.Config{
		HTTPPort:        "0",
		AllowedOrigins:  []string{"*"},
		ReadTimeoutSec:  5,
		WriteTimeoutSec: 5,
		IdleTimeoutSec:  5,
	}
	return NewServer(cfg, authService, nil, nil, nil, nil), repo, tokens
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthenticationFlow(t *testing.T) {
	t.Parallel()

	srv, repo, tokens := newTestServer(t)
	h := srv.Handler()

	// Register alice as staff.
	rec := doJSON(t, h, http.MethodPost, "/users/register",
		`{"username":"alice","password":"secret123","role":"staff"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Login with correct credentials binds the session cookie.
	rec = doJSON(t, h, http.MethodPost, "/users/login",
		`{"username":"alice","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	session := sessionCookieFrom(t, rec)
	require.NotNil(t, session)
	require.True(t, session.HttpOnly)
	require.Equal(t, "/", session.Path)

	role, err := tokens.Validate(session.Value)
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, role)

	// Wrong password: rejected, no session cookie set.
	rec = doJSON(t, h, http.MethodPost, "/users/login",
		`{"username":"alice","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, sessionCookieFrom(t, rec))

	// Logout clears the cookie with Max-Age=0.
	rec = doJSON(t, h, http.MethodGet, "/users/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := sessionCookieFrom(t, rec)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	// Verify alice's account by id.
	alice, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodPost, "/users/verify-user", `{"id":"`+alice.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	alice, err = repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, alice.Verified)
}

func TestLoginFailuresShareOneOutcome(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/users/register",
		`{"username":"alice","password":"secret123","role":"staff"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := doJSON(t, h, http.MethodPost, "/users/login",
		`{"username":"nobody","password":"secret123"}`)
	wrongPassword := doJSON(t, h, http.MethodPost, "/users/login",
		`{"username":"alice","password":"not-it"}`)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, unknown.Code, wrongPassword.Code)
	require.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t)
	h := srv.Handler()

	first := doJSON(t, h, http.MethodGet, "/users/logout", "")
	second := doJSON(t, h, http.MethodGet, "/users/logout", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Contains(t, second.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestVerifyUserNotFound(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/users/verify-user", `{"id":"missing"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	srv, _, tokens := newTestServer(t)
	h := srv.Handler()

	// No session.
	rec := doJSON(t, h, http.MethodGet, "/users/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = doJSON(t, h, http.MethodGet, "/users/me", "",
		&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid session.
	tok, err := tokens.Issue(domain.RoleStaff)
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet, "/users/me", "",
		&http.Cookie{Name: sessionCookieName, Value: tok})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "staff", body.Role)
}

func TestAdminGate(t *testing.T) {
	t.Parallel()

	srv, _, tokens := newTestServer(t)
	h := srv.Handler()

	staffTok, err := tokens.Issue(domain.RoleStaff)
	require.NoError(t, err)
	rec := doJSON(t, h, http.MethodGet, "/users/", "",
		&http.Cookie{Name: sessionCookieName, Value: staffTok})
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminTok, err := tokens.Issue(domain.RoleAdmin)
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet, "/users/", "",
		&http.Cookie{Name: sessionCookieName, Value: adminTok})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t)
	h := srv.Handler()

	expired := token.NewJWTManager("test-secret", -time.Minute, "kairo")
	tok, err := expired.Issue(domain.RoleStaff)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodGet, "/users/me", "",
		&http.Cookie{Name: sessionCookieName, Value: tok})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
