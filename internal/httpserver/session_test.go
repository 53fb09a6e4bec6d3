package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionBinderAttach(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sessionBinder{}.Attach(rec, "some-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, sessionCookieName, c.Name)
	require.Equal(t, "some-token", c.Value)
	require.Equal(t, "/", c.Path)
	require.True(t, c.HttpOnly)
	// No Max-Age on login: the cookie is browser-session scoped and the
	// token's own expiry bounds validity.
	require.Equal(t, 0, c.MaxAge)
}

func TestSessionBinderClear(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sessionBinder{}.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, sessionCookieName, c.Name)
	require.Empty(t, c.Value)
	require.Equal(t, "/", c.Path)
	require.True(t, c.HttpOnly)
	require.Negative(t, c.MaxAge)
	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestTokenFromRequestPrefersCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	r.Header.Set("Authorization", "Bearer header-token")
	require.Equal(t, "cookie-token", tokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	require.Equal(t, "header-token", tokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, tokenFromRequest(r))
}
