package httpserver

import "net/http"

// sessionCookieName is the fixed name of the session cookie. Attach and
// clear must use identical name, path, and HttpOnly flags, or the client
// would keep an orphaned cookie around after logout.
const sessionCookieName = "KAIRO"

// sessionBinder attaches and detaches the session token on the transport
// cookie. The cookie is HttpOnly and scoped to all routes. Login sets no
// Max-Age, so the cookie is browser-session scoped; the token's own expiry
// bounds its validity independently.
type sessionBinder struct{}

// Attach binds the token to the response's session cookie.
func (sessionBinder) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear instructs the client to discard the session cookie immediately.
// MaxAge < 0 is serialized by net/http as Max-Age=0.
func (sessionBinder) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// tokenFromRequest extracts the session token from the request, preferring
// the session cookie and falling back to a bearer Authorization header.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return extractBearerToken(r.Header.Get("Authorization"))
}
