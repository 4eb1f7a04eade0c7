package auth

import (
	"net/http"
	"strings"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "session_token"

// sessionCookieMaxAge is the cookie lifetime in seconds (7 days).
const sessionCookieMaxAge = 7 * 24 * 60 * 60

// SetSessionCookie writes the session cookie. The cookie is http-only, secure
// and cross-site-sendable so the browser frontend on another origin can carry
// it.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie deletes the session cookie with matching attributes.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// TokenFromRequest extracts the session token, checking the cookie first and
// falling back to a bearer Authorization header. Returns "" if neither is
// present.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
