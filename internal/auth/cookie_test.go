package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenFromRequest_CookieFirst(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	if got := TokenFromRequest(req); got != "from-cookie" {
		t.Errorf("expected cookie token to win, got %q", got)
	}
}

func TestTokenFromRequest_BearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")

	if got := TokenFromRequest(req); got != "from-header" {
		t.Errorf("expected header token, got %q", got)
	}
}

func TestTokenFromRequest_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")

	if got := TokenFromRequest(req); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestSetSessionCookie_Attributes(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok-123")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "tok-123" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Error("expected HttpOnly, Secure, SameSite=None")
	}
	if c.Path != "/" {
		t.Errorf("expected root path, got %s", c.Path)
	}
	if c.MaxAge != 7*24*60*60 {
		t.Errorf("expected 7-day max age, got %d", c.MaxAge)
	}
}

func TestClearSessionCookie_Attributes(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.MaxAge >= 0 {
		t.Errorf("expected negative max age, got %d", c.MaxAge)
	}
	if c.Path != "/" || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Error("expected deletion directive with matching attributes")
	}
}
