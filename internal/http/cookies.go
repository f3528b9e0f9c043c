package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

// DefaultSessionCookieName names the session cookie when none is configured.
const DefaultSessionCookieName = "session_id"

// SessionCookie describes how the session id is carried in the browser.
type SessionCookie struct {
	Name   string
	Domain string
	// Secure forces the Secure attribute; requests over TLS or forwarded HTTPS always get it.
	Secure bool
}

func (c SessionCookie) name() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

func (c SessionCookie) secure(r *http.Request) bool {
	return c.Secure || r.TLS != nil || isForwardedHTTPS(r)
}

// Read returns the session id from r, or "" when absent.
func (c SessionCookie) Read(r *http.Request) string {
	ck, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(ck.Value)
}

// Set writes the cookie for s, expiring with the session.
func (c SessionCookie) Set(w http.ResponseWriter, r *http.Request, s *domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    s.ID,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   max(int(time.Until(s.ExpiresAt).Seconds()), 1),
	})
}

// Clear expires the cookie, mirroring the attributes used by Set.
func (c SessionCookie) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
