package config

import (
	"strings"
	"time"
)

// SessionConfig controls session persistence.
type SessionConfig struct {
	// TTL is how long a session lives after login.
	TTL time.Duration `env:"TTL" envDefault:"12h"`

	// Prefix namespaces session keys in Redis.
	Prefix string `env:"PREFIX" envDefault:"session:"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"session_id"`

	// ProtectedAccounts are emails whose access can never be revoked from the console.
	ProtectedAccounts []string `env:"PROTECTED_ACCOUNTS" envDefault:"gokhan@kampus.com,emre@kampus.com"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL < time.Minute {
		s.TTL = 12 * time.Hour
	}
	if strings.TrimSpace(s.Prefix) == "" {
		s.Prefix = "session:"
	}
	if strings.TrimSpace(s.CookieName) == "" {
		s.CookieName = "session_id"
	}

	out := s.ProtectedAccounts[:0]
	seen := map[string]bool{}
	for _, e := range s.ProtectedAccounts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	s.ProtectedAccounts = out
}
