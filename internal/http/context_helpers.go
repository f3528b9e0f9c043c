package httpx

import (
	"context"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

// sessionKey is the context key under which the guard stores the current session.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the session placed by the guard and whether one is present.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context, or nil.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// sessionToken returns the API bearer token of the session in ctx.
func sessionToken(ctx context.Context) string {
	if s := GetSessionFromContext(ctx); s != nil {
		return s.Token
	}
	return ""
}
