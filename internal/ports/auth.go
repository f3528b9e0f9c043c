package ports

// Package ports defines interfaces (hexagonal ports) for auth and API behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

// LoginInput carries staff credentials for the API login endpoint.
type LoginInput struct {
	Email    string
	Password string
}

// Authenticator exchanges staff credentials for an API bearer token.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByEmail revokes every session of one account and reports how many were removed.
	DeleteByEmail(ctx context.Context, email string) (int, error)
}
