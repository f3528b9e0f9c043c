package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/ports"
)

// DefaultSessionTTL bounds a session when no TTL is configured.
const DefaultSessionTTL = 12 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	Config        AuthConfig
}

// AuthConfig holds optional tuning for AuthService.
type AuthConfig struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *slog.Logger
}

// AuthService coordinates API login and session persistence.
type AuthService struct {
	authn    ports.Authenticator
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

var (
	// ErrSessionExpired is returned by GetSession for sessions past their expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrAccountInactive is returned by Login for accounts the API marks inactive.
	ErrAccountInactive = errors.New("account is inactive")
)

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Authenticator == nil {
		panic("Authenticator is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	ttl := opts.Config.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authn:    opts.Authenticator,
		sessions: opts.Sessions,
		ttl:      ttl,
		now:      now,
		logger:   logger.With("component", "auth_service"),
	}
}

// Login authenticates against the API and persists a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.Validation("E-posta ve şifre gereklidir")
	}

	identity, err := s.authn.Login(ctx, ports.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !identity.Active {
		s.logger.InfoContext(ctx, "refused login for inactive account", "session_email", identity.Email)
		return nil, apperrors.Wrap(ErrAccountInactive, apperrors.ErrCodeForbidden, "Hesabınız devre dışı bırakılmış")
	}

	now := s.now()
	sess := domainauth.Session{
		ID:          generateSessionID(),
		UserID:      identity.UserID,
		Email:       identity.Email,
		Token:       identity.Token,
		Permissions: identity.Permissions,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	if sess.Permissions == nil {
		sess.Permissions = domainauth.Permissions{}
	}
	if sess.Email == "" {
		sess.Email = email
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.InfoContext(ctx, "session created", "session_email", sess.Email)
	return &sess, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// RevokeUser removes every session belonging to email.
func (s *AuthService) RevokeUser(ctx context.Context, email string) (int, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, errors.New("email is required")
	}
	n, err := s.sessions.DeleteByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("revoke sessions: %w", err)
	}
	return n, nil
}

// TTL returns the configured session lifetime.
func (s *AuthService) TTL() time.Duration { return s.ttl }

func generateSessionID() string {
	return uuid.New().String()
}
