package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/ports"
)

// DefaultProtectedAccounts are the operator accounts whose access cannot be revoked
// when the API does not mark them itself.
var DefaultProtectedAccounts = []string{"gokhan@kampus.com", "emre@kampus.com"}

// AccessServiceOptions groups dependencies for AccessService.
type AccessServiceOptions struct {
	Users ports.UserAPI
	// Protected lists emails treated as protected in addition to the API's is_protected flag.
	Protected []string
	Logger    *slog.Logger
}

// AccessService manages staff accounts and their permission flags.
type AccessService struct {
	users     ports.UserAPI
	protected map[string]struct{}
	logger    *slog.Logger
}

// NewAccessService constructs a new AccessService.
func NewAccessService(opts AccessServiceOptions) *AccessService {
	if opts.Users == nil {
		panic("UserAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	protected := make(map[string]struct{}, len(opts.Protected))
	for _, e := range opts.Protected {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			protected[e] = struct{}{}
		}
	}
	return &AccessService{users: opts.Users, protected: protected, logger: logger}
}

// IsProtected reports whether u may not be deleted.
func (s *AccessService) IsProtected(u model.ManagedUser) bool {
	if u.IsProtected {
		return true
	}
	_, ok := s.protected[strings.ToLower(strings.TrimSpace(u.Email))]
	return ok
}

// List returns all staff accounts with IsProtected resolved.
func (s *AccessService) List(ctx context.Context, token string) ([]model.ManagedUser, error) {
	users, err := s.users.ListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].IsProtected = s.IsProtected(users[i])
	}
	return users, nil
}

// Get returns the account with id. The API has no single-user endpoint, so
// this searches the list.
func (s *AccessService) Get(ctx context.Context, token string, id int64) (*model.ManagedUser, error) {
	users, err := s.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.NotFound("Kullanıcı bulunamadı")
}

// Create validates and creates a staff account.
func (s *AccessService) Create(ctx context.Context, token string, req model.CreateUserRequest) (*model.ManagedUser, error) {
	if err := req.Validate(); err != nil {
		return nil, userValidationError(err)
	}
	u, err := s.users.CreateUser(ctx, token, req)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Update validates and applies req to the account with id.
func (s *AccessService) Update(
	ctx context.Context,
	token string,
	id int64,
	req model.UpdateUserRequest,
) (*model.ManagedUser, error) {
	if err := req.Validate(); err != nil {
		return nil, userValidationError(err)
	}
	u, err := s.users.UpdateUser(ctx, token, id, req)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete revokes the account with id unless it is protected.
func (s *AccessService) Delete(ctx context.Context, token string, id int64) error {
	target, err := s.Get(ctx, token, id)
	if err != nil {
		return err
	}
	if target.IsProtected {
		s.logger.WarnContext(ctx, "refused delete of protected account", "user_id", id)
		return apperrors.Wrap(model.ErrUserProtected, apperrors.ErrCodeForbidden, "Bu kullanıcının erişimi kaldırılamaz")
	}
	if err := s.users.DeleteUser(ctx, token, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func userValidationError(err error) error {
	switch {
	case errors.Is(err, model.ErrUserEmailInvalid):
		return apperrors.ValidationField("email", "Geçerli bir e-posta adresi girin")
	case errors.Is(err, model.ErrUserPasswordRequired):
		return apperrors.ValidationField("password", "Şifre gereklidir")
	case errors.Is(err, model.ErrUserPasswordTooShort):
		return apperrors.ValidationField("password", "Şifre en az 6 karakter olmalıdır")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
}
