//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/kampus/admin-console/internal/domain/auth"
)

const minPasswordLen = 6

var (
	ErrUserEmailInvalid     = errors.New("email is invalid")
	ErrUserPasswordRequired = errors.New("password is required")
	ErrUserPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrUserProtected        = errors.New("account is protected and cannot be deleted")
)

// ManagedUser is a staff account as listed by the API.
type ManagedUser struct {
	ID                        int64  `json:"id"`
	Email                     string `json:"email"`
	CanManageCustomers        bool   `json:"can_manage_customers"`
	CanViewFinancials         bool   `json:"can_view_financials"`
	CanManagePartnershipCodes bool   `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool   `json:"can_view_partnership_stats"`
	CanManageAccess           bool   `json:"can_manage_access"`
	IsActive                  bool   `json:"is_active"`
	// IsProtected marks operator accounts that cannot be revoked.
	IsProtected bool `json:"is_protected"`
}

// Permissions returns the account's flags keyed by permission.
func (u *ManagedUser) Permissions() auth.Permissions {
	return auth.Permissions{
		auth.PermManageCustomers:        u.CanManageCustomers,
		auth.PermViewFinancials:         u.CanViewFinancials,
		auth.PermManagePartnershipCodes: u.CanManagePartnershipCodes,
		auth.PermViewPartnershipStats:   u.CanViewPartnershipStats,
		auth.PermManageAccess:           u.CanManageAccess,
	}
}

// PermissionFlags is the flag block shared by create and update payloads.
type PermissionFlags struct {
	CanManageCustomers        bool `json:"can_manage_customers"`
	CanViewFinancials         bool `json:"can_view_financials"`
	CanManagePartnershipCodes bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `json:"can_view_partnership_stats"`
	CanManageAccess           bool `json:"can_manage_access"`
}

// FlagsFrom builds a PermissionFlags block from a permission set.
func FlagsFrom(p auth.Permissions) PermissionFlags {
	return PermissionFlags{
		CanManageCustomers:        p.Has(auth.PermManageCustomers),
		CanViewFinancials:         p.Has(auth.PermViewFinancials),
		CanManagePartnershipCodes: p.Has(auth.PermManagePartnershipCodes),
		CanViewPartnershipStats:   p.Has(auth.PermViewPartnershipStats),
		CanManageAccess:           p.Has(auth.PermManageAccess),
	}
}

// CreateUserRequest creates a staff account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PermissionFlags
}

// Validate checks email and password.
func (r *CreateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if _, err := mail.ParseAddress(r.Email); err != nil || !strings.Contains(r.Email, "@") {
		return ErrUserEmailInvalid
	}
	if r.Password == "" {
		return ErrUserPasswordRequired
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		return ErrUserPasswordTooShort
	}
	return nil
}

// UpdateUserRequest updates a staff account. Email is immutable.
// An empty Password leaves the password unchanged.
type UpdateUserRequest struct {
	Password string `json:"password,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
	PermissionFlags
}

// Validate checks the optional password.
func (r *UpdateUserRequest) Validate() error {
	if r.Password != "" && utf8.RuneCountInString(r.Password) < minPasswordLen {
		return ErrUserPasswordTooShort
	}
	return nil
}
