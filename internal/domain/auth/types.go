package auth

// Package auth contains domain-level types for authentication, sessions and permissions.
// It is pure and free of framework/adapter concerns.

import "time"

// PermissionKey names one capability flag on a staff account.
// The string form matches the API's JSON field names.
type PermissionKey string

const (
	PermManageCustomers        PermissionKey = "can_manage_customers"
	PermViewFinancials         PermissionKey = "can_view_financials"
	PermManagePartnershipCodes PermissionKey = "can_manage_partnership_codes"
	PermViewPartnershipStats   PermissionKey = "can_view_partnership_stats"
	PermManageAccess           PermissionKey = "can_manage_access"
)

// AllPermissions lists every permission key in display order.
func AllPermissions() []PermissionKey {
	return []PermissionKey{
		PermManageCustomers,
		PermViewFinancials,
		PermManagePartnershipCodes,
		PermViewPartnershipStats,
		PermManageAccess,
	}
}

// Valid reports whether k is one of the known permission keys.
func (k PermissionKey) Valid() bool {
	for _, p := range AllPermissions() {
		if p == k {
			return true
		}
	}
	return false
}

// Permissions is the set of flags granted to a session.
// Missing keys are treated as false.
type Permissions map[PermissionKey]bool

// Has reports whether the flag for k is true.
func (p Permissions) Has(k PermissionKey) bool {
	if p == nil {
		return false
	}
	return p[k]
}

// Allows reports whether a route requiring k may be entered.
// An empty key means no permission is required.
func (p Permissions) Allows(k PermissionKey) bool {
	return k == "" || p.Has(k)
}

// Identity is the authenticated principal returned by the API's login endpoint.
type Identity struct {
	UserID      string
	Email       string
	Token       string
	Permissions Permissions
	Active      bool
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier; Token is the API bearer token.
// Permissions are a cache of the API's decision at login time.
type Session struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Email       string      `json:"email"`
	Token       string      `json:"token"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// Can reports whether the session holds the flag for k.
func (s *Session) Can(k PermissionKey) bool {
	if s == nil {
		return false
	}
	return s.Permissions.Allows(k)
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
