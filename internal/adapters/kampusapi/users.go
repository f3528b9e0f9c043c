package kampusapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kampus/admin-console/internal/domain/model"
)

// userWire mirrors the API's user shape. is_active and is_protected are
// optional on the wire; an absent is_active means active.
type userWire struct {
	ID                        int64  `json:"id"`
	Email                     string `json:"email"`
	CanManageCustomers        bool   `json:"can_manage_customers"`
	CanViewFinancials         bool   `json:"can_view_financials"`
	CanManagePartnershipCodes bool   `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool   `json:"can_view_partnership_stats"`
	CanManageAccess           bool   `json:"can_manage_access"`
	IsActive                  *bool  `json:"is_active"`
	IsProtected               bool   `json:"is_protected"`
}

func (w userWire) toModel() model.ManagedUser {
	active := true
	if w.IsActive != nil {
		active = *w.IsActive
	}
	return model.ManagedUser{
		ID:                        w.ID,
		Email:                     w.Email,
		CanManageCustomers:        w.CanManageCustomers,
		CanViewFinancials:         w.CanViewFinancials,
		CanManagePartnershipCodes: w.CanManagePartnershipCodes,
		CanViewPartnershipStats:   w.CanViewPartnershipStats,
		CanManageAccess:           w.CanManageAccess,
		IsActive:                  active,
		IsProtected:               w.IsProtected,
	}
}

func userPath(id int64) string { return "/users/" + strconv.FormatInt(id, 10) }

// ListUsers returns all staff accounts.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.ManagedUser, error) {
	var wires []userWire
	if err := c.do(ctx, call{method: http.MethodGet, path: "/users", token: token, out: &wires}); err != nil {
		return nil, err
	}
	out := make([]model.ManagedUser, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toModel())
	}
	return out, nil
}

// CreateUser creates a staff account.
func (c *Client) CreateUser(ctx context.Context, token string, req model.CreateUserRequest) (*model.ManagedUser, error) {
	var w userWire
	if err := c.do(ctx, call{method: http.MethodPost, path: "/users", token: token, body: req, out: &w}); err != nil {
		return nil, err
	}
	m := w.toModel()
	return &m, nil
}

// UpdateUser updates flags, activity and optionally the password of a staff account.
func (c *Client) UpdateUser(
	ctx context.Context,
	token string,
	id int64,
	req model.UpdateUserRequest,
) (*model.ManagedUser, error) {
	var w userWire
	if err := c.do(ctx, call{method: http.MethodPut, path: userPath(id), token: token, body: req, out: &w}); err != nil {
		return nil, err
	}
	m := w.toModel()
	return &m, nil
}

// DeleteUser revokes a staff account.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: userPath(id), token: token})
}
