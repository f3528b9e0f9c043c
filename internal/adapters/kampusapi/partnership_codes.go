package kampusapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kampus/admin-console/internal/domain/model"
)

// ListPartnershipCodes returns partnership codes, optionally only active ones.
func (c *Client) ListPartnershipCodes(ctx context.Context, token string, activeOnly bool) ([]model.PartnershipCode, error) {
	var q url.Values
	if activeOnly {
		q = url.Values{"active": {"true"}}
	}
	var out []model.PartnershipCode
	if err := c.do(ctx, call{method: http.MethodGet, path: "/partnership-codes", query: q, token: token, out: &out}); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.PartnershipCode{}
	}
	return out, nil
}

// CreatePartnershipCode creates a code.
func (c *Client) CreatePartnershipCode(
	ctx context.Context,
	token string,
	req model.CreatePartnershipCodeRequest,
) (*model.PartnershipCode, error) {
	var out model.PartnershipCode
	if err := c.do(ctx, call{method: http.MethodPost, path: "/partnership-codes", token: token, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivatePartnershipCode soft-deletes a code.
func (c *Client) DeactivatePartnershipCode(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/partnership-codes/" + strconv.FormatInt(id, 10),
		token:  token,
	})
}
