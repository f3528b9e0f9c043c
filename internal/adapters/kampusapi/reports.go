package kampusapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
)

// GetFinancials returns the revenue summary.
func (c *Client) GetFinancials(ctx context.Context, token string) (*model.FinancialSummary, error) {
	var out model.FinancialSummary
	if err := c.do(ctx, call{method: http.MethodGet, path: "/financials", token: token, out: &out}); err != nil {
		return nil, err
	}
	if out.Details == nil {
		out.Details = []model.FinancialDetail{}
	}
	return &out, nil
}

// GetPartnershipStats returns per-code aggregates.
func (c *Client) GetPartnershipStats(ctx context.Context, token string) ([]model.PartnershipStat, error) {
	var out []model.PartnershipStat
	if err := c.do(ctx, call{method: http.MethodGet, path: "/partnership-stats", token: token, out: &out}); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.PartnershipStat{}
	}
	return out, nil
}

// Ping checks that the API answers. Any response below 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, call{method: http.MethodGet, path: "/"})
	var appErr *apperrors.AppError
	if err == nil || (errors.As(err, &appErr) && appErr.Status != 0 && appErr.Status < 500) {
		return nil
	}
	return err
}
