package service

import (
	"context"
	"fmt"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/domain/model"
	"github.com/kampus/admin-console/internal/ports"
)

// ReportService serves the pre-aggregated reports.
type ReportService struct {
	reports ports.ReportAPI
}

// NewReportService constructs a new ReportService.
func NewReportService(reports ports.ReportAPI) *ReportService {
	if reports == nil {
		panic("ReportAPI is required")
	}
	return &ReportService{reports: reports}
}

// Financials returns the revenue summary.
func (s *ReportService) Financials(ctx context.Context, token string) (*model.FinancialSummary, error) {
	fin, err := s.reports.GetFinancials(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get financials: %w", err)
	}
	return fin, nil
}

// PartnershipStats returns per-code aggregates.
func (s *ReportService) PartnershipStats(ctx context.Context, token string) ([]model.PartnershipStat, error) {
	stats, err := s.reports.GetPartnershipStats(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get partnership stats: %w", err)
	}
	return stats, nil
}

// Dashboard is the landing page content for one session.
type Dashboard struct {
	Email string
	// Tiles are the permitted areas in display order.
	Tiles []domainauth.PermissionKey
	// Financials is set only when the session may view financials and the fetch succeeded.
	Financials *model.FinancialSummary
	// FinancialsErr is the fetch error, if any; the rest of the page still renders.
	FinancialsErr error
}

// dashboardTiles are the areas that get a tile, in order.
var dashboardTiles = []domainauth.PermissionKey{
	domainauth.PermManageCustomers,
	domainauth.PermViewFinancials,
	domainauth.PermManagePartnershipCodes,
	domainauth.PermViewPartnershipStats,
}

// Dashboard builds the landing page. Financials are fetched only for sessions
// holding can_view_financials.
func (s *ReportService) Dashboard(ctx context.Context, sess *domainauth.Session) *Dashboard {
	d := &Dashboard{}
	if sess == nil {
		return d
	}
	d.Email = sess.Email
	for _, k := range dashboardTiles {
		if sess.Can(k) {
			d.Tiles = append(d.Tiles, k)
		}
	}
	if sess.Can(domainauth.PermViewFinancials) {
		d.Financials, d.FinancialsErr = s.Financials(ctx, sess.Token)
	}
	return d
}
