package httpx

import (
	"net/http"

	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
)

// Dashboard renders the welcome page with tiles for each permitted area and,
// when allowed, the financial summary.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	d := h.Reports.Dashboard(r.Context(), sess)
	if d.FinancialsErr != nil && h.handleAPIError(w, r, d.FinancialsErr) {
		return
	}

	builder := NewTemplateData(r, PageMeta{PageTitle: "Dashboard", CurrentPage: PageDashboard}).
		With("Email", d.Email).
		With("Tiles", dashboardTiles(d.Tiles))
	switch {
	case d.FinancialsErr != nil:
		h.logger().WarnContext(r.Context(), "dashboard financials failed", "error", d.FinancialsErr)
		builder.With("FinancialsFailed", true)
	case d.Financials != nil:
		builder.With("Financials", viewmodel.NewFinancials(d.Financials))
	}
	h.render(w, r, builder.Build())
}

// Financials renders the revenue cards, chart and payment details.
func (h *UIHandlers) Financials(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{PageTitle: "Finansal Veriler", CurrentPage: PageFinancials}
	summary, err := h.Reports.Financials(r.Context(), sessionToken(r.Context()))
	if err != nil {
		h.loadFailed(w, r, meta, err)
		return
	}
	data := NewTemplateData(r, meta).
		With("Financials", viewmodel.NewFinancials(summary)).
		Build()
	h.render(w, r, data)
}

// PartnershipStats renders the per-code customer counts and revenue.
func (h *UIHandlers) PartnershipStats(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{PageTitle: "İş Birliği İstatistikleri", CurrentPage: PagePartnershipStats}
	stats, err := h.Reports.PartnershipStats(r.Context(), sessionToken(r.Context()))
	if err != nil {
		h.loadFailed(w, r, meta, err)
		return
	}
	data := NewTemplateData(r, meta).
		With("Stats", viewmodel.NewPartnershipStats(stats)).
		Build()
	h.render(w, r, data)
}
