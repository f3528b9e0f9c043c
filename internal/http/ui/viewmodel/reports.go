package viewmodel

import (
	"github.com/kampus/admin-console/internal/domain/model"
	"github.com/kampus/admin-console/internal/http/uiutil"
)

// Bar is one bar of a CSS bar chart. Width is a percentage of the largest bar.
type Bar struct {
	Label   string
	Display string
	Width   float64
}

// PeriodCard is one revenue period tile.
type PeriodCard struct {
	Label  string
	Amount float64
}

// Financials is the render model for the revenue report.
type Financials struct {
	Cards   []PeriodCard
	Bars    []Bar
	Total   float64
	Details []model.FinancialDetail
}

// NewFinancials derives the period cards and chart bars from a summary.
func NewFinancials(s *model.FinancialSummary) *Financials {
	if s == nil {
		return &Financials{}
	}
	p := s.Period
	cards := []PeriodCard{
		{Label: "Günlük Ciro", Amount: p.Daily},
		{Label: "Haftalık Ciro", Amount: p.Weekly},
		{Label: "Aylık Ciro", Amount: p.Monthly},
		{Label: "Yıllık Ciro", Amount: p.Yearly},
	}
	short := []string{"Günlük", "Haftalık", "Aylık", "Yıllık"}
	maxVal := p.Max()
	bars := make([]Bar, 0, len(cards))
	for i, c := range cards {
		bars = append(bars, Bar{
			Label:   short[i],
			Display: uiutil.FormatMoney(c.Amount),
			Width:   uiutil.BarWidth(c.Amount, maxVal),
		})
	}
	return &Financials{Cards: cards, Bars: bars, Total: s.Total, Details: s.Details}
}

// StatRow is one line of the partnership detail table.
type StatRow struct {
	Code          string
	CustomerCount int
	TotalAmount   float64
	Average       float64
	SharePercent  int
}

// PartnershipStats is the render model for the per-code report.
type PartnershipStats struct {
	Rows           []StatRow
	CountBars      []Bar
	RevenueBars    []Bar
	TotalCustomers int
	TotalAmount    float64
}

// NewPartnershipStats computes averages, shares and chart widths.
func NewPartnershipStats(stats []model.PartnershipStat) *PartnershipStats {
	customers, amount := model.StatsTotals(stats)
	out := &PartnershipStats{TotalCustomers: customers, TotalAmount: amount}

	var maxCount, maxAmount float64
	for _, s := range stats {
		maxCount = max(maxCount, float64(s.CustomerCount))
		maxAmount = max(maxAmount, s.TotalAmount)
	}

	for _, s := range stats {
		out.Rows = append(out.Rows, StatRow{
			Code:          s.Code,
			CustomerCount: s.CustomerCount,
			TotalAmount:   s.TotalAmount,
			Average:       s.AverageAmount(),
			SharePercent:  uiutil.SharePercent(s.TotalAmount, amount),
		})
		out.CountBars = append(out.CountBars, Bar{
			Label:   s.Code,
			Display: uiutil.FormatCount(s.CustomerCount),
			Width:   uiutil.BarWidth(float64(s.CustomerCount), maxCount),
		})
		out.RevenueBars = append(out.RevenueBars, Bar{
			Label:   s.Code,
			Display: uiutil.FormatMoney(s.TotalAmount),
			Width:   uiutil.BarWidth(s.TotalAmount, maxAmount),
		})
	}
	return out
}

// Tile is one dashboard shortcut.
type Tile struct {
	Path     string
	Icon     string
	Label    string
	Subtitle string
}
