package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kampus/admin-console/internal/domain/model"
)

func TestNewPartnershipStats(t *testing.T) {
	got := NewPartnershipStats([]model.PartnershipStat{
		{Code: "YAZ", CustomerCount: 4, TotalAmount: 3000},
		{Code: "KIS", CustomerCount: 0, TotalAmount: 1000},
	})

	assert.Equal(t, 4, got.TotalCustomers)
	assert.InDelta(t, 4000, got.TotalAmount, 0.001)
	require.Len(t, got.Rows, 2)
	assert.InDelta(t, 750, got.Rows[0].Average, 0.001)
	assert.Zero(t, got.Rows[1].Average, "no customers means zero average")
	assert.Equal(t, 75, got.Rows[0].SharePercent)
	assert.Equal(t, 25, got.Rows[1].SharePercent)

	assert.InDelta(t, 100, got.CountBars[0].Width, 0.001)
	assert.Zero(t, got.CountBars[1].Width)
	assert.Equal(t, "₺3.000,00", got.RevenueBars[0].Display)
}

func TestNewPartnershipStats_Empty(t *testing.T) {
	got := NewPartnershipStats(nil)
	assert.Empty(t, got.Rows)
	assert.Zero(t, got.TotalCustomers)
}

func TestNewFinancials(t *testing.T) {
	got := NewFinancials(&model.FinancialSummary{
		Period: model.FinancialPeriod{Daily: 100, Weekly: 500, Monthly: 2000, Yearly: 8000},
		Total:  8000,
	})
	require.Len(t, got.Cards, 4)
	assert.Equal(t, "Günlük Ciro", got.Cards[0].Label)
	require.Len(t, got.Bars, 4)
	assert.InDelta(t, 100, got.Bars[3].Width, 0.001)
	assert.InDelta(t, 25, got.Bars[2].Width, 0.001)

	assert.Empty(t, NewFinancials(nil).Cards)
}
