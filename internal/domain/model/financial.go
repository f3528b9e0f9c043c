//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import "time"

// FinancialPeriod holds revenue bucketed by period.
type FinancialPeriod struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Max returns the largest period value.
func (p FinancialPeriod) Max() float64 {
	m := p.Daily
	for _, v := range []float64{p.Weekly, p.Monthly, p.Yearly} {
		if v > m {
			m = v
		}
	}
	return m
}

// FinancialDetail is one recorded payment.
type FinancialDetail struct {
	CustomerID      int64     `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transaction_date"`
}

// FinancialSummary is the pre-aggregated revenue report served by the API.
type FinancialSummary struct {
	Period  FinancialPeriod   `json:"period"`
	Details []FinancialDetail `json:"details"`
	Total   float64           `json:"total"`
}
