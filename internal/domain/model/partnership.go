//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxPartnershipCodeLen = 64

var (
	ErrPartnershipCodeRequired = errors.New("partnership code is required")
	ErrPartnershipCodeTooLong  = errors.New("partnership code cannot exceed 64 characters")
)

// PartnershipCode is a referral code customers can be attributed to.
// Codes are soft-deactivated and never removed.
type PartnershipCode struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePartnershipCodeRequest contains the code to create.
type CreatePartnershipCodeRequest struct {
	Code string `json:"code"`
}

// Validate trims the code and rejects blank or oversized values.
func (r *CreatePartnershipCodeRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return ErrPartnershipCodeRequired
	}
	if utf8.RuneCountInString(r.Code) > maxPartnershipCodeLen {
		return ErrPartnershipCodeTooLong
	}
	return nil
}

// ActiveCodes returns the active codes from codes, preserving order.
func ActiveCodes(codes []PartnershipCode) []PartnershipCode {
	out := make([]PartnershipCode, 0, len(codes))
	for _, c := range codes {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// PartnershipStat is the per-code aggregate reported by the API.
type PartnershipStat struct {
	Code          string  `json:"code"`
	CustomerCount int     `json:"customer_count"`
	TotalAmount   float64 `json:"total_amount"`
}

// AverageAmount returns revenue per customer, or 0 when the code has no customers.
func (s PartnershipStat) AverageAmount() float64 {
	if s.CustomerCount <= 0 {
		return 0
	}
	return s.TotalAmount / float64(s.CustomerCount)
}

// StatsTotals sums customer counts and revenue across stats.
func StatsTotals(stats []PartnershipStat) (customers int, amount float64) {
	for _, s := range stats {
		customers += s.CustomerCount
		amount += s.TotalAmount
	}
	return customers, amount
}
