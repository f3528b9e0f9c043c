//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxCustomerNameLen = 200
	maxCampNameLen     = 120
)

var (
	ErrCustomerNameRequired  = errors.New("full name is required")
	ErrCustomerPhoneRequired = errors.New("phone is required")
	ErrCustomerEmailInvalid  = errors.New("email is invalid")
	ErrCampPriceNegative     = errors.New("camp price cannot be negative")
)

// CampLine is one camp a customer enrolled in together with its price.
type CampLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Customer is the API's customer record.
// Camps is the ordered list of enrolled camps; the API transmits it as two
// parallel arrays which the API client folds into CampLine records.
type Customer struct {
	ID              int64      `json:"id"`
	FullName        string     `json:"full_name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	ClassLevel      string     `json:"class_level,omitempty"`
	Camps           []CampLine `json:"camps"`
	PartnershipCode string     `json:"partnership_code,omitempty"`
	PreviousYKSRank *int       `json:"previous_yks_rank,omitempty"`
	City            string     `json:"city,omitempty"`
	IsPaid          bool       `json:"is_paid"`
	IsDeleted       bool       `json:"is_deleted"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Total returns the sum of all camp prices.
func (c *Customer) Total() float64 {
	var sum float64
	for _, l := range c.Camps {
		sum += l.Price
	}
	return sum
}

// CampNames returns the camp names in order.
func (c *Customer) CampNames() []string {
	out := make([]string, 0, len(c.Camps))
	for _, l := range c.Camps {
		out = append(out, l.Name)
	}
	return out
}

// CreateCustomerRequest contains fields to create a customer.
type CreateCustomerRequest struct {
	FullName        string
	Phone           string
	Email           string
	ClassLevel      string
	Camps           []CampLine
	PartnershipCode string
	PreviousYKSRank *int
	City            string
}

// Normalize trims free-text fields and drops camp lines without a name.
func (r *CreateCustomerRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.ClassLevel = strings.TrimSpace(r.ClassLevel)
	r.PartnershipCode = strings.TrimSpace(r.PartnershipCode)
	r.City = strings.TrimSpace(r.City)

	lines := make([]CampLine, 0, len(r.Camps))
	for _, l := range r.Camps {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		lines = append(lines, CampLine{Name: name, Price: l.Price})
	}
	r.Camps = lines
}

// Validate checks required fields. Call Normalize first.
func (r *CreateCustomerRequest) Validate() error {
	if r.FullName == "" || utf8.RuneCountInString(r.FullName) > maxCustomerNameLen {
		return ErrCustomerNameRequired
	}
	if r.Phone == "" {
		return ErrCustomerPhoneRequired
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrCustomerEmailInvalid
	}
	for _, l := range r.Camps {
		if l.Price < 0 {
			return ErrCampPriceNegative
		}
	}
	return nil
}

// AddCampLine appends a camp with a zero price.
// A blank name leaves the lines unchanged. The input slice is never modified.
func AddCampLine(lines []CampLine, name string) []CampLine {
	name = strings.TrimSpace(name)
	out := make([]CampLine, len(lines), len(lines)+1)
	copy(out, lines)
	if name == "" || utf8.RuneCountInString(name) > maxCampNameLen {
		return out
	}
	return append(out, CampLine{Name: name})
}

// RemoveCampLine removes the line at index i, keeping the order of the rest.
// An out-of-range index leaves the lines unchanged. The input slice is never modified.
func RemoveCampLine(lines []CampLine, i int) []CampLine {
	out := make([]CampLine, 0, len(lines))
	for j, l := range lines {
		if j == i {
			continue
		}
		out = append(out, l)
	}
	return out
}
