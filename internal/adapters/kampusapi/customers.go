package kampusapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/kampus/admin-console/internal/domain/model"
)

// customerWire is the API's customer shape: camps and prices travel as
// parallel arrays paired by index.
type customerWire struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ClassLevel      *string   `json:"class_level"`
	Camps           []string  `json:"camps"`
	Prices          []float64 `json:"prices"`
	PartnershipCode *string   `json:"partnership_code"`
	PreviousYKSRank *int      `json:"previous_yks_rank"`
	City            *string   `json:"city"`
	IsPaid          bool      `json:"is_paid"`
	IsDeleted       bool      `json:"is_deleted"`
	CreatedAt       time.Time `json:"created_at"`
}

type customerCreateWire struct {
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ClassLevel      *string   `json:"class_level"`
	Camps           []string  `json:"camps"`
	Prices          []float64 `json:"prices"`
	PartnershipCode *string   `json:"partnership_code"`
	PreviousYKSRank *int      `json:"previous_yks_rank"`
	City            *string   `json:"city"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// joinCamps folds parallel arrays into records. A missing price is zero.
func joinCamps(names []string, prices []float64) []model.CampLine {
	lines := make([]model.CampLine, 0, len(names))
	for i, name := range names {
		var price float64
		if i < len(prices) {
			price = prices[i]
		}
		lines = append(lines, model.CampLine{Name: name, Price: price})
	}
	return lines
}

// splitCamps is the inverse of joinCamps.
func splitCamps(lines []model.CampLine) ([]string, []float64) {
	names := make([]string, 0, len(lines))
	prices := make([]float64, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.Name)
		prices = append(prices, l.Price)
	}
	return names, prices
}

func (w customerWire) toModel() model.Customer {
	return model.Customer{
		ID:              w.ID,
		FullName:        w.FullName,
		Phone:           w.Phone,
		Email:           w.Email,
		ClassLevel:      deref(w.ClassLevel),
		Camps:           joinCamps(w.Camps, w.Prices),
		PartnershipCode: deref(w.PartnershipCode),
		PreviousYKSRank: w.PreviousYKSRank,
		City:            deref(w.City),
		IsPaid:          w.IsPaid,
		IsDeleted:       w.IsDeleted,
		CreatedAt:       w.CreatedAt,
	}
}

// ListCustomers returns all customers.
func (c *Client) ListCustomers(ctx context.Context, token string) ([]model.Customer, error) {
	var wires []customerWire
	if err := c.do(ctx, call{method: http.MethodGet, path: "/customers", token: token, out: &wires}); err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toModel())
	}
	return out, nil
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, token string, req model.CreateCustomerRequest) (*model.Customer, error) {
	names, prices := splitCamps(req.Camps)
	payload := customerCreateWire{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		ClassLevel:      nullable(req.ClassLevel),
		Camps:           names,
		Prices:          prices,
		PartnershipCode: nullable(req.PartnershipCode),
		PreviousYKSRank: req.PreviousYKSRank,
		City:            nullable(req.City),
	}
	var w customerWire
	if err := c.do(ctx, call{method: http.MethodPost, path: "/customers", token: token, body: payload, out: &w}); err != nil {
		return nil, err
	}
	m := w.toModel()
	return &m, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/customers/" + strconv.FormatInt(id, 10),
		token:  token,
	})
}
