package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/ports"
	"golang.org/x/sync/errgroup"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers ports.CustomerAPI
	Codes     ports.PartnershipCodeAPI
}

// CustomerService orchestrates customer listing, creation and removal.
type CustomerService struct {
	customers ports.CustomerAPI
	codes     ports.PartnershipCodeAPI
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	if opts.Customers == nil {
		panic("CustomerAPI is required")
	}
	if opts.Codes == nil {
		panic("PartnershipCodeAPI is required")
	}
	return &CustomerService{customers: opts.Customers, codes: opts.Codes}
}

// CustomerOverview is what the customers page needs in one render.
type CustomerOverview struct {
	Customers []model.Customer
	// ActiveCodes are the codes offered in the create form.
	ActiveCodes []model.PartnershipCode
}

// Overview fetches customers and active partnership codes concurrently.
// Either failure fails the whole overview.
func (s *CustomerService) Overview(ctx context.Context, token string) (*CustomerOverview, error) {
	var out CustomerOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.customers.ListCustomers(gctx, token)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		out.Customers = list
		return nil
	})
	g.Go(func() error {
		codes, err := s.ActiveCodes(gctx, token)
		if err != nil {
			return err
		}
		out.ActiveCodes = codes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveCodes returns only active partnership codes.
func (s *CustomerService) ActiveCodes(ctx context.Context, token string) ([]model.PartnershipCode, error) {
	codes, err := s.codes.ListPartnershipCodes(ctx, token, true)
	if err != nil {
		return nil, fmt.Errorf("list active codes: %w", err)
	}
	// Older API builds ignore ?active=true.
	return model.ActiveCodes(codes), nil
}

// Create normalizes and validates req, then creates the customer.
func (s *CustomerService) Create(ctx context.Context, token string, req model.CreateCustomerRequest) (*model.Customer, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, customerValidationError(err)
	}
	c, err := s.customers.CreateCustomer(ctx, token, req)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Delete removes the customer with id.
func (s *CustomerService) Delete(ctx context.Context, token string, id int64) error {
	if id <= 0 {
		return apperrors.Validation("Geçersiz müşteri")
	}
	if err := s.customers.DeleteCustomer(ctx, token, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func customerValidationError(err error) error {
	switch {
	case errors.Is(err, model.ErrCustomerNameRequired):
		return apperrors.ValidationField("full_name", "İsim-Soyisim gereklidir")
	case errors.Is(err, model.ErrCustomerPhoneRequired):
		return apperrors.ValidationField("phone", "Telefon gereklidir")
	case errors.Is(err, model.ErrCustomerEmailInvalid):
		return apperrors.ValidationField("email", "Geçerli bir e-posta adresi girin")
	case errors.Is(err, model.ErrCampPriceNegative):
		return apperrors.ValidationField("prices", "Fiyat negatif olamaz")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
}
