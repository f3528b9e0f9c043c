package ports

import (
	"context"

	"github.com/kampus/admin-console/internal/domain/model"
)

// Every API port takes the caller's bearer token explicitly.
// The token comes from the request's session; adapters never look it up themselves.

// CustomerAPI manages customer records.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, token string) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, token string, req model.CreateCustomerRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, token string, id int64) error
}

// PartnershipCodeAPI manages partnership referral codes.
type PartnershipCodeAPI interface {
	ListPartnershipCodes(ctx context.Context, token string, activeOnly bool) ([]model.PartnershipCode, error)
	CreatePartnershipCode(ctx context.Context, token string, req model.CreatePartnershipCodeRequest) (*model.PartnershipCode, error)
	DeactivatePartnershipCode(ctx context.Context, token string, id int64) error
}

// UserAPI manages staff accounts and their permission flags.
type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]model.ManagedUser, error)
	CreateUser(ctx context.Context, token string, req model.CreateUserRequest) (*model.ManagedUser, error)
	UpdateUser(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (*model.ManagedUser, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

// ReportAPI serves pre-aggregated reports.
type ReportAPI interface {
	GetFinancials(ctx context.Context, token string) (*model.FinancialSummary, error)
	GetPartnershipStats(ctx context.Context, token string) ([]model.PartnershipStat, error)
}
