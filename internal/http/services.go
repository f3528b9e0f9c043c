package httpx

import (
	"context"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/domain/model"
	"github.com/kampus/admin-console/internal/service"
)

// AuthServiceInterface defines the auth operations the handlers and guard need.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// CustomersService is a minimal interface for the Customers view.
type CustomersService interface {
	Overview(ctx context.Context, token string) (*service.CustomerOverview, error)
	ActiveCodes(ctx context.Context, token string) ([]model.PartnershipCode, error)
	Create(ctx context.Context, token string, req model.CreateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, token string, id int64) error
}

// PartnershipCodesService is a minimal interface for the PartnershipCodes view.
type PartnershipCodesService interface {
	List(ctx context.Context, token string) ([]model.PartnershipCode, error)
	Create(ctx context.Context, token, code string) (*model.PartnershipCode, error)
	Deactivate(ctx context.Context, token string, id int64) error
}

// AccessService is a minimal interface for the AccessManagement view.
type AccessService interface {
	List(ctx context.Context, token string) ([]model.ManagedUser, error)
	Get(ctx context.Context, token string, id int64) (*model.ManagedUser, error)
	Create(ctx context.Context, token string, req model.CreateUserRequest) (*model.ManagedUser, error)
	Update(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (*model.ManagedUser, error)
	Delete(ctx context.Context, token string, id int64) error
}

// ReportsService is a minimal interface for the report views.
type ReportsService interface {
	Financials(ctx context.Context, token string) (*model.FinancialSummary, error)
	PartnershipStats(ctx context.Context, token string) ([]model.PartnershipStat, error)
	Dashboard(ctx context.Context, sess *domainauth.Session) *service.Dashboard
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthServiceInterface    = (*service.AuthService)(nil)
	_ CustomersService        = (*service.CustomerService)(nil)
	_ PartnershipCodesService = (*service.PartnershipCodeService)(nil)
	_ AccessService           = (*service.AccessService)(nil)
	_ ReportsService          = (*service.ReportService)(nil)
)
