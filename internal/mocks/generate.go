// Package mocks provides mock implementations of the console's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the API and session interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockCustomerAPI(ctrl)
//	api.EXPECT().ListCustomers(gomock.Any(), "token").Return(customers, nil)
package mocks

// Generate mock for CustomerAPI interface from internal/ports package.
// This creates MockCustomerAPI with methods: ListCustomers, CreateCustomer, DeleteCustomer
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=customer_api_mock.go github.com/kampus/admin-console/internal/ports CustomerAPI

// Generate mock for PartnershipCodeAPI interface from internal/ports package.
// This creates MockPartnershipCodeAPI with methods: ListPartnershipCodes, CreatePartnershipCode, DeactivatePartnershipCode
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=partnership_code_api_mock.go github.com/kampus/admin-console/internal/ports PartnershipCodeAPI

// Generate mock for UserAPI interface from internal/ports package.
// This creates MockUserAPI with methods: ListUsers, CreateUser, UpdateUser, DeleteUser
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_api_mock.go github.com/kampus/admin-console/internal/ports UserAPI

// Generate mock for ReportAPI interface from internal/ports package.
// This creates MockReportAPI with methods: GetFinancials, GetPartnershipStats
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=report_api_mock.go github.com/kampus/admin-console/internal/ports ReportAPI

// Generate mocks for Authenticator and SessionStore from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_mock.go github.com/kampus/admin-console/internal/ports Authenticator,SessionStore
