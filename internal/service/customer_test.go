package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/mocks"
)

func newCustomerServiceWithMocks(t *testing.T) (*CustomerService, *mocks.MockCustomerAPI, *mocks.MockPartnershipCodeAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomerAPI(ctrl)
	codes := mocks.NewMockPartnershipCodeAPI(ctrl)
	return NewCustomerService(CustomerServiceOptions{Customers: customers, Codes: codes}), customers, codes
}

func TestCustomerService_Overview(t *testing.T) {
	svc, customers, codes := newCustomerServiceWithMocks(t)
	ctx := context.Background()

	customers.EXPECT().ListCustomers(gomock.Any(), "tok").Return([]model.Customer{{ID: 1, FullName: "Ali"}}, nil)
	codes.EXPECT().ListPartnershipCodes(gomock.Any(), "tok", true).Return([]model.PartnershipCode{
		{ID: 1, Code: "A", IsActive: true},
		{ID: 2, Code: "B", IsActive: false},
	}, nil)

	got, err := svc.Overview(ctx, "tok")
	require.NoError(t, err)
	assert.Len(t, got.Customers, 1)
	require.Len(t, got.ActiveCodes, 1)
	assert.Equal(t, "A", got.ActiveCodes[0].Code)
}

func TestCustomerService_Overview_Error(t *testing.T) {
	svc, customers, codes := newCustomerServiceWithMocks(t)

	customers.EXPECT().ListCustomers(gomock.Any(), "tok").Return(nil, apperrors.Unauthorized("expired"))
	codes.EXPECT().ListPartnershipCodes(gomock.Any(), "tok", true).Return(nil, nil).AnyTimes()

	_, err := svc.Overview(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestCustomerService_Create_NormalizesBeforeSending(t *testing.T) {
	svc, customers, _ := newCustomerServiceWithMocks(t)

	customers.EXPECT().
		CreateCustomer(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req model.CreateCustomerRequest) (*model.Customer, error) {
			assert.Equal(t, "Ayşe", req.FullName)
			assert.Equal(t, []model.CampLine{{Name: "Fizik", Price: 10}}, req.Camps)
			return &model.Customer{ID: 9, FullName: req.FullName, Camps: req.Camps}, nil
		})

	c, err := svc.Create(context.Background(), "tok", model.CreateCustomerRequest{
		FullName: " Ayşe ",
		Phone:    "555",
		Email:    "a@b.co",
		Camps:    []model.CampLine{{Name: "Fizik", Price: 10}, {Name: " ", Price: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
}

func TestCustomerService_Create_ValidationNeverCallsAPI(t *testing.T) {
	svc, _, _ := newCustomerServiceWithMocks(t)

	tests := []struct {
		name  string
		req   model.CreateCustomerRequest
		field string
	}{
		{"name", model.CreateCustomerRequest{Phone: "1", Email: "a@b.co"}, "full_name"},
		{"phone", model.CreateCustomerRequest{FullName: "x", Email: "a@b.co"}, "phone"},
		{"email", model.CreateCustomerRequest{FullName: "x", Phone: "1", Email: "nope"}, "email"},
		{"price", model.CreateCustomerRequest{FullName: "x", Phone: "1", Email: "a@b.co", Camps: []model.CampLine{{Name: "A", Price: -5}}}, "prices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "tok", tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	svc, customers, _ := newCustomerServiceWithMocks(t)
	ctx := context.Background()

	customers.EXPECT().DeleteCustomer(gomock.Any(), "tok", int64(4)).Return(nil)
	require.NoError(t, svc.Delete(ctx, "tok", 4))

	customers.EXPECT().DeleteCustomer(gomock.Any(), "tok", int64(5)).Return(errors.New("boom"))
	err := svc.Delete(ctx, "tok", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete customer")

	assert.True(t, apperrors.IsValidation(svc.Delete(ctx, "tok", 0)))
}
