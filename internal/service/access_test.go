package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/mocks"
)

func sampleUsers() []model.ManagedUser {
	return []model.ManagedUser{
		{ID: 1, Email: "gokhan@kampus.com", IsActive: true},
		{ID: 2, Email: "Emre@Kampus.com", IsActive: true},
		{ID: 3, Email: "staff@kampus.com", IsActive: true},
		{ID: 4, Email: "root@kampus.com", IsActive: true, IsProtected: true},
	}
}

func newAccessServiceWithMock(t *testing.T) (*AccessService, *mocks.MockUserAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserAPI(ctrl)
	svc := NewAccessService(AccessServiceOptions{Users: api, Protected: DefaultProtectedAccounts})
	return svc, api
}

func TestAccessService_List_MarksProtected(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	api.EXPECT().ListUsers(gomock.Any(), "tok").Return(sampleUsers(), nil)

	users, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)

	got := map[string]bool{}
	for _, u := range users {
		got[u.Email] = u.IsProtected
	}
	assert.Equal(t, map[string]bool{
		"gokhan@kampus.com": true,
		"Emre@Kampus.com":   true,
		"staff@kampus.com":  false,
		"root@kampus.com":   true,
	}, got)
}

func TestAccessService_Delete_RefusesProtected(t *testing.T) {
	for _, id := range []int64{1, 2, 4} {
		svc, api := newAccessServiceWithMock(t)
		api.EXPECT().ListUsers(gomock.Any(), "tok").Return(sampleUsers(), nil)

		err := svc.Delete(context.Background(), "tok", id)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUserProtected)
		assert.True(t, apperrors.IsForbidden(err))
	}
}

func TestAccessService_Delete_Forwards(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	gomock.InOrder(
		api.EXPECT().ListUsers(gomock.Any(), "tok").Return(sampleUsers(), nil),
		api.EXPECT().DeleteUser(gomock.Any(), "tok", int64(3)).Return(nil),
	)
	require.NoError(t, svc.Delete(context.Background(), "tok", 3))
}

func TestAccessService_Delete_UnknownUser(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	api.EXPECT().ListUsers(gomock.Any(), "tok").Return(sampleUsers(), nil)
	err := svc.Delete(context.Background(), "tok", 99)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAccessService_Create_Validation(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tok", model.CreateUserRequest{Email: "bad", Password: "secret1"})
	assert.Equal(t, "email", apperrors.GetField(err))

	_, err = svc.Create(ctx, "tok", model.CreateUserRequest{Email: "a@kampus.com"})
	assert.Equal(t, "password", apperrors.GetField(err))

	_, err = svc.Create(ctx, "tok", model.CreateUserRequest{Email: "a@kampus.com", Password: "123"})
	assert.Equal(t, "Şifre en az 6 karakter olmalıdır", apperrors.UserMessage(err, ""))

	req := model.CreateUserRequest{
		Email:           "new@kampus.com",
		Password:        "secret1",
		PermissionFlags: model.PermissionFlags{CanViewFinancials: true},
	}
	api.EXPECT().CreateUser(gomock.Any(), "tok", req).Return(&model.ManagedUser{ID: 10, Email: req.Email, CanViewFinancials: true}, nil)
	u, err := svc.Create(ctx, "tok", req)
	require.NoError(t, err)
	assert.True(t, u.CanViewFinancials)
}

func TestAccessService_Update(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "tok", 3, model.UpdateUserRequest{Password: "123"})
	assert.True(t, apperrors.IsValidation(err))

	inactive := false
	req := model.UpdateUserRequest{IsActive: &inactive}
	api.EXPECT().UpdateUser(gomock.Any(), "tok", int64(3), req).Return(&model.ManagedUser{ID: 3}, nil)
	_, err = svc.Update(ctx, "tok", 3, req)
	require.NoError(t, err)
}

func TestAccessService_Get(t *testing.T) {
	svc, api := newAccessServiceWithMock(t)
	api.EXPECT().ListUsers(gomock.Any(), "tok").Return(sampleUsers(), nil)
	u, err := svc.Get(context.Background(), "tok", 2)
	require.NoError(t, err)
	assert.True(t, u.IsProtected)
}
