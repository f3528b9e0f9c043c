package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/mocks"
)

func TestPartnershipCodeService_Create_BlankSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPartnershipCodeAPI(ctrl)
	svc := NewPartnershipCodeService(api)

	// No EXPECT: any call to the API fails the test.
	for _, code := range []string{"", " ", "\t\n  "} {
		_, err := svc.Create(context.Background(), "tok", code)
		require.Error(t, err)
		assert.Equal(t, MsgCodeRequired, apperrors.UserMessage(err, ""))
	}

	_, err := svc.Create(context.Background(), "tok", strings.Repeat("x", 65))
	assert.True(t, apperrors.IsValidation(err))
}

func TestPartnershipCodeService_Create_Trims(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPartnershipCodeAPI(ctrl)
	svc := NewPartnershipCodeService(api)

	api.EXPECT().
		CreatePartnershipCode(gomock.Any(), "tok", model.CreatePartnershipCodeRequest{Code: "YAZ25"}).
		Return(&model.PartnershipCode{ID: 3, Code: "YAZ25", IsActive: true}, nil)

	got, err := svc.Create(context.Background(), "tok", "  YAZ25 ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestPartnershipCodeService_ListAndDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPartnershipCodeAPI(ctrl)
	svc := NewPartnershipCodeService(api)
	ctx := context.Background()

	api.EXPECT().ListPartnershipCodes(gomock.Any(), "tok", false).Return([]model.PartnershipCode{{ID: 1}, {ID: 2}}, nil)
	codes, err := svc.List(ctx, "tok")
	require.NoError(t, err)
	assert.Len(t, codes, 2)

	api.EXPECT().DeactivatePartnershipCode(gomock.Any(), "tok", int64(2)).Return(apperrors.NotFound("Kayıt bulunamadı."))
	err = svc.Deactivate(ctx, "tok", 2)
	assert.True(t, apperrors.IsNotFound(err))
}
