package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/ports"
)

// MsgCodeRequired is shown when a blank partnership code is submitted.
const MsgCodeRequired = "Lütfen bir kod girin"

// PartnershipCodeService manages partnership codes.
type PartnershipCodeService struct {
	codes ports.PartnershipCodeAPI
}

// NewPartnershipCodeService constructs a new PartnershipCodeService.
func NewPartnershipCodeService(codes ports.PartnershipCodeAPI) *PartnershipCodeService {
	if codes == nil {
		panic("PartnershipCodeAPI is required")
	}
	return &PartnershipCodeService{codes: codes}
}

// List returns every code, active or not.
func (s *PartnershipCodeService) List(ctx context.Context, token string) ([]model.PartnershipCode, error) {
	codes, err := s.codes.ListPartnershipCodes(ctx, token, false)
	if err != nil {
		return nil, fmt.Errorf("list partnership codes: %w", err)
	}
	return codes, nil
}

// Create validates and creates a code. A blank code never reaches the API.
func (s *PartnershipCodeService) Create(ctx context.Context, token, code string) (*model.PartnershipCode, error) {
	req := model.CreatePartnershipCodeRequest{Code: code}
	if err := req.Validate(); err != nil {
		if errors.Is(err, model.ErrPartnershipCodeTooLong) {
			return nil, apperrors.ValidationField("code", "Kod en fazla 64 karakter olabilir")
		}
		return nil, apperrors.ValidationField("code", MsgCodeRequired)
	}
	created, err := s.codes.CreatePartnershipCode(ctx, token, req)
	if err != nil {
		return nil, fmt.Errorf("create partnership code: %w", err)
	}
	return created, nil
}

// Deactivate soft-deletes a code.
func (s *PartnershipCodeService) Deactivate(ctx context.Context, token string, id int64) error {
	if id <= 0 {
		return apperrors.Validation("Geçersiz kod")
	}
	if err := s.codes.DeactivatePartnershipCode(ctx, token, id); err != nil {
		return fmt.Errorf("deactivate partnership code: %w", err)
	}
	return nil
}
