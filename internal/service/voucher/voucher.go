package voucher

import (
	"context"
	"fmt"

	"dashboard/internal/entities"
)

type Voucher struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Voucher {
	return &Voucher{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Voucher) CreateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (int64, error) {
	if voucherModify.Code == nil ||
		voucherModify.Type == nil ||
		voucherModify.Value == nil ||
		voucherModify.Quantity == nil ||
		voucherModify.StartsAt == nil ||
		voucherModify.ExpiresAt == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidCode(*voucherModify.Code) {
		return 0, ErrInvalidCode
	}
	if !isValidType(*voucherModify.Type) {
		return 0, ErrInvalidType
	}
	if !isValidValue(*voucherModify.Type, *voucherModify.Value) {
		return 0, ErrInvalidValue
	}
	if voucherModify.MinOrderValue != nil && *voucherModify.MinOrderValue < 0 {
		return 0, ErrInvalidValue
	}
	if *voucherModify.Quantity < 0 {
		return 0, ErrInvalidQuantity
	}
	if !isValidPeriod(*voucherModify.StartsAt, *voucherModify.ExpiresAt) {
		return 0, ErrInvalidPeriod
	}

	id, err := s.repository.Create(ctx, voucherModify)
	if err != nil {
		return 0, fmt.Errorf("create voucher: %w", err)
	}

	return id, nil
}

// UpdateVoucher overwrites the provided fields. Type/value and the validity
// period are checked against the stored voucher when only one side changes.
func (s *Voucher) UpdateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error) {
	if voucherModify.ID == nil || *voucherModify.ID <= 0 {
		return nil, ErrInvalidVoucherID
	}

	if voucherModify.Code == nil &&
		voucherModify.Type == nil &&
		voucherModify.Value == nil &&
		voucherModify.MinOrderValue == nil &&
		voucherModify.Quantity == nil &&
		voucherModify.StartsAt == nil &&
		voucherModify.ExpiresAt == nil &&
		voucherModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if voucherModify.Code != nil && !isValidCode(*voucherModify.Code) {
		return nil, ErrInvalidCode
	}
	if voucherModify.Type != nil && !isValidType(*voucherModify.Type) {
		return nil, ErrInvalidType
	}
	if voucherModify.MinOrderValue != nil && *voucherModify.MinOrderValue < 0 {
		return nil, ErrInvalidValue
	}
	if voucherModify.Quantity != nil && *voucherModify.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	needsCurrent := voucherModify.Type != nil ||
		voucherModify.Value != nil ||
		voucherModify.StartsAt != nil ||
		voucherModify.ExpiresAt != nil

	var voucher *entities.Voucher
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if needsCurrent {
			current, err := s.repository.GetByID(ctx, *voucherModify.ID)
			if err != nil {
				return err
			}
			if err := validateMerged(*current, voucherModify); err != nil {
				return err
			}
		}

		var err error
		voucher, err = s.repository.Update(ctx, voucherModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update voucher: %w", err)
	}

	return voucher, nil
}

func (s *Voucher) GetVoucher(ctx context.Context, id int64) (*entities.Voucher, error) {
	if id <= 0 {
		return nil, ErrInvalidVoucherID
	}

	voucher, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	return voucher, nil
}

func (s *Voucher) GetVouchers(ctx context.Context) ([]entities.Voucher, error) {
	vouchers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vouchers: %w", err)
	}

	return vouchers, nil
}

func validateMerged(current entities.Voucher, voucherModify entities.VoucherModify) error {
	if voucherModify.Type != nil {
		current.Type = *voucherModify.Type
	}
	if voucherModify.Value != nil {
		current.Value = *voucherModify.Value
	}
	if voucherModify.StartsAt != nil {
		current.StartsAt = *voucherModify.StartsAt
	}
	if voucherModify.ExpiresAt != nil {
		current.ExpiresAt = *voucherModify.ExpiresAt
	}

	if !isValidValue(current.Type, current.Value) {
		return ErrInvalidValue
	}
	if !isValidPeriod(current.StartsAt, current.ExpiresAt) {
		return ErrInvalidPeriod
	}
	return nil
}
