package voucher

import (
	"dashboard/internal/entities"
)

func ToDomain(v *VoucherDB) *entities.Voucher {
	if v == nil {
		return nil
	}

	return &entities.Voucher{
		ID:            v.ID,
		Code:          v.Code,
		Type:          entities.VoucherType(v.Type),
		Value:         v.Value,
		MinOrderValue: v.MinOrderValue,
		Quantity:      v.Quantity,
		StartsAt:      v.StartsAt,
		ExpiresAt:     v.ExpiresAt,
		Active:        v.Active,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromDomainModify(voucherModify *entities.VoucherModify) *VoucherModifyDB {
	if voucherModify == nil {
		return nil
	}

	voucherDB := &VoucherModifyDB{
		ID:            voucherModify.ID,
		Code:          voucherModify.Code,
		Value:         voucherModify.Value,
		MinOrderValue: voucherModify.MinOrderValue,
		Quantity:      voucherModify.Quantity,
		StartsAt:      voucherModify.StartsAt,
		ExpiresAt:     voucherModify.ExpiresAt,
		Active:        voucherModify.Active,
	}
	if voucherModify.Type != nil {
		voucherType := voucherModify.Type.String()
		voucherDB.Type = &voucherType
	}

	return voucherDB
}

func ToDomainList(vouchersDB []VoucherDB) []entities.Voucher {
	if len(vouchersDB) == 0 {
		return []entities.Voucher{}
	}

	result := make([]entities.Voucher, len(vouchersDB))
	for i, voucherDB := range vouchersDB {
		result[i] = *ToDomain(&voucherDB)
	}
	return result
}
