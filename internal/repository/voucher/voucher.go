package voucher

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/internal/repository"
	"dashboard/internal/service/voucher"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const voucherColumns = `id, code, type, value, min_order_value, quantity,
	starts_at, expires_at, active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, voucherModifyEntity entities.VoucherModify) (int64, error) {
	voucherModifyModel := FromDomainModify(&voucherModifyEntity)
	query := `INSERT INTO vouchers (code, type, value, min_order_value, quantity, starts_at, expires_at, active)
		VALUES ($1, $2, $3, COALESCE($4, 0), $5, $6, $7, COALESCE($8, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		voucherModifyModel.Code,
		voucherModifyModel.Type,
		voucherModifyModel.Value,
		voucherModifyModel.MinOrderValue,
		voucherModifyModel.Quantity,
		voucherModifyModel.StartsAt,
		voucherModifyModel.ExpiresAt,
		voucherModifyModel.Active,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, voucher.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return 0, checkViolation(err)
		}
		return 0, fmt.Errorf("unexpected voucher repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, voucherModifyEntity entities.VoucherModify) (*entities.Voucher, error) {
	voucherModifyModel := FromDomainModify(&voucherModifyEntity)

	builder := qb.
		Update("vouchers")

	if voucherModifyModel.Code != nil {
		builder = builder.Set("code", voucherModifyModel.Code)
	}
	if voucherModifyModel.Type != nil {
		builder = builder.Set("type", voucherModifyModel.Type)
	}
	if voucherModifyModel.Value != nil {
		builder = builder.Set("value", voucherModifyModel.Value)
	}
	if voucherModifyModel.MinOrderValue != nil {
		builder = builder.Set("min_order_value", voucherModifyModel.MinOrderValue)
	}
	if voucherModifyModel.Quantity != nil {
		builder = builder.Set("quantity", voucherModifyModel.Quantity)
	}
	if voucherModifyModel.StartsAt != nil {
		builder = builder.Set("starts_at", voucherModifyModel.StartsAt)
	}
	if voucherModifyModel.ExpiresAt != nil {
		builder = builder.Set("expires_at", voucherModifyModel.ExpiresAt)
	}
	if voucherModifyModel.Active != nil {
		builder = builder.Set("active", voucherModifyModel.Active)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": voucherModifyModel.ID}).
		Suffix("RETURNING " + voucherColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository update error: %w", err)
	}

	var voucherModel VoucherDB
	err = scanVoucher(r.querier.QueryRow(ctx, query, args...), &voucherModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, voucher.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, checkViolation(err)
		}

		return nil, fmt.Errorf("unexpected voucher repository update error: %w", err)
	}

	return ToDomain(&voucherModel), nil
}

// checkViolation maps a vouchers table CHECK constraint to its domain error.
func checkViolation(err error) error {
	switch repository.ConstraintName(err) {
	case "vouchers_type_check":
		return voucher.ErrInvalidType
	case "vouchers_value_check", "vouchers_percent_value_check":
		return voucher.ErrInvalidValue
	case "vouchers_quantity_check":
		return voucher.ErrInvalidQuantity
	case "vouchers_period_check":
		return voucher.ErrInvalidPeriod
	default:
		return fmt.Errorf("unexpected voucher repository check violation: %w", err)
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Voucher, error) {
	query := `SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE id = $1`

	var voucherModel VoucherDB
	err := scanVoucher(r.querier.QueryRow(ctx, query, id), &voucherModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherNotFound
		}

		return nil, fmt.Errorf("unexpected voucher repository getbyid error: %w", err)
	}

	return ToDomain(&voucherModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Voucher, error) {
	query := `SELECT ` + voucherColumns + `
		FROM vouchers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository getall error: %w", err)
	}
	defer rows.Close()

	voucherModels := make([]VoucherDB, 0, 8)
	for rows.Next() {
		var voucherModel VoucherDB
		if err := scanVoucher(rows, &voucherModel); err != nil {
			return nil, fmt.Errorf("unexpected voucher repository getall error: %w", err)
		}
		voucherModels = append(voucherModels, voucherModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository getall error: %w", err)
	}

	return ToDomainList(voucherModels), nil
}

func scanVoucher(row pgx.Row, voucherModel *VoucherDB) error {
	return row.Scan(
		&voucherModel.ID,
		&voucherModel.Code,
		&voucherModel.Type,
		&voucherModel.Value,
		&voucherModel.MinOrderValue,
		&voucherModel.Quantity,
		&voucherModel.StartsAt,
		&voucherModel.ExpiresAt,
		&voucherModel.Active,
		&voucherModel.CreatedAt,
		&voucherModel.UpdatedAt,
	)
}
