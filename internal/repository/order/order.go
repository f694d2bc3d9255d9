package order

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/internal/repository"
	"dashboard/internal/service/order"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id::text, checkout_event_id, customer_name, email, phone, address, note,
	total_price, shipping_fee, discount, payment_method, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order with its items. It expects to run inside a
// transaction opened by the caller.
func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (string, error) {
	id := uuid.NewString()

	query := `INSERT INTO orders (id, checkout_event_id, customer_name, email, phone, address, note,
			total_price, shipping_fee, discount, payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

	_, err := r.querier.Exec(
		ctx,
		query,
		id,
		orderCreate.CheckoutEventID,
		orderCreate.CustomerName,
		orderCreate.Email,
		orderCreate.Phone,
		orderCreate.Address,
		orderCreate.Note,
		orderCreate.TotalPrice,
		orderCreate.ShippingFee,
		orderCreate.Discount,
		orderCreate.PaymentMethod.String(),
		entities.DefaultOrderStatus.String(),
		orderCreate.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", order.ErrOrderAlreadyExists
		}
		return "", fmt.Errorf("unexpected order repository create error: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range orderCreate.Items {
		batch.Queue(`INSERT INTO order_items (order_id, product_id, name, image, size, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, item.ProductID, item.Name, item.Image, item.Size, item.Quantity, item.UnitPrice,
		)
	}

	err = r.querier.SendBatch(ctx, batch).Close()
	if err != nil {
		return "", fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, order.ErrOrderNotFound
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	ids := []string{orderModel.ID}
	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	history, err := r.getHistory(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items, history), nil
}

// GetAll returns the newest orders first.
func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, filter.Limit)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	if len(orderModels) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orderModels))
	for i, orderModel := range orderModels {
		ids[i] = orderModel.ID
	}

	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	history, err := r.getHistory(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomainList(orderModels, items, history), nil
}

// Update overwrites contact fields only.
func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) error {
	orderModifyModel := FromDomainModify(&orderModify)
	if orderModifyModel.ID == nil {
		return order.ErrInvalidOrderID
	}
	if _, err := uuid.Parse(*orderModifyModel.ID); err != nil {
		return order.ErrOrderNotFound
	}

	builder := qb.
		Update("orders")

	if orderModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", orderModifyModel.CustomerName)
	}
	if orderModifyModel.Email != nil {
		builder = builder.Set("email", orderModifyModel.Email)
	}
	if orderModifyModel.Phone != nil {
		builder = builder.Set("phone", orderModifyModel.Phone)
	}
	if orderModifyModel.Address != nil {
		builder = builder.Set("address", orderModifyModel.Address)
	}
	if orderModifyModel.Note != nil {
		builder = builder.Set("note", orderModifyModel.Note)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyModel.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// UpdateStatus is the compare-and-swap on orders.status. The history row is
// only written when the swap succeeded, so both land in the caller's
// transaction or neither does.
func (r *Repository) UpdateStatus(ctx context.Context, change entities.OrderStatusChange) error {
	if _, err := uuid.Parse(change.OrderID); err != nil {
		return order.ErrOrderNotFound
	}

	query := `UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2`

	tag, err := r.querier.Exec(
		ctx,
		query,
		change.OrderID,
		change.ExpectedStatus.String(),
		change.Entry.Status.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, change.OrderID).
			Scan(&exists)
		if err != nil {
			return fmt.Errorf("unexpected order repository update status error: %w", err)
		}
		if !exists {
			return order.ErrOrderNotFound
		}
		return order.ErrConflict
	}

	_, err = r.querier.Exec(
		ctx,
		`INSERT INTO order_status_history (order_id, status, changed_at) VALUES ($1, $2, $3)`,
		change.OrderID,
		change.Entry.Status.String(),
		change.Entry.ChangedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository append history error: %w", err)
	}

	return nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) ([]OrderItemDB, error) {
	query, args, err := qb.
		Select("order_id::text", "product_id", "name", "image", "size", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, len(orderIDs))
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Image,
			&item.Size,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}

	return items, nil
}

func (r *Repository) getHistory(ctx context.Context, orderIDs []string) ([]StatusHistoryDB, error) {
	query, args, err := qb.
		Select("order_id::text", "status", "changed_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository history error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository history error: %w", err)
	}
	defer rows.Close()

	history := make([]StatusHistoryDB, 0, len(orderIDs))
	for rows.Next() {
		var entry StatusHistoryDB
		if err := rows.Scan(&entry.OrderID, &entry.Status, &entry.ChangedAt); err != nil {
			return nil, fmt.Errorf("unexpected order repository history error: %w", err)
		}
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository history error: %w", err)
	}

	return history, nil
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.CheckoutEventID,
		&orderModel.CustomerName,
		&orderModel.Email,
		&orderModel.Phone,
		&orderModel.Address,
		&orderModel.Note,
		&orderModel.TotalPrice,
		&orderModel.ShippingFee,
		&orderModel.Discount,
		&orderModel.PaymentMethod,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}
