package readstore

import (
	"context"
	"log/slog"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/converter"
	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	getOrderByID = `SELECT ` + converter.OrderColumns + ` FROM orders WHERE id = $1`

	listOrdersByEmail = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE lower(customer_email) = lower($1)
ORDER BY order_date DESC, code DESC`

	listOrders = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE ($1::text IS NULL OR status = $1)
ORDER BY order_date DESC, code DESC`
)

// OrderReadStore serves both the query side and in-transaction command reads.
type OrderReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOrderReadStore(dbtx db.DBTX, logger *slog.Logger) *OrderReadStore {
	return &OrderReadStore{db: dbtx, logger: logger}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := converter.ScanOrder(r.db.QueryRow(ctx, getOrderByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find order by ID", err)
	}
	return o, nil
}

func (r *OrderReadStore) FindByEmail(ctx context.Context, email string) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, listOrdersByEmail, email)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list orders by email", err)
	}
	return r.collect(rows)
}

func (r *OrderReadStore) FindAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	var filter *string
	if status != nil {
		s := status.String()
		filter = &s
	}
	rows, err := r.db.Query(ctx, listOrders, pgconv.StringPtrToPgtype(filter))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list orders", err)
	}
	return r.collect(rows)
}

func (r *OrderReadStore) collect(rows pgx.Rows) ([]*order.Order, error) {
	defer rows.Close()
	result := make([]*order.Order, 0)
	for rows.Next() {
		o, err := converter.ScanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan order", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate orders", err)
	}
	return result, nil
}
