package repository

import (
	"context"
	"log/slog"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/converter"
	"storefront-orders/internal/infra/db"
)

const insertOrder = `
INSERT INTO orders (
	id, code, order_date, status, payment_method, payment_status, payment_intent_id,
	customer_email, customer, items, subtotal, discount, promotion_code, shipping,
	total_amount, cancelled_at, tracking, version, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (code) DO NOTHING`

// The status and version guards make concurrent writers lose instead of
// overwriting each other.
const updateOrder = `
UPDATE orders
SET status = $4, payment_status = $5, cancelled_at = $6, tracking = $7,
	version = version + 1, updated_at = $8
WHERE id = $1 AND version = $2 AND status = $3`

type OrderRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOrderRepository(dbtx db.DBTX, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{db: dbtx, logger: logger}
}

// Create reports a taken order code as DUPLICATE_KEY without aborting the
// surrounding transaction, so the caller can retry with a fresh code.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	row, err := converter.OrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order", err)
	}

	tag, err := r.db.Exec(ctx, insertOrder,
		row.ID, row.Code, row.OrderDate, row.Status, row.PaymentMethod, row.PaymentStatus, row.PaymentIntentID,
		row.CustomerEmail, row.Customer, row.Items, row.Subtotal, row.Discount, row.PromotionCode, row.Shipping,
		row.TotalAmount, row.CancelledAt, row.Tracking, row.Version, row.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr(r.logger, "failed to create order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "order code already exists", nil)
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order, expectedStatus order.Status) error {
	row, err := converter.OrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order", err)
	}

	tag, err := r.db.Exec(ctx, updateOrder,
		row.ID, row.Version, expectedStatus.String(),
		row.Status, row.PaymentStatus, row.CancelledAt, row.Tracking, row.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr(r.logger, "failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindPreconditionFailed, "order was modified concurrently", nil)
	}
	return nil
}
