package repository

import (
	"context"
	"log/slog"
	"time"

	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/pkg/pgconv"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, owner_email, status, request_hash, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key, owner_email) DO NOTHING`

	completeIdempotencyKey = `
UPDATE idempotency_keys SET status = $3, result_order_id = $4
WHERE key = $1 AND owner_email = $2`

	claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET status = $3, request_hash = $4, result_order_id = NULL, expires_at = $6
WHERE key = $1 AND owner_email = $2 AND expires_at <= $5`

	releaseIdempotencyKey = `
DELETE FROM idempotency_keys WHERE key = $1 AND owner_email = $2 AND status = $3`
)

type IdempotencyRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewIdempotencyRepository(dbtx db.DBTX, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx, logger: logger}
}

// TryInsert reports false when the key is already held by the owner.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, ownerEmail, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencyKey,
		key, ownerEmail, shared.IdempotencyProcessing, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, wrapWriteErr(r.logger, "failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key uuid.UUID, ownerEmail string, orderID uuid.UUID) error {
	_, err := r.db.Exec(ctx, completeIdempotencyKey, key, ownerEmail, shared.IdempotencyCompleted, orderID)
	if err != nil {
		return wrapWriteErr(r.logger, "failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key uuid.UUID, ownerEmail, requestHash string, now, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, claimExpiredIdempotencyKey,
		key, ownerEmail, shared.IdempotencyProcessing, requestHash,
		pgconv.TimeToPgtype(now), pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, wrapWriteErr(r.logger, "failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, key uuid.UUID, ownerEmail string) error {
	_, err := r.db.Exec(ctx, releaseIdempotencyKey, key, ownerEmail, shared.IdempotencyProcessing)
	if err != nil {
		return wrapWriteErr(r.logger, "failed to release idempotency key", err)
	}
	return nil
}
