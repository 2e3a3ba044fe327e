package readstore

import (
	"context"
	"log/slog"

	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/pkg/pgconv"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getIdempotencyKey = `
SELECT key, owner_email, status, request_hash, result_order_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND owner_email = $2`

type IdempotencyReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewIdempotencyReadStore(dbtx db.DBTX, logger *slog.Logger) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx, logger: logger}
}

// Get returns expired records too; the caller decides whether to reclaim them.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, ownerEmail string) (*shared.IdempotencyRecord, error) {
	var (
		rec      shared.IdempotencyRecord
		resultID pgtype.UUID
		expires  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencyKey, key, ownerEmail).
		Scan(&rec.Key, &rec.OwnerEmail, &rec.Status, &rec.RequestHash, &resultID, &expires)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "idempotency key not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get idempotency key", err)
	}
	rec.ResultOrderID = pgconv.UUIDPtrFromPgtype(resultID)
	rec.ExpiresAt = expires.Time
	return &rec, nil
}
