package repository

import (
	"context"
	"log/slog"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/converter"
	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertPromotion = `
INSERT INTO promotions (
	id, code, name, discount_type, discount_value, min_purchase, start_date, end_date,
	is_active, usage_limit, usage_count, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// A single statement so two redemptions of the last use cannot both pass.
const incrementPromotionUsage = `
UPDATE promotions
SET usage_count = usage_count + 1
WHERE id = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)
RETURNING usage_count`

const updatePromotionActive = `
UPDATE promotions
SET is_active = $3, version = version + 1, updated_at = $4
WHERE id = $1 AND version = $2`

type PromotionRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPromotionRepository(dbtx db.DBTX, logger *slog.Logger) *PromotionRepository {
	return &PromotionRepository{db: dbtx, logger: logger}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	row := converter.PromotionToRow(p)
	_, err := r.db.Exec(ctx, insertPromotion,
		row.ID, row.Code, row.Name, row.DiscountType, row.DiscountValue, row.MinPurchase,
		row.StartDate, row.EndDate, row.IsActive, row.UsageLimit, row.UsageCount, row.Version,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr(r.logger, "failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx, incrementPromotionUsage, id).Scan(&count)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, r.classifyMiss(ctx, id)
		}
		return 0, wrapWriteErr(r.logger, "failed to increment promotion usage", err)
	}
	return count, nil
}

func (r *PromotionRepository) UpdateActive(ctx context.Context, p *promotion.Promotion) error {
	tag, err := r.db.Exec(ctx, updatePromotionActive,
		p.ID(), p.Version(), p.IsActive(), pgconv.TimeToPgtype(p.UpdatedAt()))
	if err != nil {
		return wrapWriteErr(r.logger, "failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindPreconditionFailed, "promotion was modified concurrently", nil)
	}
	return nil
}

// classifyMiss tells a missing promotion apart from an exhausted one.
func (r *PromotionRepository) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM promotions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return wrapWriteErr(r.logger, "failed to look up promotion", err)
	}
	if !exists {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "promotion not found", nil)
	}
	return infra.WrapRepoErr(r.logger, infra.KindPreconditionFailed, "promotion usage limit reached", nil)
}
