package converter

import (
	"fmt"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const PromotionColumns = `id, code, name, discount_type, discount_value, min_purchase,
	start_date, end_date, is_active, usage_limit, usage_count, version, created_at, updated_at`

type PromotionRow struct {
	ID            uuid.UUID
	Code          string
	Name          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinPurchase   int64
	StartDate     pgtype.Timestamptz
	EndDate       pgtype.Timestamptz
	IsActive      bool
	UsageLimit    pgtype.Int4
	UsageCount    int32
	Version       int32
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func PromotionToRow(p *promotion.Promotion) PromotionRow {
	return PromotionRow{
		ID:            p.ID(),
		Code:          p.Code().String(),
		Name:          p.Name(),
		DiscountType:  p.Discount().Type().String(),
		DiscountValue: p.Discount().Value(),
		MinPurchase:   p.MinPurchase(),
		StartDate:     pgconv.TimeToPgtype(p.StartDate()),
		EndDate:       pgconv.TimeToPgtype(p.EndDate()),
		IsActive:      p.IsActive(),
		UsageLimit:    pgconv.Int32PtrToPgtype(p.UsageLimit()),
		UsageCount:    p.UsageCount(),
		Version:       p.Version(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ScanPromotion(row pgx.Row) (*promotion.Promotion, error) {
	var r PromotionRow
	err := row.Scan(
		&r.ID, &r.Code, &r.Name, &r.DiscountType, &r.DiscountValue, &r.MinPurchase,
		&r.StartDate, &r.EndDate, &r.IsActive, &r.UsageLimit, &r.UsageCount, &r.Version,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return RowToPromotion(r)
}

func RowToPromotion(r PromotionRow) (*promotion.Promotion, error) {
	discount, err := promotion.NewDiscount(promotion.DiscountType(r.DiscountType), r.DiscountValue)
	if err != nil {
		return nil, fmt.Errorf("stored promotion %s: %w", r.ID, err)
	}
	return promotion.ReconstructPromotion(
		r.ID,
		promotion.Code(r.Code),
		r.Name,
		discount,
		r.MinPurchase,
		r.StartDate.Time,
		r.EndDate.Time,
		r.IsActive,
		pgconv.Int32PtrFromPgtype(r.UsageLimit),
		r.UsageCount,
		r.Version,
		r.CreatedAt.Time,
		r.UpdatedAt.Time,
	), nil
}
