//go:build unit || e2e

package builder

import (
	"time"

	"storefront-orders/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID           uuid.UUID
	Code         string
	Name         string
	DiscountType promotion.DiscountType
	Value        decimal.Decimal
	MinPurchase  int64
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
	UsageLimit   *int32
	UsageCount   int32
	Version      int32
	CreatedAt    time.Time
}

// NewPromotionBuilder returns an active SAVE10 promotion valid for March 2026.
func NewPromotionBuilder() *PromotionBuilder {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &PromotionBuilder{
		ID:           uuid.New(),
		Code:         "SAVE10",
		Name:         "Spring sale",
		DiscountType: promotion.DiscountPercentage,
		Value:        decimal.NewFromInt(10),
		MinPurchase:  0,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 30),
		IsActive:     true,
		Version:      1,
		CreatedAt:    start.Add(-24 * time.Hour),
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	b.Code = code
	return b
}

func (b *PromotionBuilder) WithFixed(amount int64) *PromotionBuilder {
	b.DiscountType = promotion.DiscountFixed
	b.Value = decimal.NewFromInt(amount)
	return b
}

func (b *PromotionBuilder) WithPercentage(value decimal.Decimal) *PromotionBuilder {
	b.DiscountType = promotion.DiscountPercentage
	b.Value = value
	return b
}

func (b *PromotionBuilder) WithUsage(count int32, limit *int32) *PromotionBuilder {
	b.UsageCount = count
	b.UsageLimit = limit
	return b
}

func (b *PromotionBuilder) WithMinPurchase(min int64) *PromotionBuilder {
	b.MinPurchase = min
	return b
}

func (b *PromotionBuilder) Inactive() *PromotionBuilder {
	b.IsActive = false
	return b
}

// Build reconstructs a stored promotion; it skips creation-time validation.
func (b *PromotionBuilder) Build() *promotion.Promotion {
	code := promotion.Code(promotion.NormalizeCode(b.Code))
	discount, err := promotion.NewDiscount(b.DiscountType, b.Value)
	if err != nil {
		panic("builder: invalid discount: " + err.Error())
	}
	return promotion.ReconstructPromotion(
		b.ID, code, b.Name, discount, b.MinPurchase,
		b.StartDate, b.EndDate, b.IsActive,
		b.UsageLimit, b.UsageCount, b.Version,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *PromotionBuilder) NewParams() promotion.NewParams {
	discount, _ := promotion.NewDiscount(b.DiscountType, b.Value)
	return promotion.NewParams{
		Code:        b.Code,
		Name:        b.Name,
		Discount:    discount,
		MinPurchase: b.MinPurchase,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		IsActive:    b.IsActive,
		UsageLimit:  b.UsageLimit,
	}
}
