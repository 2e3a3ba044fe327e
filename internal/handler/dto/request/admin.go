package request

import (
	"time"

	"storefront-orders/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ListOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,orderstatus"`
	Search string `form:"search" binding:"max=80"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

type ListPromotionsQuery struct {
	Search string `form:"search" binding:"max=40"`
}

type CreatePromotionRequest struct {
	Code          string          `json:"code" binding:"required,promocode"`
	Name          string          `json:"name" binding:"required,max=120"`
	DiscountType  string          `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MinPurchase   int64           `json:"minPurchase" binding:"min=0"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	EndDate       time.Time       `json:"endDate" binding:"required"`
	IsActive      *bool           `json:"isActive"`
	UsageLimit    *int32          `json:"usageLimit" binding:"omitempty,min=1"`
}

func (r CreatePromotionRequest) ToInput() commands.CreatePromotionInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.CreatePromotionInput{
		Code:          r.Code,
		Name:          r.Name,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinPurchase:   r.MinPurchase,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IsActive:      active,
		UsageLimit:    r.UsageLimit,
	}
}

type SetPromotionActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
