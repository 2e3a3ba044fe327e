package response

import (
	"time"

	"storefront-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	DiscountType  string    `json:"discountType"`
	DiscountValue string    `json:"discountValue"`
	MinPurchase   int64     `json:"minPurchase"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	UsageLimit    *int32    `json:"usageLimit,omitempty"`
	UsageCount    int32     `json:"usageCount"`
	Version       int32     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromPromotionView(v *queries.PromotionView) (*PromotionResponse, error) {
	var res PromotionResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type PromotionListResponse struct {
	Promotions []*PromotionResponse `json:"promotions"`
	Count      int                  `json:"count"`
}

func FromPromotionViews(views []*queries.PromotionView) (*PromotionListResponse, error) {
	items := make([]*PromotionResponse, 0, len(views))
	for _, v := range views {
		item, err := FromPromotionView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &PromotionListResponse{Promotions: items, Count: len(items)}, nil
}
