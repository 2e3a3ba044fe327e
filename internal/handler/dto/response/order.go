package response

import "storefront-orders/internal/usecase/queries"

type OrderListResponse struct {
	Orders []*queries.OrderView `json:"orders"`
	Count  int                  `json:"count"`
}

func FromOrderViews(views []*queries.OrderView) *OrderListResponse {
	if views == nil {
		views = []*queries.OrderView{}
	}
	return &OrderListResponse{Orders: views, Count: len(views)}
}
