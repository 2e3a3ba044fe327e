package queries

import (
	"context"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/domain/user"
)

type PromotionQueries interface {
	List(ctx context.Context, actor user.Identity, search string) ([]*PromotionView, error)
}

// PromotionViewRepo matches search as a case-insensitive code substring and
// orders by start date, newest first.
type PromotionViewRepo interface {
	FindAll(ctx context.Context, search string) ([]*promotion.Promotion, error)
}

type promotionQueriesImpl struct {
	repo PromotionViewRepo
}

func NewPromotionQueries(repo PromotionViewRepo) PromotionQueries {
	return &promotionQueriesImpl{repo: repo}
}

func (q *promotionQueriesImpl) List(ctx context.Context, actor user.Identity, search string) ([]*PromotionView, error) {
	if !actor.Staff {
		return nil, ErrStaffOnly
	}
	promos, err := q.repo.FindAll(ctx, promotion.NormalizeCode(search))
	if err != nil {
		return nil, err
	}
	views := make([]*PromotionView, len(promos))
	for i, p := range promos {
		views[i] = NewPromotionView(p)
	}
	return views, nil
}
