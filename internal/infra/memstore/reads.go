package memstore

import (
	"context"
	"strings"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReads struct {
	data *state
}

func (r *commandReads) OrderByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	return findOrder(r.data, id)
}

func (r *commandReads) PromotionByCode(_ context.Context, code string) (*promotion.Promotion, error) {
	id, ok := r.data.promoCodes[strings.ToUpper(code)]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return clonePromotion(r.data.promotions[id]), nil
}

func (r *commandReads) PromotionByID(_ context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	p, ok := r.data.promotions[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return clonePromotion(p), nil
}

func (r *commandReads) ProductsByRefs(_ context.Context, refs []string) (map[string]shared.ProductSnapshot, error) {
	out := make(map[string]shared.ProductSnapshot, len(refs))
	for _, ref := range refs {
		if p, ok := r.data.products[ref]; ok {
			out[ref] = p
		}
	}
	return out, nil
}

func (r *commandReads) IdempotencyByKey(_ context.Context, key uuid.UUID, ownerEmail string) (*shared.IdempotencyRecord, error) {
	rec, ok := r.data.idempotency[idempotencyKey{key: key, owner: ownerEmail}]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return &rec, nil
}

// storeReads serves reads outside a transaction from the committed state.
type storeReads struct {
	store *Store
}

func (r *storeReads) with(fn func(reads *commandReads) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&commandReads{data: r.store.data})
}

func (r *storeReads) OrderByID(ctx context.Context, id uuid.UUID) (o *order.Order, err error) {
	err = r.with(func(reads *commandReads) error {
		o, err = reads.OrderByID(ctx, id)
		return err
	})
	return o, err
}

func (r *storeReads) PromotionByCode(ctx context.Context, code string) (p *promotion.Promotion, err error) {
	err = r.with(func(reads *commandReads) error {
		p, err = reads.PromotionByCode(ctx, code)
		return err
	})
	return p, err
}

func (r *storeReads) PromotionByID(ctx context.Context, id uuid.UUID) (p *promotion.Promotion, err error) {
	err = r.with(func(reads *commandReads) error {
		p, err = reads.PromotionByID(ctx, id)
		return err
	})
	return p, err
}

func (r *storeReads) ProductsByRefs(ctx context.Context, refs []string) (m map[string]shared.ProductSnapshot, err error) {
	err = r.with(func(reads *commandReads) error {
		m, err = reads.ProductsByRefs(ctx, refs)
		return err
	})
	return m, err
}

func (r *storeReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, ownerEmail string) (rec *shared.IdempotencyRecord, err error) {
	err = r.with(func(reads *commandReads) error {
		rec, err = reads.IdempotencyByKey(ctx, key, ownerEmail)
		return err
	})
	return rec, err
}
