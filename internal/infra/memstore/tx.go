package memstore

import (
	"context"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	data *state
}

func (t *memTx) Orders() shared.OrderRepository           { return &orderRepo{data: t.data} }
func (t *memTx) Promotions() shared.PromotionRepository   { return &promotionRepo{data: t.data} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return &idempotencyRepo{data: t.data} }
func (t *memTx) Reads() shared.CommandReads               { return &commandReads{data: t.data} }

type orderRepo struct {
	data *state
}

func (r *orderRepo) Create(_ context.Context, o *order.Order) error {
	if _, exists := r.data.orderCodes[o.Code()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "order code already exists")
	}
	if _, exists := r.data.orders[o.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "order id already exists")
	}
	r.data.orders[o.ID()] = o.Snapshot()
	r.data.orderCodes[o.Code()] = o.ID()
	return nil
}

func (r *orderRepo) Update(_ context.Context, o *order.Order, expectedStatus order.Status) error {
	stored, ok := r.data.orders[o.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	if stored.Version != o.Version() || stored.Status != expectedStatus {
		return infra.NewRepoErr(infra.KindPreconditionFailed, "order was modified concurrently")
	}
	next := o.Snapshot()
	next.Version = stored.Version + 1
	r.data.orders[o.ID()] = next
	return nil
}

type promotionRepo struct {
	data *state
}

func (r *promotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	if _, exists := r.data.promoCodes[p.Code().String()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "promotion code already exists")
	}
	r.data.promotions[p.ID()] = clonePromotion(p)
	r.data.promoCodes[p.Code().String()] = p.ID()
	return nil
}

func (r *promotionRepo) IncrementUsage(_ context.Context, id uuid.UUID) (int32, error) {
	p, ok := r.data.promotions[id]
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	if !p.HasUsageRemaining() {
		return 0, infra.NewRepoErr(infra.KindPreconditionFailed, "promotion usage limit reached")
	}
	count := p.UsageCount() + 1
	r.data.promotions[id] = promotion.ReconstructPromotion(
		p.ID(), p.Code(), p.Name(), p.Discount(), p.MinPurchase(),
		p.StartDate(), p.EndDate(), p.IsActive(),
		p.UsageLimit(), count, p.Version(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	return count, nil
}

func (r *promotionRepo) UpdateActive(_ context.Context, p *promotion.Promotion) error {
	stored, ok := r.data.promotions[p.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	if stored.Version() != p.Version() {
		return infra.NewRepoErr(infra.KindPreconditionFailed, "promotion was modified concurrently")
	}
	r.data.promotions[p.ID()] = promotion.ReconstructPromotion(
		stored.ID(), stored.Code(), stored.Name(), stored.Discount(), stored.MinPurchase(),
		stored.StartDate(), stored.EndDate(), p.IsActive(),
		stored.UsageLimit(), stored.UsageCount(), stored.Version()+1,
		stored.CreatedAt(), p.UpdatedAt(),
	)
	return nil
}

type idempotencyRepo struct {
	data *state
}

func (r *idempotencyRepo) TryInsert(_ context.Context, key uuid.UUID, ownerEmail, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, owner: ownerEmail}
	if _, exists := r.data.idempotency[k]; exists {
		return false, nil
	}
	r.data.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		OwnerEmail:  ownerEmail,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) Complete(_ context.Context, key uuid.UUID, ownerEmail string, orderID uuid.UUID) error {
	k := idempotencyKey{key: key, owner: ownerEmail}
	rec, ok := r.data.idempotency[k]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultOrderID = &orderID
	r.data.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) ClaimExpired(_ context.Context, key uuid.UUID, ownerEmail, requestHash string, now, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, owner: ownerEmail}
	rec, ok := r.data.idempotency[k]
	if !ok || rec.ExpiresAt.After(now) {
		return false, nil
	}
	r.data.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		OwnerEmail:  ownerEmail,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) Release(_ context.Context, key uuid.UUID, ownerEmail string) error {
	k := idempotencyKey{key: key, owner: ownerEmail}
	if rec, ok := r.data.idempotency[k]; ok && rec.Status == shared.IdempotencyProcessing {
		delete(r.data.idempotency, k)
	}
	return nil
}
