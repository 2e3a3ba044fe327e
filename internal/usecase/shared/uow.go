package shared

import (
	"context"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Orders() OrderRepository
	Promotions() PromotionRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	PromotionByCode(ctx context.Context, code string) (*promotion.Promotion, error)
	PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	// Missing refs are absent from the result rather than an error.
	ProductsByRefs(ctx context.Context, refs []string) (map[string]ProductSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, ownerEmail string) (*IdempotencyRecord, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	// Update writes o only if the stored row still has o.Version() and
	// expectedStatus. The stored version is bumped; callers advance o.
	Update(ctx context.Context, o *order.Order, expectedStatus order.Status) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	// IncrementUsage is the single guarded redemption write. A promotion at
	// its limit fails with a precondition error and is left unchanged.
	IncrementUsage(ctx context.Context, id uuid.UUID) (int32, error)
	// UpdateActive is guarded by p.Version().
	UpdateActive(ctx context.Context, p *promotion.Promotion) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key is already held.
	TryInsert(ctx context.Context, key uuid.UUID, ownerEmail, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, key uuid.UUID, ownerEmail string, orderID uuid.UUID) error
	// ClaimExpired takes over a key whose previous holder expired.
	ClaimExpired(ctx context.Context, key uuid.UUID, ownerEmail, requestHash string, now, expiresAt time.Time) (bool, error)
	// Release drops a key still in processing so the shopper can retry.
	Release(ctx context.Context, key uuid.UUID, ownerEmail string) error
}
