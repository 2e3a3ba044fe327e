package memstore

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	key   uuid.UUID
	owner string
}

type state struct {
	orders      map[uuid.UUID]order.ReconstructParams
	orderCodes  map[string]uuid.UUID
	promotions  map[uuid.UUID]*promotion.Promotion
	promoCodes  map[string]uuid.UUID
	products    map[string]shared.ProductSnapshot
	idempotency map[idempotencyKey]shared.IdempotencyRecord
}

func newState() *state {
	return &state{
		orders:      map[uuid.UUID]order.ReconstructParams{},
		orderCodes:  map[string]uuid.UUID{},
		promotions:  map[uuid.UUID]*promotion.Promotion{},
		promoCodes:  map[string]uuid.UUID{},
		products:    map[string]shared.ProductSnapshot{},
		idempotency: map[idempotencyKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range s.orderCodes {
		c.orderCodes[k] = v
	}
	for k, v := range s.promotions {
		c.promotions[k] = clonePromotion(v)
	}
	for k, v := range s.promoCodes {
		c.promoCodes[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

// Store keeps every record in process memory. Transactions are serialised and
// applied copy-on-commit, so a failed transaction leaves no trace.
type Store struct {
	mu     sync.Mutex
	data   *state
	logger *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{data: newState(), logger: logger}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &memTx{data: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &storeReads{store: s}
}

// DefaultCatalog mirrors the rows seeded by the catalog migration.
func DefaultCatalog() []shared.ProductSnapshot {
	return []shared.ProductSnapshot{
		{Ref: "kurta-01", Name: "Lawn Kurta", UnitPrice: 2500, StockQuantity: 50},
		{Ref: "shawl-02", Name: "Pashmina Shawl", UnitPrice: 1500, StockQuantity: 30},
		{Ref: "dupatta", Name: "Chiffon Dupatta", UnitPrice: 1000, StockQuantity: 80},
	}
}

// SeedProducts upserts catalog rows.
func (s *Store) SeedProducts(products ...shared.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.data.products[p.Ref] = p
	}
}

// SeedPromotion stores p as-is, bypassing the creation checks.
func (s *Store) SeedPromotion(p *promotion.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.promotions[p.ID()] = clonePromotion(p)
	s.data.promoCodes[p.Code().String()] = p.ID()
}

// SeedOrder stores o as-is.
func (s *Store) SeedOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.orders[o.ID()] = o.Snapshot()
	s.data.orderCodes[o.Code()] = o.ID()
}

// Order readers for the query side.

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findOrder(s.data, id)
}

func (s *Store) FindByEmail(_ context.Context, email string) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return listOrders(s.data, func(p order.ReconstructParams) bool {
		return strings.EqualFold(p.Customer.Email, email)
	}), nil
}

func (s *Store) FindAll(_ context.Context, status *order.Status) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return listOrders(s.data, func(p order.ReconstructParams) bool {
		return status == nil || p.Status == *status
	}), nil
}

// PromotionReader serves the admin promotion list.
type PromotionReader struct {
	store *Store
}

func NewPromotionReader(store *Store) *PromotionReader {
	return &PromotionReader{store: store}
}

func (r *PromotionReader) FindAll(_ context.Context, search string) ([]*promotion.Promotion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	search = strings.ToUpper(search)
	out := make([]*promotion.Promotion, 0, len(r.store.data.promotions))
	for _, p := range r.store.data.promotions {
		if search == "" || strings.Contains(p.Code().String(), search) {
			out = append(out, clonePromotion(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate().Equal(out[j].StartDate()) {
			return out[i].Code() < out[j].Code()
		}
		return out[i].StartDate().After(out[j].StartDate())
	})
	return out, nil
}

func findOrder(data *state, id uuid.UUID) (*order.Order, error) {
	p, ok := data.orders[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return order.Reconstruct(p), nil
}

func listOrders(data *state, keep func(order.ReconstructParams) bool) []*order.Order {
	out := make([]*order.Order, 0)
	for _, p := range data.orders {
		if keep(p) {
			out = append(out, order.Reconstruct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderDate().Equal(out[j].OrderDate()) {
			return out[i].Code() > out[j].Code()
		}
		return out[i].OrderDate().After(out[j].OrderDate())
	})
	return out
}

func cloneOrder(p order.ReconstructParams) order.ReconstructParams {
	return order.Reconstruct(p).Snapshot()
}

func clonePromotion(p *promotion.Promotion) *promotion.Promotion {
	var limit *int32
	if l := p.UsageLimit(); l != nil {
		v := *l
		limit = &v
	}
	return promotion.ReconstructPromotion(
		p.ID(), p.Code(), p.Name(), p.Discount(), p.MinPurchase(),
		p.StartDate(), p.EndDate(), p.IsActive(),
		limit, p.UsageCount(), p.Version(),
		p.CreatedAt(), p.UpdatedAt(),
	)
}
