//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/infra/memstore"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/shared"
	"storefront-orders/tests/common/builder"
	sharedmock "storefront-orders/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

// eventLog records published events for assertions.
type eventLog struct {
	mu     sync.Mutex
	events []shared.Event
}

func (l *eventLog) names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.Name
	}
	return out
}

type fixture struct {
	store     *memstore.Store
	clock     *clock.MockClock
	payments  *sharedmock.MockPaymentGateway
	labels    *sharedmock.MockLabelProvider
	events    *eventLog
	codes     *builder.FixedCodes
	evaluator commands.PromotionEvaluator
	checkout  commands.CheckoutCommands
	orders    commands.OrderCommands
	admin     commands.AdminCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		store:    memstore.NewStore(logger),
		clock:    clock.NewMockClock(now),
		payments: sharedmock.NewMockPaymentGateway(ctrl),
		labels:   sharedmock.NewMockLabelProvider(ctrl),
		events:   &eventLog{},
		codes:    &builder.FixedCodes{Codes: []string{"ORD-20260310100000-AAAAAA", "ORD-20260310100000-BBBBBB", "ORD-20260310100000-CCCCCC"}},
	}
	for ref, price := range builder.Catalog() {
		f.store.SeedProducts(shared.ProductSnapshot{Ref: ref, Name: "Item " + ref, UnitPrice: price, StockQuantity: 10})
	}

	publisher := sharedmock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e shared.Event) error {
		f.events.mu.Lock()
		defer f.events.mu.Unlock()
		f.events.events = append(f.events.events, e)
		return nil
	}).AnyTimes()

	policy := order.Policy{
		CancellationWindow: 24 * time.Hour,
		Visibility:         order.NewVisibilityPolicy(10 * time.Minute),
	}
	factory := order.NewFactory(f.clock, f.codes, 5000)
	estimator := shipping.NewDefaultEstimator(logger)

	f.evaluator = commands.NewPromotionEvaluator(f.store, f.clock)
	f.checkout = commands.NewCheckoutUseCase(f.store, f.evaluator, estimator, factory, f.payments, publisher, policy, "PKR", f.clock, logger)
	f.orders = commands.NewOrderUseCase(f.store, publisher, policy, f.clock, logger)
	f.admin = commands.NewAdminUseCase(f.store, f.labels, publisher, policy, f.clock, logger)
	return f
}

func lines(refQty ...any) []commands.CartLineInput {
	out := make([]commands.CartLineInput, 0, len(refQty)/2)
	for i := 0; i+1 < len(refQty); i += 2 {
		out = append(out, commands.CartLineInput{ProductRef: refQty[i].(string), Quantity: refQty[i+1].(int)})
	}
	return out
}

func codInput(l []commands.CartLineInput) commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		Lines:         l,
		Customer:      builder.DefaultCustomer(),
		PaymentMethod: "cod",
	}
}
