package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownIntent = errs.New("payment intent not found")

// FakeGateway keeps intents in memory for local development and tests. With
// autoConfirm every intent counts as paid as soon as it exists.
type FakeGateway struct {
	mu          sync.Mutex
	intents     map[string]*fakeIntent
	autoConfirm bool
}

type fakeIntent struct {
	amountMinor int64
	currency    string
	confirmed   bool
}

func NewFakeGateway(autoConfirm bool) *FakeGateway {
	return &FakeGateway{intents: make(map[string]*fakeIntent), autoConfirm: autoConfirm}
}

func (g *FakeGateway) CreateIntent(_ context.Context, amountMinor int64, currency string) (*shared.PaymentIntent, error) {
	id := "pi_fake_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents[id] = &fakeIntent{amountMinor: amountMinor, currency: strings.ToLower(currency), confirmed: g.autoConfirm}
	return &shared.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		AmountMinor:  amountMinor,
		Currency:     strings.ToLower(currency),
	}, nil
}

func (g *FakeGateway) Confirmation(_ context.Context, intentID string) (*shared.PaymentConfirmation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	in, ok := g.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntent, intentID)
	}
	return &shared.PaymentConfirmation{Confirmed: in.confirmed, AmountMinor: in.amountMinor, Currency: in.currency}, nil
}

// Confirm marks an intent as paid, standing in for the shopper completing
// the card form.
func (g *FakeGateway) Confirm(intentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	in, ok := g.intents[intentID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIntent, intentID)
	}
	in.confirmed = true
	return nil
}
