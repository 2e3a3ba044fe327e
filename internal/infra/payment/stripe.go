package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront-orders/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

func NewStripeGateway(secretKey string, logger *slog.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, logger: logger}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*shared.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	g.logger.Info("payment intent created", "intent_id", pi.ID, "amount_minor", pi.Amount)
	return &shared.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// Confirmation reports a card payment as confirmed only once Stripe has
// captured it.
func (g *StripeGateway) Confirmation(ctx context.Context, intentID string) (*shared.PaymentConfirmation, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: get payment intent %s: %w", intentID, err)
	}
	return &shared.PaymentConfirmation{
		Confirmed:   pi.Status == stripe.PaymentIntentStatusSucceeded,
		AmountMinor: pi.Amount,
		Currency:    string(pi.Currency),
	}, nil
}
