package components

import (
	"context"
	"log/slog"

	"storefront-orders/internal/infra/events"
	"storefront-orders/internal/infra/payment"
	"storefront-orders/internal/infra/shipment"
	"storefront-orders/internal/pkg/config"
	"storefront-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
		NewEventPublisher,
		fx.Annotate(
			shipment.NewStubProvider,
			fx.As(new(shared.LabelProvider)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) shared.PaymentGateway {
	if cfg.Payment.Provider == config.PaymentProviderStripe {
		return payment.NewStripeGateway(cfg.Payment.StripeSecretKey, logger)
	}
	logger.Warn("using fake payment gateway", "auto_confirm", cfg.Payment.FakeAutoConfirm)
	return payment.NewFakeGateway(cfg.Payment.FakeAutoConfirm)
}

// NewEventPublisher publishes to AMQP when AMQP_URL is set and only logs otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Events.AMQPURL == "" {
		return events.NewLogPublisher(logger), nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

