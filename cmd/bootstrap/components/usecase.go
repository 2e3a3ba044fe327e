package components

import (
	"log/slog"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/config"
	"storefront-orders/internal/usecase"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewOrderPolicy,
	NewOrderFactory,
	fx.Annotate(
		shipping.NewDefaultEstimator,
		fx.As(new(shipping.Estimator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromotionEvaluator,
		NewCheckoutCommands,
		commands.NewOrderUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewPromotionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		func(cfg config.Config) user.StaffPolicy {
			return user.NewStaffPolicy(cfg.JWT.StaffEmails)
		},
		usecase.NewIdentityResolver,
	),
)

func NewOrderPolicy(cfg config.Config) order.Policy {
	return order.Policy{
		CancellationWindow:      cfg.Order.CancellationWindow,
		StaffCancellationWindow: cfg.Order.StaffCancellationWindow,
		Visibility:              order.NewVisibilityPolicy(cfg.Order.CancelledVisibility),
	}
}

func NewOrderFactory(cfg config.Config, clk clock.Clock) *order.Factory {
	return order.NewFactory(clk, order.NewRandomCodeGenerator(), cfg.Checkout.CODLimit)
}

func NewCheckoutCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	evaluator commands.PromotionEvaluator,
	estimator shipping.Estimator,
	factory *order.Factory,
	payments shared.PaymentGateway,
	events shared.EventPublisher,
	policy order.Policy,
	clk clock.Clock,
	logger *slog.Logger,
) commands.CheckoutCommands {
	return commands.NewCheckoutUseCase(uow, evaluator, estimator, factory, payments, events, policy, cfg.Checkout.Currency, clk, logger)
}
