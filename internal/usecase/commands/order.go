package commands

import (
	"context"
	"log/slog"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	CancelByShopper(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	policy order.Policy
	clock  clock.Clock
	logger *slog.Logger
}

func NewOrderUseCase(uow shared.UnitOfWork, events shared.EventPublisher, policy order.Policy, clk clock.Clock, logger *slog.Logger) OrderCommands {
	return &orderUseCaseImpl{uow: uow, events: events, policy: policy, clock: clk, logger: logger}
}

func (uc *orderUseCaseImpl) CancelByShopper(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error) {
	var cancelled *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := loadOrder(ctx, tx.Reads(), orderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(actor.Email) {
			return order.ErrOrderNotFound
		}

		prior := o.Status()
		if err := o.CancelByShopper(uc.clock.Now(), uc.policy.CancellationWindow); err != nil {
			return err
		}
		if err := tx.Orders().Update(ctx, o, prior); err != nil {
			return shared.Translate(err, order.ErrOrderNotFound, nil)
		}
		o.AdvanceVersion()
		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, uc.clock, shared.EventOrderCancelled, map[string]any{
		"orderId":     cancelled.ID().String(),
		"code":        cancelled.Code(),
		"cancelledBy": "shopper",
	})
	return queries.NewShopperOrderView(cancelled, uc.clock.Now(), uc.policy.CancellationWindow), nil
}

func loadOrder(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*order.Order, error) {
	o, err := reads.OrderByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, order.ErrOrderNotFound, nil)
	}
	return o, nil
}
