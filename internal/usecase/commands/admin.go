package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePromotionInput struct {
	Code          string
	Name          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinPurchase   int64
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
	UsageLimit    *int32
}

// AdminCommands is the only write path for back-office changes. Every call
// requires a staff identity and writes with optimistic concurrency.
type AdminCommands interface {
	UpdateOrderStatus(ctx context.Context, actor user.Identity, orderID uuid.UUID, target string) (*queries.OrderView, error)
	GenerateShipment(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error)
	MarkHandedOver(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error)
	CreatePromotion(ctx context.Context, actor user.Identity, in CreatePromotionInput) (*queries.PromotionView, error)
	SetPromotionActive(ctx context.Context, actor user.Identity, promotionID uuid.UUID, active bool) (*queries.PromotionView, error)
}

type adminUseCaseImpl struct {
	uow    shared.UnitOfWork
	labels shared.LabelProvider
	events shared.EventPublisher
	policy order.Policy
	clock  clock.Clock
	logger *slog.Logger
}

func NewAdminUseCase(
	uow shared.UnitOfWork,
	labels shared.LabelProvider,
	events shared.EventPublisher,
	policy order.Policy,
	clk clock.Clock,
	logger *slog.Logger,
) AdminCommands {
	return &adminUseCaseImpl{
		uow:    uow,
		labels: labels,
		events: events,
		policy: policy,
		clock:  clk,
		logger: logger,
	}
}

func (uc *adminUseCaseImpl) UpdateOrderStatus(ctx context.Context, actor user.Identity, orderID uuid.UUID, target string) (*queries.OrderView, error) {
	if !actor.Staff {
		return nil, queries.ErrStaffOnly
	}
	to, err := order.NewStatus(target)
	if err != nil {
		return nil, err
	}

	var prior order.Status
	updated, err := uc.mutateOrder(ctx, orderID, func(o *order.Order, now time.Time) error {
		prior = o.Status()
		return o.TransitionByStaff(to, now, uc.policy.StaffCancellationWindow)
	})
	if err != nil {
		return nil, err
	}

	name := shared.EventOrderStatusChanged
	if to == order.StatusCancelled {
		name = shared.EventOrderCancelled
	}
	uc.publish(ctx, name, map[string]any{
		"orderId": updated.ID().String(),
		"code":    updated.Code(),
		"from":    prior.String(),
		"to":      to.String(),
		"actor":   actor.Email.Value(),
	})
	return queries.NewOrderView(updated), nil
}

func (uc *adminUseCaseImpl) GenerateShipment(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error) {
	if !actor.Staff {
		return nil, queries.ErrStaffOnly
	}

	// Check eligibility before calling the courier so a refused order never
	// produces a label.
	current, err := loadOrder(ctx, uc.uow.CommandReads(), orderID)
	if err != nil {
		return nil, err
	}
	if current.Status().IsTerminal() {
		return nil, order.ErrOrderAlreadyFinalized
	}
	if current.Tracking() != nil {
		return nil, order.ErrShipmentExists
	}

	label, err := uc.labels.GenerateLabel(ctx, current)
	if err != nil {
		uc.logger.Error("failed to generate shipping label", "order_id", orderID.String(), "error", err.Error())
		return nil, errs.Upstream(err, "generate shipping label")
	}

	updated, err := uc.mutateOrder(ctx, orderID, func(o *order.Order, now time.Time) error {
		return o.AttachShipment(order.Tracking{
			TrackingNumber:    label.TrackingNumber,
			Carrier:           label.Carrier,
			LabelURL:          label.LabelURL,
			Cost:              label.Cost,
			EstimatedDelivery: label.EstimatedDelivery,
			ShippedAt:         now,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventOrderShipmentCreated, map[string]any{
		"orderId":        updated.ID().String(),
		"code":           updated.Code(),
		"trackingNumber": label.TrackingNumber,
		"carrier":        label.Carrier,
	})
	return queries.NewOrderView(updated), nil
}

func (uc *adminUseCaseImpl) MarkHandedOver(ctx context.Context, actor user.Identity, orderID uuid.UUID) (*queries.OrderView, error) {
	if !actor.Staff {
		return nil, queries.ErrStaffOnly
	}
	updated, err := uc.mutateOrder(ctx, orderID, func(o *order.Order, now time.Time) error {
		return o.MarkHandedOver(now)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventOrderHandedOver, map[string]any{
		"orderId":        updated.ID().String(),
		"code":           updated.Code(),
		"trackingNumber": updated.Tracking().TrackingNumber,
	})
	return queries.NewOrderView(updated), nil
}

func (uc *adminUseCaseImpl) CreatePromotion(ctx context.Context, actor user.Identity, in CreatePromotionInput) (*queries.PromotionView, error) {
	if !actor.Staff {
		return nil, queries.ErrStaffOnly
	}
	kind, err := promotion.NewDiscountType(in.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := promotion.NewDiscount(kind, in.DiscountValue)
	if err != nil {
		return nil, err
	}
	promo, err := promotion.NewPromotion(promotion.NewParams{
		Code:        in.Code,
		Name:        in.Name,
		Discount:    discount,
		MinPurchase: in.MinPurchase,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    in.IsActive,
		UsageLimit:  in.UsageLimit,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.Translate(tx.Promotions().Create(ctx, promo), nil, promotion.ErrDuplicateCode)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventPromotionCreated, map[string]any{
		"promotionId": promo.ID().String(),
		"code":        promo.Code().String(),
		"actor":       actor.Email.Value(),
	})
	return queries.NewPromotionView(promo), nil
}

func (uc *adminUseCaseImpl) SetPromotionActive(ctx context.Context, actor user.Identity, promotionID uuid.UUID, active bool) (*queries.PromotionView, error) {
	if !actor.Staff {
		return nil, queries.ErrStaffOnly
	}

	var promo *promotion.Promotion
	var changed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PromotionByID(ctx, promotionID)
		if err != nil {
			return shared.Translate(err, promotion.ErrPromotionNotFound, nil)
		}
		changed = p.SetActive(active, uc.clock.Now())
		if changed {
			if err := tx.Promotions().UpdateActive(ctx, p); err != nil {
				return shared.Translate(err, promotion.ErrPromotionNotFound, nil)
			}
			p.AdvanceVersion()
		}
		promo = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.publish(ctx, shared.EventPromotionToggled, map[string]any{
			"promotionId": promo.ID().String(),
			"code":        promo.Code().String(),
			"isActive":    promo.IsActive(),
			"actor":       actor.Email.Value(),
		})
	}
	return queries.NewPromotionView(promo), nil
}

// mutateOrder re-reads the order inside the write transaction, applies
// mutate, and writes it guarded by the version and status it read.
func (uc *adminUseCaseImpl) mutateOrder(ctx context.Context, orderID uuid.UUID, mutate func(o *order.Order, now time.Time) error) (*order.Order, error) {
	var result *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := loadOrder(ctx, tx.Reads(), orderID)
		if err != nil {
			return err
		}
		prior := o.Status()
		if err := mutate(o, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Orders().Update(ctx, o, prior); err != nil {
			return shared.Translate(err, order.ErrOrderNotFound, nil)
		}
		o.AdvanceVersion()
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *adminUseCaseImpl) publish(ctx context.Context, name string, payload map[string]any) {
	publishEvent(ctx, uc.events, uc.logger, uc.clock, name, payload)
}
