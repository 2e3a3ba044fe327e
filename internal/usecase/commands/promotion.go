package commands

import (
	"context"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/shared"
)

var ErrNegativeSubtotal = errs.NewKind(errs.ErrValidation, "subtotal cannot be negative")

// EvaluationResult is the shopper-facing outcome of applying a code. Business
// failures are reported through Valid and Reason, not as errors.
type EvaluationResult struct {
	Code           string
	Valid          bool
	DiscountAmount int64
	Reason         promotion.Reason
	Message        string
}

type Redemption struct {
	Promotion      *promotion.Promotion
	DiscountAmount int64
}

type PromotionEvaluator interface {
	// Preview evaluates without consuming a redemption.
	Preview(ctx context.Context, code string, subtotal int64) (*EvaluationResult, error)
	// Redeem evaluates and consumes one redemption inside tx. Rule failures
	// are returned as the promotion sentinel errors.
	Redeem(ctx context.Context, tx shared.Tx, code string, subtotal int64) (*Redemption, error)
}

type promotionEvaluatorImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromotionEvaluator(uow shared.UnitOfWork, clk clock.Clock) PromotionEvaluator {
	return &promotionEvaluatorImpl{uow: uow, clock: clk}
}

func (e *promotionEvaluatorImpl) Preview(ctx context.Context, code string, subtotal int64) (*EvaluationResult, error) {
	if subtotal < 0 {
		return nil, ErrNegativeSubtotal
	}
	normalized := promotion.NormalizeCode(code)
	promo, err := e.lookup(ctx, e.uow.CommandReads(), normalized)
	if err == nil {
		var amount int64
		amount, err = promo.Evaluate(subtotal, e.clock.Now())
		if err == nil {
			return &EvaluationResult{Code: normalized, Valid: true, DiscountAmount: amount}, nil
		}
	}
	if reason := promotion.ReasonOf(err); reason != promotion.ReasonNone {
		return &EvaluationResult{Code: normalized, Valid: false, Reason: reason, Message: messageOf(err)}, nil
	}
	return nil, err
}

func (e *promotionEvaluatorImpl) Redeem(ctx context.Context, tx shared.Tx, code string, subtotal int64) (*Redemption, error) {
	if subtotal < 0 {
		return nil, ErrNegativeSubtotal
	}
	promo, err := e.lookup(ctx, tx.Reads(), promotion.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	amount, err := promo.Evaluate(subtotal, e.clock.Now())
	if err != nil {
		return nil, err
	}

	// The guarded increment is the authority: a concurrent redemption may
	// have taken the last use after the read above.
	if _, err := tx.Promotions().IncrementUsage(ctx, promo.ID()); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			return nil, promotion.ErrUsageExceeded
		}
		return nil, shared.Translate(err, promotion.ErrPromotionNotFound, nil)
	}
	return &Redemption{Promotion: promo, DiscountAmount: amount}, nil
}

func (e *promotionEvaluatorImpl) lookup(ctx context.Context, reads shared.CommandReads, code string) (*promotion.Promotion, error) {
	if _, err := promotion.NewCode(code); err != nil {
		// A malformed code can never have been stored.
		return nil, promotion.ErrPromotionNotFound
	}
	promo, err := reads.PromotionByCode(ctx, code)
	if err != nil {
		return nil, shared.Translate(err, promotion.ErrPromotionNotFound, nil)
	}
	return promo, nil
}

func messageOf(err error) string {
	for _, sentinel := range []error{
		promotion.ErrPromotionNotFound,
		promotion.ErrInactive,
		promotion.ErrOutOfWindow,
		promotion.ErrBelowMinimum,
		promotion.ErrUsageExceeded,
	} {
		if errs.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
