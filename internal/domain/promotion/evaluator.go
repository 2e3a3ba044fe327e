package promotion

import (
	"time"

	"storefront-orders/internal/pkg/errs"
)

// Evaluate applies the promotion rules in their fixed order and returns the
// discount for subtotal. It has no side effects; the usage counter is
// incremented by the store once the caller commits to the redemption.
func (p *Promotion) Evaluate(subtotal int64, now time.Time) (int64, error) {
	if !p.isActive {
		return 0, ErrInactive
	}
	if !p.InWindow(now) {
		return 0, ErrOutOfWindow
	}
	if subtotal < p.minPurchase {
		return 0, ErrBelowMinimum
	}
	if !p.HasUsageRemaining() {
		return 0, ErrUsageExceeded
	}
	return p.discount.AmountFor(subtotal), nil
}

// ReasonOf maps an evaluation error to its reason code.
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errs.Is(err, ErrPromotionNotFound):
		return ReasonNotFound
	case errs.Is(err, ErrInactive):
		return ReasonInactive
	case errs.Is(err, ErrOutOfWindow):
		return ReasonOutOfWindow
	case errs.Is(err, ErrBelowMinimum):
		return ReasonBelowMinimum
	case errs.Is(err, ErrUsageExceeded):
		return ReasonUsageExceeded
	default:
		return ReasonNone
	}
}
