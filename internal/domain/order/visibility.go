package order

import "time"

// VisibilityPolicy decides which orders appear in a shopper's default list.
// A cancelled order stays listed for Grace after cancellation.
type VisibilityPolicy struct {
	Grace time.Duration
}

func NewVisibilityPolicy(grace time.Duration) VisibilityPolicy {
	return VisibilityPolicy{Grace: grace}
}

func (p VisibilityPolicy) VisibleToShopper(o *Order, now time.Time) bool {
	if o.status != StatusCancelled || o.cancelledAt == nil {
		return true
	}
	return now.Before(o.cancelledAt.Add(p.Grace))
}

// Filter keeps the visible orders, preserving order.
func (p VisibilityPolicy) Filter(orders []*Order, now time.Time) []*Order {
	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if p.VisibleToShopper(o, now) {
			out = append(out, o)
		}
	}
	return out
}

// Policy groups the configurable lifecycle windows.
type Policy struct {
	CancellationWindow time.Duration
	// Zero leaves staff cancellation unrestricted.
	StaffCancellationWindow time.Duration
	Visibility              VisibilityPolicy
}

func DefaultPolicy() Policy {
	return Policy{
		CancellationWindow: 24 * time.Hour,
		Visibility:         NewVisibilityPolicy(10 * time.Minute),
	}
}
