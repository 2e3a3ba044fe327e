package order

import (
	"time"

	"storefront-orders/internal/pkg/errs"
)

var (
	ErrOrderAlreadyFinalized        = errs.NewKind(errs.ErrInvalidState, "order is already completed or cancelled")
	ErrInvalidStatusForCancellation = errs.NewKind(errs.ErrInvalidState, "order can no longer be cancelled")
	ErrCancellationWindowClosed     = errs.NewKind(errs.ErrInvalidState, "cancellation window has closed")
	ErrInvalidTransition            = errs.NewKind(errs.ErrInvalidState, "status transition is not allowed")
	ErrShipmentExists               = errs.NewKind(errs.ErrInvalidState, "order already has a shipment")
	ErrNoShipment                   = errs.NewKind(errs.ErrInvalidState, "order has no shipment")
	ErrAlreadyHandedOver            = errs.NewKind(errs.ErrInvalidState, "shipment is already with the courier")
)

var staffTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether staff may move an order from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range staffTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CancellationDeadline is the first instant at which the shopper may no
// longer cancel.
func (o *Order) CancellationDeadline(window time.Duration) time.Time {
	return o.orderDate.Add(window)
}

// CheckShopperCancellation reports why the shopper may not cancel, if at all.
func (o *Order) CheckShopperCancellation(now time.Time, window time.Duration) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}
	if o.IsHandedOver() || (o.status != StatusPending && o.status != StatusProcessing) {
		return ErrInvalidStatusForCancellation
	}
	if !now.Before(o.CancellationDeadline(window)) {
		return ErrCancellationWindowClosed
	}
	return nil
}

// CancelByShopper leaves the order untouched when it returns an error.
func (o *Order) CancelByShopper(now time.Time, window time.Duration) error {
	if err := o.CheckShopperCancellation(now, window); err != nil {
		return err
	}
	o.cancel(now)
	return nil
}

// TransitionByStaff moves the order to target. A positive staffWindow bounds
// how long after placement staff may still cancel; zero means no bound.
func (o *Order) TransitionByStaff(target Status, now time.Time, staffWindow time.Duration) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}
	if !CanTransition(o.status, target) {
		return ErrInvalidTransition
	}
	if target == StatusCancelled {
		if staffWindow > 0 && !now.Before(o.CancellationDeadline(staffWindow)) {
			return ErrCancellationWindowClosed
		}
		o.cancel(now)
		return nil
	}
	o.status = target
	o.updatedAt = now
	return nil
}

func (o *Order) cancel(now time.Time) {
	at := now
	o.status = StatusCancelled
	o.cancelledAt = &at
	o.updatedAt = now
}

// AttachShipment records a freshly generated label. A pending order moves to
// processing.
func (o *Order) AttachShipment(t Tracking, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}
	if o.tracking != nil {
		return ErrShipmentExists
	}
	t.Status = TrackingPending
	t.HandedOverAt = nil
	if t.ShippedAt.IsZero() {
		t.ShippedAt = now
	}
	o.tracking = &t
	if o.status == StatusPending {
		o.status = StatusProcessing
	}
	o.updatedAt = now
	return nil
}

// MarkHandedOver records that the courier has collected the parcel, which
// ends the shopper's ability to cancel.
func (o *Order) MarkHandedOver(now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}
	if o.tracking == nil {
		return ErrNoShipment
	}
	if o.tracking.Status.HandedOver() {
		return ErrAlreadyHandedOver
	}
	at := now
	t := *o.tracking
	t.Status = TrackingInTransit
	t.HandedOverAt = &at
	o.tracking = &t
	o.updatedAt = now
	return nil
}
