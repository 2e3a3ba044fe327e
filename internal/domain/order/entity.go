package order

import (
	"strings"
	"time"

	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errs.NewKind(errs.ErrNotFound, "order not found")
	ErrInvalidStatus        = errs.NewKind(errs.ErrValidation, "invalid order status")
	ErrInvalidPaymentMethod = errs.NewKind(errs.ErrValidation, "invalid payment method")
	ErrDuplicateOrderCode   = errs.NewKind(errs.ErrConflict, "order code already exists")
)

type Order struct {
	id              uuid.UUID
	code            string
	orderDate       time.Time
	status          Status
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	paymentIntentID *string
	customer        CustomerInfo
	items           []LineItem
	subtotal        int64
	discount        int64
	promotionCode   *string
	shipping        ShippingSnapshot
	totalAmount     int64
	cancelledAt     *time.Time
	tracking        *Tracking
	version         int32
	updatedAt       time.Time
}

// ReconstructParams carries a stored order back into the domain.
type ReconstructParams struct {
	ID              uuid.UUID
	Code            string
	OrderDate       time.Time
	Status          Status
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	PaymentIntentID *string
	Customer        CustomerInfo
	Items           []LineItem
	Subtotal        int64
	Discount        int64
	PromotionCode   *string
	Shipping        ShippingSnapshot
	TotalAmount     int64
	CancelledAt     *time.Time
	Tracking        *Tracking
	Version         int32
	UpdatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	items := make([]LineItem, len(p.Items))
	copy(items, p.Items)
	var tracking *Tracking
	if p.Tracking != nil {
		t := *p.Tracking
		tracking = &t
	}
	return &Order{
		id:              p.ID,
		code:            p.Code,
		orderDate:       p.OrderDate,
		status:          p.Status,
		paymentMethod:   p.PaymentMethod,
		paymentStatus:   p.PaymentStatus,
		paymentIntentID: p.PaymentIntentID,
		customer:        p.Customer,
		items:           items,
		subtotal:        p.Subtotal,
		discount:        p.Discount,
		promotionCode:   p.PromotionCode,
		shipping:        p.Shipping,
		totalAmount:     p.TotalAmount,
		cancelledAt:     p.CancelledAt,
		tracking:        tracking,
		version:         p.Version,
		updatedAt:       p.UpdatedAt,
	}
}

// Snapshot returns the order as plain data, the inverse of Reconstruct.
func (o *Order) Snapshot() ReconstructParams {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	var tracking *Tracking
	if o.tracking != nil {
		t := *o.tracking
		tracking = &t
	}
	return ReconstructParams{
		ID:              o.id,
		Code:            o.code,
		OrderDate:       o.orderDate,
		Status:          o.status,
		PaymentMethod:   o.paymentMethod,
		PaymentStatus:   o.paymentStatus,
		PaymentIntentID: o.paymentIntentID,
		Customer:        o.customer,
		Items:           items,
		Subtotal:        o.subtotal,
		Discount:        o.discount,
		PromotionCode:   o.promotionCode,
		Shipping:        o.shipping,
		TotalAmount:     o.totalAmount,
		CancelledAt:     o.cancelledAt,
		Tracking:        tracking,
		Version:         o.version,
		UpdatedAt:       o.updatedAt,
	}
}

// AdvanceVersion mirrors the version bump of a successful guarded write.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) IsOwnedBy(email user.Email) bool {
	return email.Equal(o.customer.Email)
}

// MatchesSearch reports whether term occurs, ignoring case, in the order code,
// the customer name or the customer email. An empty term matches everything.
func (o *Order) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{o.code, o.customer.FullName, o.customer.Email} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (o *Order) IsHandedOver() bool {
	return o.tracking != nil && o.tracking.Status.HandedOver()
}

// WithCode returns a copy carrying a fresh order code, used when the stored
// code collides.
func (o *Order) WithCode(code string) *Order {
	cp := Reconstruct(o.Snapshot())
	cp.code = code
	return cp
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Code() string                 { return o.code }
func (o *Order) OrderDate() time.Time         { return o.orderDate }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) PaymentIntentID() *string     { return o.paymentIntentID }
func (o *Order) Customer() CustomerInfo       { return o.customer }
func (o *Order) Subtotal() int64              { return o.subtotal }
func (o *Order) Discount() int64              { return o.discount }
func (o *Order) PromotionCode() *string       { return o.promotionCode }
func (o *Order) Shipping() ShippingSnapshot   { return o.shipping }
func (o *Order) TotalAmount() int64           { return o.totalAmount }
func (o *Order) CancelledAt() *time.Time      { return o.cancelledAt }
func (o *Order) Version() int32               { return o.version }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Tracking() *Tracking {
	if o.tracking == nil {
		return nil
	}
	t := *o.tracking
	return &t
}
