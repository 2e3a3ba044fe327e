package order

import (
	"storefront-orders/internal/domain/cart"
	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCODNotAvailable      = errs.NewKind(errs.ErrValidation, "cash on delivery is not available for this order total")
	ErrMissingPaymentIntent = errs.NewKind(errs.ErrValidation, "card payments require a payment intent")
	ErrPaymentNotConfirmed  = errs.NewKind(errs.ErrInvalidState, "payment has not been confirmed")
	ErrInvalidDiscount      = errs.NewKind(errs.ErrValidation, "discount must be between zero and the subtotal")
)

// AssembleParams is everything checkout has established before the order
// exists. Discount is the amount already granted by a redeemed promotion.
type AssembleParams struct {
	Cart             *cart.Cart
	Customer         CustomerInfo
	Shipping         shipping.Quote
	Discount         int64
	PromotionCode    *string
	PaymentMethod    PaymentMethod
	PaymentIntentID  *string
	PaymentConfirmed bool
}

type Factory struct {
	Clock    clock.Clock
	Codes    CodeGenerator
	CODLimit int64
}

func NewFactory(clk clock.Clock, codes CodeGenerator, codLimit int64) *Factory {
	return &Factory{
		Clock:    clk,
		Codes:    codes,
		CODLimit: codLimit,
	}
}

// CODAllowed reports whether cash on delivery may be offered for total.
func (f *Factory) CODAllowed(total int64) bool {
	return total <= f.CODLimit
}

// Assemble builds a pending order. The total is always
// subtotal - discount + shipping cost.
func (f *Factory) Assemble(p AssembleParams) (*Order, error) {
	if p.Cart == nil {
		return nil, cart.ErrEmptyCart
	}
	if !p.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	customer, err := NewCustomerInfo(p.Customer)
	if err != nil {
		return nil, err
	}

	subtotal := p.Cart.Subtotal()
	if p.Discount < 0 || p.Discount > subtotal {
		return nil, ErrInvalidDiscount
	}
	total := subtotal - p.Discount + p.Shipping.Cost

	paymentStatus := PaymentPending
	switch p.PaymentMethod {
	case PaymentCOD:
		if !f.CODAllowed(total) {
			return nil, ErrCODNotAvailable
		}
	case PaymentCard:
		if p.PaymentIntentID == nil || *p.PaymentIntentID == "" {
			return nil, ErrMissingPaymentIntent
		}
		if !p.PaymentConfirmed {
			return nil, ErrPaymentNotConfirmed
		}
		paymentStatus = PaymentPaid
	}

	now := f.Clock.Now()
	code, err := f.Codes.Generate(now)
	if err != nil {
		return nil, err
	}

	lines := p.Cart.Lines()
	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = LineItem{
			ProductRef:    l.ProductRef,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			SelectedSize:  l.SelectedSize,
			SelectedColor: l.SelectedColor,
		}
	}

	return &Order{
		id:              uuid.New(),
		code:            code,
		orderDate:       now,
		status:          StatusPending,
		paymentMethod:   p.PaymentMethod,
		paymentStatus:   paymentStatus,
		paymentIntentID: p.PaymentIntentID,
		customer:        customer,
		items:           items,
		subtotal:        subtotal,
		discount:        p.Discount,
		promotionCode:   p.PromotionCode,
		shipping:        ShippingFromQuote(p.Shipping),
		totalAmount:     total,
		version:         1,
		updatedAt:       now,
	}, nil
}
