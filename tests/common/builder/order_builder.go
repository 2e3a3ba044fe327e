//go:build unit || e2e

package builder

import (
	"time"

	"storefront-orders/internal/domain/cart"
	"storefront-orders/internal/domain/order"

	"github.com/google/uuid"
)

// OrderBuilder produces stored orders. The zero-value fields mirror a fresh
// COD order for a single kurta shipped to Karachi.
type OrderBuilder struct {
	p order.ReconstructParams
}

func NewOrderBuilder() *OrderBuilder {
	placed := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &OrderBuilder{p: order.ReconstructParams{
		ID:            uuid.New(),
		Code:          "ORD-20260310090000-ABCDEF",
		OrderDate:     placed,
		Status:        order.StatusPending,
		PaymentMethod: order.PaymentCOD,
		PaymentStatus: order.PaymentPending,
		Customer:      DefaultCustomer(),
		Items: []order.LineItem{
			{ProductRef: "kurta-01", Name: "Lawn Kurta", UnitPrice: 2500, Quantity: 1, SelectedSize: "M"},
		},
		Subtotal:    2500,
		Shipping:    order.ShippingSnapshot{Cost: 300, Service: "Standard Delivery", EstimatedDays: 1, Currency: "PKR"},
		TotalAmount: 2800,
		Version:     1,
		UpdatedAt:   placed,
	}}
}

func DefaultCustomer() order.CustomerInfo {
	return order.CustomerInfo{
		FullName:    "Ayesha Khan",
		Email:       "ayesha@example.com",
		PhoneNumber: "+923001234567",
		Address:     "12 Clifton Block 5",
		City:        "Karachi",
		PostalCode:  "75600",
		Country:     "Pakistan",
	}
}

func (b *OrderBuilder) With(mutate func(*order.ReconstructParams)) *OrderBuilder {
	mutate(&b.p)
	return b
}

func (b *OrderBuilder) WithID(id uuid.UUID) *OrderBuilder {
	b.p.ID = id
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.p.Status = s
	return b
}

func (b *OrderBuilder) PlacedAt(t time.Time) *OrderBuilder {
	b.p.OrderDate = t
	b.p.UpdatedAt = t
	return b
}

func (b *OrderBuilder) WithEmail(email string) *OrderBuilder {
	b.p.Customer.Email = email
	return b
}

func (b *OrderBuilder) CancelledAt(t time.Time) *OrderBuilder {
	b.p.Status = order.StatusCancelled
	b.p.CancelledAt = &t
	return b
}

func (b *OrderBuilder) WithTracking(status order.TrackingStatus) *OrderBuilder {
	b.p.Tracking = &order.Tracking{
		TrackingNumber:    "KS-20260310-0001",
		Carrier:           "TCS",
		Status:            status,
		LabelURL:          "https://example.com/label.pdf",
		Cost:              300,
		EstimatedDelivery: b.p.OrderDate.AddDate(0, 0, 7),
		ShippedAt:         b.p.OrderDate,
	}
	return b
}

func (b *OrderBuilder) Build() *order.Order {
	return order.Reconstruct(b.p)
}

// FixedCodes returns the same code every time, or the queued codes in order.
type FixedCodes struct {
	Codes []string
	next  int
}

func (f *FixedCodes) Generate(time.Time) (string, error) {
	if len(f.Codes) == 0 {
		return "ORD-20260310090000-TESTAA", nil
	}
	c := f.Codes[f.next%len(f.Codes)]
	f.next++
	return c, nil
}

// CartLine returns a priced line with ample stock.
func CartLine(ref string, price int64, qty int) cart.Line {
	return cart.Line{
		ProductRef:     ref,
		Name:           "Item " + ref,
		UnitPrice:      price,
		Quantity:       qty,
		AvailableStock: 100,
	}
}
