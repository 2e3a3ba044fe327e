//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

package shared

import (
	"context"
	"time"

	"storefront-orders/internal/domain/order"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountMinor  int64
	Currency     string
}

type PaymentConfirmation struct {
	Confirmed   bool
	AmountMinor int64
	Currency    string
}

// PaymentGateway is the card processor. Amounts are in minor units.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*PaymentIntent, error)
	Confirmation(ctx context.Context, intentID string) (*PaymentConfirmation, error)
}

type Label struct {
	TrackingNumber    string
	Carrier           string
	LabelURL          string
	Cost              int64
	EstimatedDelivery time.Time
}

type TrackingInfo struct {
	Status   string
	Location string
}

// LabelProvider is the courier integration.
type LabelProvider interface {
	GenerateLabel(ctx context.Context, o *order.Order) (*Label, error)
	TrackingStatus(ctx context.Context, trackingNumber string) (*TrackingInfo, error)
}

const (
	EventOrderPlaced          = "order.placed"
	EventOrderCancelled       = "order.cancelled"
	EventOrderStatusChanged   = "order.status_changed"
	EventOrderShipmentCreated = "order.shipment_created"
	EventOrderHandedOver      = "order.handed_over"
	EventPromotionCreated     = "promotion.created"
	EventPromotionToggled     = "promotion.toggled"
)

type Event struct {
	Name       string         `json:"name"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

// EventPublisher delivers events after commit. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
