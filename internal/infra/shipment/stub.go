package shipment

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/usecase/shared"
)

const (
	stubCarrier      = "TCS"
	stubCost         = 300
	stubDeliveryDays = 7
	stubLabelURL     = "https://example.com/label.pdf"
	stubLocation     = "Local Sorting Facility"
)

// StubProvider issues labels locally until a courier integration exists.
// Tracking always reports the parcel in transit at the sorting facility.
type StubProvider struct {
	clock  clock.Clock
	logger *slog.Logger
}

func NewStubProvider(clk clock.Clock, logger *slog.Logger) *StubProvider {
	return &StubProvider{clock: clk, logger: logger}
}

func (p *StubProvider) GenerateLabel(_ context.Context, o *order.Order) (*shared.Label, error) {
	now := p.clock.Now()
	number, err := trackingNumber(now.Format("20060102"))
	if err != nil {
		return nil, err
	}
	p.logger.Info("shipping label generated", "order_code", o.Code(), "tracking_number", number)
	return &shared.Label{
		TrackingNumber:    number,
		Carrier:           stubCarrier,
		LabelURL:          stubLabelURL,
		Cost:              stubCost,
		EstimatedDelivery: now.AddDate(0, 0, stubDeliveryDays),
	}, nil
}

func (p *StubProvider) TrackingStatus(_ context.Context, _ string) (*shared.TrackingInfo, error) {
	return &shared.TrackingInfo{
		Status:   order.TrackingInTransit.String(),
		Location: stubLocation,
	}, nil
}

// trackingNumber returns KS-<date>-NNNN.
func trackingNumber(date string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate tracking number: %w", err)
	}
	return fmt.Sprintf("KS-%s-%04d", date, n.Int64()), nil
}
