//go:build unit

package shipment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-orders/internal/infra/shipment"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubProvider(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	p := shipment.NewStubProvider(clock.NewMockClock(now), slog.New(slog.NewTextHandler(io.Discard, nil)))

	label, err := p.GenerateLabel(context.Background(), builder.NewOrderBuilder().Build())
	require.NoError(t, err)
	assert.Regexp(t, `^KS-20260310-\d{4}$`, label.TrackingNumber)
	assert.Equal(t, "TCS", label.Carrier)
	assert.Equal(t, int64(300), label.Cost)
	assert.Equal(t, now.AddDate(0, 0, 7), label.EstimatedDelivery)

	info, err := p.TrackingStatus(context.Background(), label.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, "in_transit", info.Status)
	assert.Equal(t, "Local Sorting Facility", info.Location)
}
