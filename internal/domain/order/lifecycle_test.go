//go:build unit

package order_test

import (
	"testing"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const window = 24 * time.Hour

func TestCancelByShopper(t *testing.T) {
	t.Run("inside the window", func(t *testing.T) {
		o := builder.NewOrderBuilder().PlacedAt(placedAt).Build()
		now := placedAt.Add(23 * time.Hour)

		require.NoError(t, o.CancelByShopper(now, window))
		assert.Equal(t, order.StatusCancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, now, *o.CancelledAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	windowCases := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"one second before", window - time.Second, nil},
		{"exactly 24h", window, order.ErrCancellationWindowClosed},
		{"24h and one second", window + time.Second, order.ErrCancellationWindowClosed},
		{"25h", 25 * time.Hour, order.ErrCancellationWindowClosed},
	}
	for _, tc := range windowCases {
		t.Run(tc.name, func(t *testing.T) {
			o := builder.NewOrderBuilder().PlacedAt(placedAt).Build()
			err := o.CancelByShopper(placedAt.Add(tc.elapsed), window)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, order.StatusPending, o.Status())
			assert.Nil(t, o.CancelledAt())
		})
	}

	precedence := []struct {
		name    string
		build   func() *order.Order
		wantErr error
	}{
		{"completed beats closed window", func() *order.Order {
			return builder.NewOrderBuilder().WithStatus(order.StatusCompleted).Build()
		}, order.ErrOrderAlreadyFinalized},
		{"already cancelled", func() *order.Order {
			return builder.NewOrderBuilder().CancelledAt(placedAt.Add(time.Hour)).Build()
		}, order.ErrOrderAlreadyFinalized},
		{"handed over", func() *order.Order {
			return builder.NewOrderBuilder().WithStatus(order.StatusProcessing).WithTracking(order.TrackingInTransit).Build()
		}, order.ErrInvalidStatusForCancellation},
		{"delivered", func() *order.Order {
			return builder.NewOrderBuilder().WithStatus(order.StatusProcessing).WithTracking(order.TrackingDelivered).Build()
		}, order.ErrInvalidStatusForCancellation},
	}
	for _, tc := range precedence {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.build()
			before := o.Snapshot()
			err := o.CancelByShopper(placedAt.Add(48*time.Hour), window)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, errs.Is(err, errs.ErrInvalidState))
			assert.Empty(t, cmp.Diff(before, o.Snapshot()))
		})
	}

	t.Run("label printed but not handed over is still cancellable", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusProcessing).WithTracking(order.TrackingPending).Build()
		assert.NoError(t, o.CancelByShopper(placedAt.Add(time.Hour), window))
	})
}

func TestTransitionByStaff(t *testing.T) {
	all := []order.Status{order.StatusPending, order.StatusProcessing, order.StatusCompleted, order.StatusCancelled}
	allowed := map[order.Status]map[order.Status]bool{
		order.StatusPending:    {order.StatusProcessing: true, order.StatusCompleted: true, order.StatusCancelled: true},
		order.StatusProcessing: {order.StatusCompleted: true, order.StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			o := builder.NewOrderBuilder().WithStatus(from).Build()
			before := o.Snapshot()
			now := placedAt.Add(72 * time.Hour)
			err := o.TransitionByStaff(to, now, 0)
			if allowed[from][to] {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, o.Status())
				assert.Equal(t, to == order.StatusCancelled, o.CancelledAt() != nil)
				continue
			}
			wantErr := order.ErrInvalidTransition
			if from.IsTerminal() {
				wantErr = order.ErrOrderAlreadyFinalized
			}
			assert.ErrorIs(t, err, wantErr, "%s -> %s", from, to)
			assert.Empty(t, cmp.Diff(before, o.Snapshot()))
		}
	}

	t.Run("unknown target", func(t *testing.T) {
		o := builder.NewOrderBuilder().Build()
		assert.ErrorIs(t, o.TransitionByStaff("shipped", placedAt, 0), order.ErrInvalidStatus)
	})

	t.Run("configured staff window bounds cancellation only", func(t *testing.T) {
		o := builder.NewOrderBuilder().PlacedAt(placedAt).Build()
		late := placedAt.Add(49 * time.Hour)
		assert.ErrorIs(t, o.TransitionByStaff(order.StatusCancelled, late, 48*time.Hour), order.ErrCancellationWindowClosed)
		assert.NoError(t, o.TransitionByStaff(order.StatusProcessing, late, 48*time.Hour))
		assert.NoError(t, o.TransitionByStaff(order.StatusCancelled, placedAt.Add(47*time.Hour), 48*time.Hour))
	})
}

func TestShipment(t *testing.T) {
	tracking := order.Tracking{
		TrackingNumber: "KS-20260310-0042",
		Carrier:        "TCS",
		Status:         order.TrackingDelivered,
		LabelURL:       "https://example.com/label.pdf",
		Cost:           300,
	}

	t.Run("attach moves pending to processing", func(t *testing.T) {
		o := builder.NewOrderBuilder().Build()
		now := placedAt.Add(time.Hour)
		require.NoError(t, o.AttachShipment(tracking, now))
		assert.Equal(t, order.StatusProcessing, o.Status())
		got := o.Tracking()
		require.NotNil(t, got)
		assert.Equal(t, order.TrackingPending, got.Status)
		assert.Equal(t, now, got.ShippedAt)

		assert.ErrorIs(t, o.AttachShipment(tracking, now), order.ErrShipmentExists)
	})

	t.Run("attach refused for terminal orders", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusCompleted).Build()
		assert.ErrorIs(t, o.AttachShipment(tracking, placedAt), order.ErrOrderAlreadyFinalized)
	})

	t.Run("hand over", func(t *testing.T) {
		o := builder.NewOrderBuilder().Build()
		assert.ErrorIs(t, o.MarkHandedOver(placedAt), order.ErrNoShipment)

		require.NoError(t, o.AttachShipment(tracking, placedAt))
		at := placedAt.Add(2 * time.Hour)
		require.NoError(t, o.MarkHandedOver(at))
		assert.True(t, o.IsHandedOver())
		assert.Equal(t, order.TrackingInTransit, o.Tracking().Status)
		assert.Equal(t, at, *o.Tracking().HandedOverAt)

		assert.ErrorIs(t, o.MarkHandedOver(at), order.ErrAlreadyHandedOver)
		assert.ErrorIs(t, o.CancelByShopper(at, window), order.ErrInvalidStatusForCancellation)
	})

	t.Run("hand over refused for terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			o := builder.NewOrderBuilder().WithStatus(status).WithTracking(order.TrackingPending).Build()
			before := o.Snapshot()
			assert.ErrorIs(t, o.MarkHandedOver(placedAt), order.ErrOrderAlreadyFinalized, status.String())
			assert.Empty(t, cmp.Diff(before, o.Snapshot()))
		}
	})
}

func TestVisibilityPolicy(t *testing.T) {
	policy := order.NewVisibilityPolicy(10 * time.Minute)
	cancelledAt := placedAt.Add(time.Hour)
	cancelled := builder.NewOrderBuilder().CancelledAt(cancelledAt).Build()
	active := builder.NewOrderBuilder().Build()

	assert.True(t, policy.VisibleToShopper(active, cancelledAt.Add(24*time.Hour)))
	assert.True(t, policy.VisibleToShopper(cancelled, cancelledAt.Add(10*time.Minute-time.Second)))
	assert.False(t, policy.VisibleToShopper(cancelled, cancelledAt.Add(10*time.Minute)))

	got := policy.Filter([]*order.Order{cancelled, active}, cancelledAt.Add(time.Hour))
	require.Len(t, got, 1)
	assert.Equal(t, active.ID(), got[0].ID())
}

func TestIsOwnedBy(t *testing.T) {
	o := builder.NewOrderBuilder().WithEmail("ayesha@example.com").Build()
	mine, err := user.NewEmail("AYESHA@example.com")
	require.NoError(t, err)
	other, err := user.NewEmail("bilal@example.com")
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(mine))
	assert.False(t, o.IsOwnedBy(other))
}

func TestMatchesSearch(t *testing.T) {
	o := builder.NewOrderBuilder().Build()

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"abcdef", true},
		{"ORD-20260310", true},
		{"ayesha k", true},
		{"KHAN", true},
		{"@example.com", true},
		{" ayesha@ ", true},
		{"bilal", false},
		{"karachi", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.MatchesSearch(tt.term), "%q", tt.term)
	}
}
