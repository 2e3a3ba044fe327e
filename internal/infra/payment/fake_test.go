//go:build unit

package payment_test

import (
	"context"
	"testing"

	"storefront-orders/internal/infra/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("manual confirmation", func(t *testing.T) {
		g := payment.NewFakeGateway(false)
		intent, err := g.CreateIntent(ctx, 395000, "PKR")
		require.NoError(t, err)
		assert.Equal(t, "pkr", intent.Currency)
		assert.NotEmpty(t, intent.ClientSecret)

		conf, err := g.Confirmation(ctx, intent.ID)
		require.NoError(t, err)
		assert.False(t, conf.Confirmed)

		require.NoError(t, g.Confirm(intent.ID))
		conf, err = g.Confirmation(ctx, intent.ID)
		require.NoError(t, err)
		assert.True(t, conf.Confirmed)
		assert.Equal(t, int64(395000), conf.AmountMinor)
	})

	t.Run("auto confirm", func(t *testing.T) {
		g := payment.NewFakeGateway(true)
		intent, err := g.CreateIntent(ctx, 100, "PKR")
		require.NoError(t, err)
		conf, err := g.Confirmation(ctx, intent.ID)
		require.NoError(t, err)
		assert.True(t, conf.Confirmed)
	})

	t.Run("unknown intent", func(t *testing.T) {
		g := payment.NewFakeGateway(true)
		_, err := g.Confirmation(ctx, "pi_missing")
		assert.ErrorIs(t, err, payment.ErrUnknownIntent)
		assert.ErrorIs(t, g.Confirm("pi_missing"), payment.ErrUnknownIntent)
	})
}
