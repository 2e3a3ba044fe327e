//go:build unit

package config_test

import (
	"testing"

	"storefront-orders/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "test defaults are valid", mutate: func(*config.Config) {}},
		{name: "postgres without credentials", mutate: func(c *config.Config) {
			c.Store.Driver = config.StoreDriverPostgres
			c.DB.User = ""
		}, wantErr: true},
		{name: "unknown store driver", mutate: func(c *config.Config) { c.Store.Driver = "mongo" }, wantErr: true},
		{name: "stripe without key", mutate: func(c *config.Config) { c.Payment.Provider = config.PaymentProviderStripe }, wantErr: true},
		{name: "negative cod limit", mutate: func(c *config.Config) { c.Checkout.CODLimit = -1 }, wantErr: true},
		{name: "zero cancellation window", mutate: func(c *config.Config) { c.Order.CancellationWindow = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STAFF_EMAILS", "ops@example.com,owner@example.com")
	t.Setenv("CHECKOUT_COD_LIMIT", "7500")

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"ops@example.com", "owner@example.com"}, cfg.JWT.StaffEmails)
	assert.Equal(t, int64(7500), cfg.Checkout.CODLimit)
	assert.Equal(t, "PKR", cfg.Checkout.Currency)
	assert.Zero(t, cfg.Order.StaffCancellationWindow)
}
