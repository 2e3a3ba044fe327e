//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-orders/internal/pkg/config"
	"storefront-orders/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, email, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken("usr_"+email, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ShopperToken(t *testing.T, email string) string {
	return h.GenerateToken(t, email, "shopper")
}

func (h *JWTHelper) StaffToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, h.cfg.StaffEmails, "no staff emails configured")
	return h.GenerateToken(t, h.cfg.StaffEmails[0], "staff")
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken("usr_"+email, email, "shopper")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
