//go:build unit

package errs_test

import (
	"testing"

	"storefront-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errEmpty := errs.NewKind(errs.ErrValidation, "cart is empty")
	errFinal := errs.NewKind(errs.ErrInvalidState, "order already finalized")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "sentinel", err: errEmpty, want: errs.ErrValidation},
		{name: "wrapped sentinel", err: errs.Wrap(errFinal, "cancel order"), want: errs.ErrInvalidState},
		{name: "unclassified", err: errs.New("connection reset"), want: errs.ErrUpstream},
		{name: "nil", err: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIsKeepsSentinelIdentity(t *testing.T) {
	errA := errs.NewKind(errs.ErrInvalidState, "promotion is inactive")
	errB := errs.NewKind(errs.ErrInvalidState, "usage limit reached")

	wrapped := errs.Wrap(errA, "redeem")
	assert.True(t, errs.Is(wrapped, errA))
	assert.False(t, errs.Is(wrapped, errB))
	assert.True(t, errs.Is(wrapped, errs.ErrInvalidState))
}

func TestUpstream(t *testing.T) {
	raw := errs.New("dial tcp: timeout")
	err := errs.Upstream(raw, "load order")
	assert.True(t, errs.Is(err, errs.ErrUpstream))

	classified := errs.NewKind(errs.ErrNotFound, "order not found")
	err = errs.Upstream(classified, "load order")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.False(t, errs.Is(err, errs.ErrUpstream))
	assert.Nil(t, errs.Upstream(nil, "noop"))
}

func TestAttach(t *testing.T) {
	errDenied := errs.NewKind(errs.ErrUnauthorized, "denied")
	cause := errs.NewKind(errs.ErrValidation, "bad email")

	err := errs.Attach(errDenied, cause)
	assert.True(t, errs.Is(err, errDenied))
	assert.False(t, errs.Is(err, cause))
	assert.Equal(t, errs.ErrUnauthorized, errs.KindOf(err))
	assert.Same(t, errDenied, errs.Attach(errDenied, nil))
}
