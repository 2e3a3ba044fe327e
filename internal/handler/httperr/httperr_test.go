//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantReason string
	}{
		{"usage exceeded", promotion.ErrUsageExceeded, http.StatusConflict, "promotion usage limit reached", "UsageExceeded"},
		{"wrapped window closed", errs.Wrap(order.ErrCancellationWindowClosed, "cancel order"), http.StatusConflict, "cancellation window has closed", "CancellationWindowClosed"},
		{"conflicting update", shared.ErrConflictingUpdate, http.StatusConflict, "record was modified by another request", "ConflictingUpdate"},
		{"kind without reason", promotion.ErrInvalidWindow, http.StatusBadRequest, "start date must not be after end date", "ValidationFailed"},
		{"forbidden", errs.NewKind(errs.ErrForbidden, "nope"), http.StatusForbidden, "nope", "Forbidden"},
		{"attached cause keeps the sentinel", errs.Attach(order.ErrOrderNotFound, errs.New("no rows")), http.StatusNotFound, "order not found", "OrderNotFound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, detail := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, httperr.ReasonDetail{Reason: tt.wantReason}, detail)
		})
	}
}

func TestClassifyHidesUpstreamFailures(t *testing.T) {
	for _, err := range []error{
		errs.New("dial tcp: connection refused"),
		errs.Upstream(errs.New("stripe: 503"), "create intent"),
		shared.ErrUpstreamFailure,
	} {
		status, msg, detail := httperr.Classify(err)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error", msg)
		assert.Nil(t, detail)
	}
}
