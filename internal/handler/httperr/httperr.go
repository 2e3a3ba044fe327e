package httperr

import (
	"net/http"

	"storefront-orders/internal/domain/cart"
	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ReasonDetail struct {
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type kindMapping struct {
	kind   error
	status int
	reason string
}

var kindMappings = []kindMapping{
	{errs.ErrValidation, http.StatusBadRequest, "ValidationFailed"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrNotFound, http.StatusNotFound, "NotFound"},
	{errs.ErrInvalidState, http.StatusConflict, "InvalidState"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
}

type sentinelReason struct {
	err    error
	reason string
}

// Ordered most specific first; the first match wins.
var sentinelReasons = []sentinelReason{
	{promotion.ErrPromotionNotFound, string(promotion.ReasonNotFound)},
	{promotion.ErrInactive, string(promotion.ReasonInactive)},
	{promotion.ErrOutOfWindow, string(promotion.ReasonOutOfWindow)},
	{promotion.ErrBelowMinimum, string(promotion.ReasonBelowMinimum)},
	{promotion.ErrUsageExceeded, string(promotion.ReasonUsageExceeded)},
	{promotion.ErrDuplicateCode, "DuplicatePromotionCode"},
	{promotion.ErrInvalidCode, "InvalidPromotionCode"},
	{order.ErrCancellationWindowClosed, "CancellationWindowClosed"},
	{order.ErrInvalidStatusForCancellation, "InvalidStatusForCancellation"},
	{order.ErrOrderAlreadyFinalized, "OrderAlreadyFinalized"},
	{order.ErrInvalidTransition, "InvalidTransition"},
	{order.ErrShipmentExists, "ShipmentExists"},
	{order.ErrNoShipment, "NoShipment"},
	{order.ErrAlreadyHandedOver, "AlreadyHandedOver"},
	{order.ErrOrderNotFound, "OrderNotFound"},
	{order.ErrInvalidStatus, "InvalidStatus"},
	{order.ErrInvalidPaymentMethod, "InvalidPaymentMethod"},
	{order.ErrCODNotAvailable, "CODNotAvailable"},
	{order.ErrMissingPaymentIntent, "MissingPaymentIntent"},
	{order.ErrPaymentNotConfirmed, "PaymentNotConfirmed"},
	{order.ErrMissingCustomerField, "MissingCustomerField"},
	{cart.ErrEmptyCart, "EmptyCart"},
	{cart.ErrInvalidQuantity, "InvalidQuantity"},
	{cart.ErrInsufficientStock, "InsufficientStock"},
	{commands.ErrProductNotFound, "ProductNotFound"},
	{commands.ErrPaymentAmountMismatch, "PaymentAmountMismatch"},
	{commands.ErrIdempotencyKeyReused, "IdempotencyKeyReused"},
	{commands.ErrIdempotencyInProgress, "IdempotencyInProgress"},
	{shared.ErrConflictingUpdate, "ConflictingUpdate"},
}

// AbortWithKind responds with the status and reason derived from err's kind.
// Upstream and unclassified errors never expose their message.
func AbortWithKind(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (status int, msg string, detail any) {
	kind := errs.KindOf(err)
	for _, m := range kindMappings {
		if kind != m.kind {
			continue
		}
		reason := m.reason
		msg = err.Error()
		for _, s := range sentinelReasons {
			if errs.Is(err, s.err) {
				reason = s.reason
				msg = s.err.Error()
				break
			}
		}
		return m.status, msg, ReasonDetail{Reason: reason}
	}
	return http.StatusInternalServerError, "Internal server error", nil
}
