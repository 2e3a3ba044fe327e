package api

import (
	"net/http"
	"strings"

	"storefront-orders/internal/domain/shipping"
	reqdto "storefront-orders/internal/handler/dto/request"
	resdto "storefront-orders/internal/handler/dto/response"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the anonymous checkout helpers and payment intents.
type StorefrontHandler struct {
	estimator shipping.Estimator
	evaluator commands.PromotionEvaluator
	checkout  commands.CheckoutCommands
}

func NewStorefrontHandler(estimator shipping.Estimator, evaluator commands.PromotionEvaluator, checkout commands.CheckoutCommands) *StorefrontHandler {
	return &StorefrontHandler{estimator: estimator, evaluator: evaluator, checkout: checkout}
}

// @Summary Estimate shipping
// @Description Estimate delivery cost and days for a city and item count
// @Tags checkout
// @Produce json
// @Param city query string false "Destination city"
// @Param items query int false "Number of items"
// @Success 200 {object} resdto.ShippingEstimateResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shipping/estimate [get]
func (h *StorefrontHandler) EstimateShipping(c *gin.Context) {
	var q reqdto.ShippingEstimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote := h.estimator.Estimate(strings.TrimSpace(q.City), q.ItemCount())
	c.JSON(http.StatusOK, resdto.FromShippingQuote(quote))
}

// @Summary Validate promotion code
// @Description Preview a promotion code against a subtotal without redeeming it
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromotionRequest true "Promotion code and subtotal"
// @Success 200 {object} resdto.PromotionEvaluationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/promotions/validate [post]
func (h *StorefrontHandler) ValidatePromotion(c *gin.Context) {
	var req reqdto.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.evaluator.Preview(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvaluation(result))
}

// @Summary Quote checkout
// @Description Price a cart with shipping, an optional promotion preview and the allowed payment methods
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Cart"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/checkout/quote [post]
func (h *StorefrontHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.checkout.Quote(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(result))
}

// @Summary Create payment intent
// @Description Create a card payment intent for the quoted cart total
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Cart"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/payments/intents [post]
func (h *StorefrontHandler) CreatePaymentIntent(c *gin.Context) {
	if _, ok := identityOrAbort(c); !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.checkout.CreatePaymentIntent(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentIntent(result))
}
