package api

import (
	"net/http"
	"strings"

	reqdto "storefront-orders/internal/handler/dto/request"
	resdto "storefront-orders/internal/handler/dto/response"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type OrderHandler struct {
	checkout commands.CheckoutCommands
	cmds     commands.OrderCommands
	q        queries.OrderQueries
}

func NewOrderHandler(checkout commands.CheckoutCommands, cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{checkout: checkout, cmds: cmds, q: q}
}

// @Summary Place order
// @Description Place an order for the authenticated shopper. Retries with the same Idempotency-Key replay the first result.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID idempotency key"
// @Param request body reqdto.PlaceOrderRequest true "Order"
// @Success 201 {object} queries.OrderView
// @Success 200 {object} queries.OrderView "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var key *uuid.UUID
	if raw := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader)); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		key = &parsed
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), identity, req.ToInput(), key)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+result.Order.ID.String())
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, result.Order)
		return
	}
	c.JSON(http.StatusCreated, result.Order)
}

// @Summary List own orders
// @Description List the shopper's orders. Cancelled orders drop out after a grace period unless include=all.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param include query string false "Pass 'all' to include hidden cancelled orders"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListOwnOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.q.ListForShopper(c.Request.Context(), identity, q.IncludeAll())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get own order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.GetForShopper(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel own order
// @Description Cancel within the cancellation window while the order is pending or processing and not yet handed to the courier
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.cmds.CancelByShopper(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Track own order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.TrackingStatusView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/tracking [get]
func (h *OrderHandler) Tracking(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.TrackingForShopper(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
