package api

import (
	"net/http"
	"strings"

	"storefront-orders/internal/domain/order"
	reqdto "storefront-orders/internal/handler/dto/request"
	resdto "storefront-orders/internal/handler/dto/response"
	"storefront-orders/internal/handler/httperr"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back office. Routes are mounted behind RequireStaff,
// and the use cases check the staff flag again.
type AdminHandler struct {
	cmds       commands.AdminCommands
	orders     queries.OrderQueries
	promotions queries.PromotionQueries
}

func NewAdminHandler(cmds commands.AdminCommands, orders queries.OrderQueries, promotions queries.PromotionQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, orders: orders, promotions: promotions}
}

// @Summary List orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, processing, completed or cancelled"
// @Param search query string false "Order code, customer name or email fragment"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	filter := queries.StaffOrderFilter{Search: strings.TrimSpace(q.Search)}
	if q.Status != "" {
		st := order.Status(q.Status)
		filter.Status = &st
	}
	views, err := h.orders.ListForStaff(c.Request.Context(), identity, filter)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Order dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 403 {object} httperr.Response
// @Router /api/admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	view, err := h.orders.Summary(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.orders.GetForStaff(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update order status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateOrderStatus(c.Request.Context(), identity, id, req.Status)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Generate shipment label
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 201 {object} queries.OrderView
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/orders/{id}/shipment [post]
func (h *AdminHandler) GenerateShipment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.cmds.GenerateShipment(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Mark shipment handed over
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 409 {object} httperr.Response
// @Router /api/admin/orders/{id}/handover [post]
func (h *AdminHandler) MarkHandedOver(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.cmds.MarkHandedOver(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Track order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.TrackingStatusView
// @Failure 409 {object} httperr.Response
// @Router /api/admin/orders/{id}/tracking [get]
func (h *AdminHandler) Tracking(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.orders.TrackingForStaff(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List promotions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Code or name fragment"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/promotions [get]
func (h *AdminHandler) ListPromotions(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListPromotionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.promotions.List(c.Request.Context(), identity, strings.TrimSpace(q.Search))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromPromotionViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create promotion
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreatePromotion(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondPromotion(c, http.StatusCreated, view)
}

// @Summary Toggle promotion
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.SetPromotionActiveRequest true "Active flag"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/promotions/{id}/active [patch]
func (h *AdminHandler) SetPromotionActive(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.SetPromotionActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetPromotionActive(c.Request.Context(), identity, id, *req.IsActive)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondPromotion(c, http.StatusOK, view)
}

func (h *AdminHandler) respondPromotion(c *gin.Context, status int, view *queries.PromotionView) {
	res, err := resdto.FromPromotionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
