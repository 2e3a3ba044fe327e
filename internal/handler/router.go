package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-orders/internal/handler/api"
	reqdto "storefront-orders/internal/handler/dto/request"
	"storefront-orders/internal/handler/middleware"
	"storefront-orders/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Storefront *api.StorefrontHandler
	Orders     *api.OrderHandler
	Admin      *api.AdminHandler
	Auth       *middleware.AuthMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	storefront *api.StorefrontHandler,
	orders *api.OrderHandler,
	admin *api.AdminHandler,
	auth *middleware.AuthMiddleware,
) error {
	h := Handlers{Storefront: storefront, Orders: orders, Admin: admin, Auth: auth}
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/shipping/estimate", Handler: h.Storefront.EstimateShipping},
			{Method: http.MethodPost, Path: "/promotions/validate", Handler: h.Storefront.ValidatePromotion},
			{Method: http.MethodPost, Path: "/checkout/quote", Handler: h.Storefront.Quote},
			{Method: http.MethodPost, Path: "/payments/intents", Handler: h.Storefront.CreatePaymentIntent, Mw: []gin.HandlerFunc{h.Auth.RequireAuth()}},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(h.Auth.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Orders.Place},
				{Method: http.MethodGet, Path: "", Handler: h.Orders.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Orders.Cancel},
				{Method: http.MethodGet, Path: "/:id/tracking", Handler: h.Orders.Tracking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(h.Auth.RequireAuth(), h.Auth.RequireStaff())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Admin.Summary},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Admin.GetOrder},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Admin.UpdateOrderStatus},
				{Method: http.MethodPost, Path: "/orders/:id/shipment", Handler: h.Admin.GenerateShipment},
				{Method: http.MethodPost, Path: "/orders/:id/handover", Handler: h.Admin.MarkHandedOver},
				{Method: http.MethodGet, Path: "/orders/:id/tracking", Handler: h.Admin.Tracking},
				{Method: http.MethodGet, Path: "/promotions", Handler: h.Admin.ListPromotions},
				{Method: http.MethodPost, Path: "/promotions", Handler: h.Admin.CreatePromotion},
				{Method: http.MethodPatch, Path: "/promotions/:id/active", Handler: h.Admin.SetPromotionActive},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
