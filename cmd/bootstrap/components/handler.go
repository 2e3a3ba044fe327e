package components

import (
	"storefront-orders/internal/handler"
	"storefront-orders/internal/handler/api"
	"storefront-orders/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStorefrontHandler,
		api.NewOrderHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
