//go:build unit

package api_test

import (
	"log/slog"
	"testing"

	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/handler"
	"storefront-orders/internal/handler/api"
	"storefront-orders/internal/handler/middleware"
	"storefront-orders/internal/pkg/config"
	"storefront-orders/internal/usecase"
	"storefront-orders/tests/common/builder"
	commandsmock "storefront-orders/tests/mock/commands"
	queriesmock "storefront-orders/tests/mock/queries"
	usecasemock "storefront-orders/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	shopperToken = "shopper-token"
	staffToken   = "staff-token"
)

var shopper = builder.Shopper("ayesha@example.com")

// routerFixture wires the production route table over mocked use cases.
type routerFixture struct {
	router     *gin.Engine
	checkout   *commandsmock.MockCheckoutCommands
	evaluator  *commandsmock.MockPromotionEvaluator
	orderCmds  *commandsmock.MockOrderCommands
	adminCmds  *commandsmock.MockAdminCommands
	orderQ     *queriesmock.MockOrderQueries
	promotionQ *queriesmock.MockPromotionQueries
}

func newRouterFixture(t *testing.T, ctrl *gomock.Controller) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &routerFixture{
		router:     gin.New(),
		checkout:   commandsmock.NewMockCheckoutCommands(ctrl),
		evaluator:  commandsmock.NewMockPromotionEvaluator(ctrl),
		orderCmds:  commandsmock.NewMockOrderCommands(ctrl),
		adminCmds:  commandsmock.NewMockAdminCommands(ctrl),
		orderQ:     queriesmock.NewMockOrderQueries(ctrl),
		promotionQ: queriesmock.NewMockPromotionQueries(ctrl),
	}

	resolver := usecasemock.NewMockIdentityResolver(ctrl)
	resolver.EXPECT().Resolve(shopperToken).Return(shopper, nil).AnyTimes()
	resolver.EXPECT().Resolve(staffToken).Return(builder.Staff(), nil).AnyTimes()
	resolver.EXPECT().Resolve(gomock.Any()).Return(user.Identity{}, usecase.ErrInvalidCredentials).AnyTimes()

	cfg := config.NewTestConfig()
	err := handler.NewRouter(
		f.router,
		cfg,
		middleware.NewLogger(cfg.Log),
		api.NewStorefrontHandler(shipping.NewDefaultEstimator(slog.Default()), f.evaluator, f.checkout),
		api.NewOrderHandler(f.checkout, f.orderCmds, f.orderQ),
		api.NewAdminHandler(f.adminCmds, f.orderQ, f.promotionQ),
		middleware.NewAuthMiddleware(resolver, slog.Default()),
	)
	require.NoError(t, err)
	return f
}
