//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	reqdto "storefront-orders/internal/handler/dto/request"
	resdto "storefront-orders/internal/handler/dto/response"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"
	"storefront-orders/tests/common/builder"
	"storefront-orders/tests/common/httptest"
	"storefront-orders/tests/common/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	f         *routerFixture
	orderView *queries.OrderView
	promoView *queries.PromotionView
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.f = newRouterFixture(s.T(), s.mockCtrl)
	s.orderView = queries.NewOrderView(builder.NewOrderBuilder().Build())
	s.promoView = queries.NewPromotionView(builder.NewPromotionBuilder().Build())
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func createPromotionRequest() reqdto.CreatePromotionRequest {
	limit := int32(100)
	return reqdto.CreatePromotionRequest{
		Code:          "EID25",
		Name:          "Eid sale",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(25),
		MinPurchase:   2000,
		StartDate:     time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		UsageLimit:    &limit,
	}
}

func (s *AdminHandlerTestSuite) TestStaffOnly() {
	routes := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/admin/summary", nil},
		{http.MethodGet, "/api/admin/orders", nil},
		{http.MethodGet, "/api/admin/orders/" + s.orderView.ID.String(), nil},
		{http.MethodPatch, "/api/admin/orders/" + s.orderView.ID.String() + "/status", reqdto.UpdateOrderStatusRequest{Status: "processing"}},
		{http.MethodPost, "/api/admin/orders/" + s.orderView.ID.String() + "/shipment", nil},
		{http.MethodPost, "/api/admin/orders/" + s.orderView.ID.String() + "/handover", nil},
		{http.MethodGet, "/api/admin/orders/" + s.orderView.ID.String() + "/tracking", nil},
		{http.MethodGet, "/api/admin/promotions", nil},
		{http.MethodPost, "/api/admin/promotions", createPromotionRequest()},
		{http.MethodPatch, "/api/admin/promotions/" + s.promoView.ID.String() + "/active", map[string]any{"isActive": false}},
	}

	for _, r := range routes {
		s.Run("403 for shoppers: "+r.method+" "+r.path, func() {
			rec := httptest.PerformRequest(s.T(), s.f.router, r.method, r.path, r.body, shopperToken)
			httptest.AssertErrorReason(s.T(), rec, http.StatusForbidden, "Forbidden")
		})
		s.Run("401 without a token: "+r.method+" "+r.path, func() {
			rec := httptest.PerformRequest(s.T(), s.f.router, r.method, r.path, r.body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		})
	}
}

// ================================================================================
// Orders
// ================================================================================

func (s *AdminHandlerTestSuite) TestListOrders() {
	s.Run("success: filters by status", func() {
		processing := order.StatusProcessing
		s.f.orderQ.EXPECT().ListForStaff(gomock.Any(), builder.Staff(), queries.StaffOrderFilter{Status: &processing}).
			Return([]*queries.OrderView{s.orderView}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/orders?status=processing", nil, staffToken)

		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
	})

	s.Run("success: search is trimmed and combined with status", func() {
		pending := order.StatusPending
		s.f.orderQ.EXPECT().ListForStaff(gomock.Any(), builder.Staff(), queries.StaffOrderFilter{Status: &pending, Search: "ayesha"}).
			Return([]*queries.OrderView{s.orderView}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/orders?status=pending&search=%20ayesha%20", nil, staffToken)

		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
	})

	s.Run("success: no filter", func() {
		s.f.orderQ.EXPECT().ListForStaff(gomock.Any(), builder.Staff(), queries.StaffOrderFilter{}).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/orders", nil, staffToken)

		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Count)
		s.NotNil(body.Orders)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/orders?status=shipped", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on overlong search", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/orders?search="+strings.Repeat("a", 81), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AdminHandlerTestSuite) TestSummary() {
	s.Run("success", func() {
		s.f.orderQ.EXPECT().Summary(gomock.Any(), builder.Staff()).Return(&queries.DashboardView{
			TotalOrders:       3,
			PendingOrders:     1,
			CompletedOrders:   1,
			CancelledOrders:   1,
			TotalRevenue:      5600,
			AverageOrderValue: 2800,
			ItemsSold:         2,
			RecentOrders:      []*queries.OrderView{s.orderView},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/summary", nil, staffToken)

		var body queries.DashboardView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.TotalOrders)
		s.Equal(int64(5600), body.TotalRevenue)
		s.Require().Len(body.RecentOrders, 1)
		s.Equal(s.orderView.ID, body.RecentOrders[0].ID)
	})

	s.Run("error: 500 on store failure", func() {
		s.f.orderQ.EXPECT().Summary(gomock.Any(), builder.Staff()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/summary", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateOrderStatus() {
	url := "/api/admin/orders/" + s.orderView.ID.String() + "/status"

	s.Run("success", func() {
		updated := *s.orderView
		updated.Status = "processing"
		updated.Version = 2
		s.f.adminCmds.EXPECT().UpdateOrderStatus(gomock.Any(), builder.Staff(), s.orderView.ID, "processing").Return(&updated, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, reqdto.UpdateOrderStatusRequest{Status: "processing"}, staffToken)

		var body queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("processing", body.Status)
		s.Equal(int32(2), body.Version)
	})

	s.Run("error: 400 on invalid target", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing status", mutate: testutil.Field("status", nil)},
			{name: "unknown status", mutate: testutil.Field("status", "shipped")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqdto.UpdateOrderStatusRequest{Status: "processing"}, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, body, staffToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: lifecycle and concurrency failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
			reason string
		}{
			{name: "terminal order", err: order.ErrOrderAlreadyFinalized, status: http.StatusConflict, reason: "OrderAlreadyFinalized"},
			{name: "backwards transition", err: order.ErrInvalidTransition, status: http.StatusConflict, reason: "InvalidTransition"},
			{name: "lost update", err: shared.ErrConflictingUpdate, status: http.StatusConflict, reason: "ConflictingUpdate"},
			{name: "unknown order", err: order.ErrOrderNotFound, status: http.StatusNotFound, reason: "OrderNotFound"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.f.adminCmds.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, reqdto.UpdateOrderStatusRequest{Status: "completed"}, staffToken)
				httptest.AssertErrorReason(s.T(), rec, tc.status, tc.reason)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestShipment() {
	base := "/api/admin/orders/" + s.orderView.ID.String()
	shipped := queries.NewOrderView(builder.NewOrderBuilder().WithID(s.orderView.ID).WithTracking(order.TrackingPending).Build())

	s.Run("success: generate returns 201 with tracking", func() {
		s.f.adminCmds.EXPECT().GenerateShipment(gomock.Any(), builder.Staff(), s.orderView.ID).Return(shipped, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, base+"/shipment", nil, staffToken)

		var body queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Tracking)
		s.Equal("KS-20260310-0001", body.Tracking.TrackingNumber)
	})

	s.Run("error: 409 when a shipment exists", func() {
		s.f.adminCmds.EXPECT().GenerateShipment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, order.ErrShipmentExists)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, base+"/shipment", nil, staffToken)
		httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, "ShipmentExists")
	})

	s.Run("error: 500 when the courier fails", func() {
		s.f.adminCmds.EXPECT().GenerateShipment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, shared.ErrUpstreamFailure)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, base+"/shipment", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("success: hand-over", func() {
		s.f.adminCmds.EXPECT().MarkHandedOver(gomock.Any(), builder.Staff(), s.orderView.ID).Return(shipped, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, base+"/handover", nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: hand-over twice", func() {
		s.f.adminCmds.EXPECT().MarkHandedOver(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, order.ErrAlreadyHandedOver)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, base+"/handover", nil, staffToken)
		httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, "AlreadyHandedOver")
	})

	s.Run("success: tracking", func() {
		s.f.orderQ.EXPECT().TrackingForStaff(gomock.Any(), builder.Staff(), s.orderView.ID).
			Return(&queries.TrackingStatusView{OrderID: s.orderView.ID, Status: "in_transit"}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, base+"/tracking", nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// Promotions
// ================================================================================

func (s *AdminHandlerTestSuite) TestListPromotions() {
	s.f.promotionQ.EXPECT().List(gomock.Any(), builder.Staff(), "save").Return([]*queries.PromotionView{s.promoView}, nil)

	rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/api/admin/promotions?search=save", nil, staffToken)

	var body resdto.PromotionListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Equal(1, body.Count)
	s.Equal("SAVE10", body.Promotions[0].Code)
	s.Equal("10", body.Promotions[0].DiscountValue)
	s.Equal(s.promoView.ID, body.Promotions[0].ID)
}

func (s *AdminHandlerTestSuite) TestCreatePromotion() {
	url := "/api/admin/promotions"
	reqBody := createPromotionRequest()

	s.Run("success: defaults isActive to true", func() {
		s.f.adminCmds.EXPECT().CreatePromotion(gomock.Any(), builder.Staff(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, in commands.CreatePromotionInput) (*queries.PromotionView, error) {
				s.True(in.IsActive)
				s.True(decimal.NewFromInt(25).Equal(in.DiscountValue))
				return s.promoView, nil
			})

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, staffToken)

		var body resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.promoView.Code, body.Code)
	})

	s.Run("success: accepts a numeric discount value", func() {
		s.f.adminCmds.EXPECT().CreatePromotion(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.promoView, nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("discountValue", 25))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, body, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "code too short", mutate: testutil.Field("code", "AB")},
			{name: "code with symbols", mutate: testutil.Field("code", "SAVE-10")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "unknown discount type", mutate: testutil.Field("discountType", "bogo")},
			{name: "negative minimum", mutate: testutil.Field("minPurchase", -1)},
			{name: "zero usage limit", mutate: testutil.Field("usageLimit", 0)},
			{name: "missing start date", mutate: testutil.Field("startDate", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), staffToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: domain rejections", func() {
		cases := []struct {
			name   string
			err    error
			status int
			reason string
		}{
			{name: "duplicate code", err: promotion.ErrDuplicateCode, status: http.StatusConflict, reason: "DuplicatePromotionCode"},
			{name: "window inverted", err: promotion.ErrInvalidWindow, status: http.StatusBadRequest, reason: "ValidationFailed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.f.adminCmds.EXPECT().CreatePromotion(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, staffToken)
				httptest.AssertErrorReason(s.T(), rec, tc.status, tc.reason)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestSetPromotionActive() {
	url := "/api/admin/promotions/" + s.promoView.ID.String() + "/active"

	s.Run("success", func() {
		toggled := *s.promoView
		toggled.IsActive = false
		toggled.Version = 2
		s.f.adminCmds.EXPECT().SetPromotionActive(gomock.Any(), builder.Staff(), s.promoView.ID, false).Return(&toggled, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, map[string]any{"isActive": false}, staffToken)

		var body resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsActive)
		s.Equal(int32(2), body.Version)
	})

	s.Run("error: 400 without the flag", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, map[string]any{}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown promotion", func() {
		s.f.adminCmds.EXPECT().SetPromotionActive(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil, promotion.ErrPromotionNotFound)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPatch, url, map[string]any{"isActive": true}, staffToken)
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "NotFound")
	})
}
