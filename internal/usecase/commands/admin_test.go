//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/pkg/ptr"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"
	"storefront-orders/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

type AdminTestSuite struct {
	suite.Suite
	f     *fixture
	ctx   context.Context
}

func (s *AdminTestSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.ctx = context.Background()
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (s *AdminTestSuite) seed(b *builder.OrderBuilder) *order.Order {
	o := b.Build()
	s.f.store.SeedOrder(o)
	return o
}

func (s *AdminTestSuite) stored(o *order.Order) *order.Order {
	got, err := s.f.store.FindByID(s.ctx, o.ID())
	s.Require().NoError(err)
	return got
}

func (s *AdminTestSuite) TestStaffOnly() {
	shopper := builder.Shopper("ayesha@example.com")
	o := s.seed(builder.NewOrderBuilder())

	_, err := s.f.admin.UpdateOrderStatus(s.ctx, shopper, o.ID(), "completed")
	s.ErrorIs(err, queries.ErrStaffOnly)
	s.Equal(errs.ErrForbidden, errs.KindOf(err))

	_, err = s.f.admin.CreatePromotion(s.ctx, shopper, commands.CreatePromotionInput{Code: "NEW10"})
	s.ErrorIs(err, queries.ErrStaffOnly)
	_, err = s.f.admin.GenerateShipment(s.ctx, shopper, o.ID())
	s.ErrorIs(err, queries.ErrStaffOnly)
	_, err = s.f.admin.MarkHandedOver(s.ctx, shopper, o.ID())
	s.ErrorIs(err, queries.ErrStaffOnly)
	_, err = s.f.admin.SetPromotionActive(s.ctx, shopper, o.ID(), false)
	s.ErrorIs(err, queries.ErrStaffOnly)

	s.Equal(order.StatusPending, s.stored(o).Status())
}

func (s *AdminTestSuite) TestUpdateOrderStatus() {
	s.Run("pending to processing", func() {
		o := s.seed(builder.NewOrderBuilder())
		v, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), "processing")
		s.Require().NoError(err)
		s.Equal("processing", v.Status)
		s.Equal(int32(2), v.Version)
		s.Contains(s.f.events.names(), shared.EventOrderStatusChanged)
	})

	s.Run("staff cancel is unrestricted by default", func() {
		o := s.seed(builder.NewOrderBuilder().PlacedAt(now.Add(-30 * 24 * time.Hour)))
		v, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), "cancelled")
		s.Require().NoError(err)
		s.Equal("cancelled", v.Status)
		s.NotNil(v.CancelledAt)
		s.Contains(s.f.events.names(), shared.EventOrderCancelled)
	})

	s.Run("terminal orders are final", func() {
		for _, from := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			o := s.seed(builder.NewOrderBuilder().WithStatus(from))
			for _, target := range []string{"pending", "processing", "completed", "cancelled"} {
				_, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), target)
				s.ErrorIs(err, order.ErrOrderAlreadyFinalized, "%s -> %s", from, target)
			}
			s.Equal(int32(1), s.stored(o).Version())
		}
	})

	s.Run("processing cannot return to pending", func() {
		o := s.seed(builder.NewOrderBuilder().WithStatus(order.StatusProcessing))
		_, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), "pending")
		s.ErrorIs(err, order.ErrInvalidTransition)
	})

	s.Run("unknown status", func() {
		o := s.seed(builder.NewOrderBuilder())
		_, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), "shipped")
		s.ErrorIs(err, order.ErrInvalidStatus)
	})
}

func (s *AdminTestSuite) TestConcurrentStatusUpdates() {
	o := s.seed(builder.NewOrderBuilder())

	var ok, rejected atomic.Int32
	var g errgroup.Group
	for _, target := range []string{"completed", "cancelled", "completed", "cancelled"} {
		g.Go(func() error {
			_, err := s.f.admin.UpdateOrderStatus(s.ctx, builder.Staff(), o.ID(), target)
			switch {
			case err == nil:
				ok.Add(1)
			case errs.Is(err, order.ErrOrderAlreadyFinalized), errs.Is(err, shared.ErrConflictingUpdate):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())
	s.Equal(int32(1), ok.Load())
	s.Equal(int32(3), rejected.Load())
	s.Equal(int32(2), s.stored(o).Version())
}

func (s *AdminTestSuite) TestGenerateShipment() {
	label := &shared.Label{
		TrackingNumber:    "KS-20260310-0042",
		Carrier:           "TCS",
		LabelURL:          "https://example.com/label.pdf",
		Cost:              300,
		EstimatedDelivery: now.AddDate(0, 0, 7),
	}

	s.Run("attaches tracking and moves to processing", func() {
		o := s.seed(builder.NewOrderBuilder())
		s.f.labels.EXPECT().GenerateLabel(gomock.Any(), gomock.Any()).Return(label, nil)

		v, err := s.f.admin.GenerateShipment(s.ctx, builder.Staff(), o.ID())
		s.Require().NoError(err)
		s.Equal("processing", v.Status)
		s.Require().NotNil(v.Tracking)
		s.Equal("KS-20260310-0042", v.Tracking.TrackingNumber)
		s.Equal("pending", v.Tracking.Status)
		s.Contains(s.f.events.names(), shared.EventOrderShipmentCreated)
	})

	s.Run("refused without calling the courier", func() {
		done := s.seed(builder.NewOrderBuilder().WithStatus(order.StatusCancelled))
		_, err := s.f.admin.GenerateShipment(s.ctx, builder.Staff(), done.ID())
		s.ErrorIs(err, order.ErrOrderAlreadyFinalized)

		shipped := s.seed(builder.NewOrderBuilder().WithStatus(order.StatusProcessing).WithTracking(order.TrackingPending))
		_, err = s.f.admin.GenerateShipment(s.ctx, builder.Staff(), shipped.ID())
		s.ErrorIs(err, order.ErrShipmentExists)
	})

	s.Run("courier failure", func() {
		o := s.seed(builder.NewOrderBuilder())
		s.f.labels.EXPECT().GenerateLabel(gomock.Any(), gomock.Any()).Return(nil, errors.New("courier down"))
		_, err := s.f.admin.GenerateShipment(s.ctx, builder.Staff(), o.ID())
		s.Equal(errs.ErrUpstream, errs.KindOf(err))
		s.Nil(s.stored(o).Tracking())
	})
}

func (s *AdminTestSuite) TestMarkHandedOver() {
	o := s.seed(builder.NewOrderBuilder().WithStatus(order.StatusProcessing).WithTracking(order.TrackingPending))

	v, err := s.f.admin.MarkHandedOver(s.ctx, builder.Staff(), o.ID())
	s.Require().NoError(err)
	s.Equal("in_transit", v.Tracking.Status)
	s.NotNil(v.Tracking.HandedOverAt)

	_, err = s.f.admin.MarkHandedOver(s.ctx, builder.Staff(), o.ID())
	s.ErrorIs(err, order.ErrAlreadyHandedOver)

	_, err = s.f.orders.CancelByShopper(s.ctx, builder.Shopper("ayesha@example.com"), o.ID())
	s.ErrorIs(err, order.ErrInvalidStatusForCancellation)
}

func (s *AdminTestSuite) TestCreatePromotion() {
	in := commands.CreatePromotionInput{
		Code:          "eid25",
		Name:          "Eid sale",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(25),
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, 7),
		IsActive:      true,
		UsageLimit:    ptr.To(int32(100)),
	}

	v, err := s.f.admin.CreatePromotion(s.ctx, builder.Staff(), in)
	s.Require().NoError(err)
	s.Equal("EID25", v.Code)
	s.Equal("25", v.DiscountValue)
	s.Equal(int32(0), v.UsageCount)

	_, err = s.f.admin.CreatePromotion(s.ctx, builder.Staff(), in)
	s.ErrorIs(err, promotion.ErrDuplicateCode)
	s.Equal(errs.ErrConflict, errs.KindOf(err))

	invalid := []struct {
		name   string
		mutate func(*commands.CreatePromotionInput)
		errIs  error
	}{
		{"percentage above 100", func(i *commands.CreatePromotionInput) { i.DiscountValue = decimal.NewFromInt(101) }, promotion.ErrInvalidDiscountValue},
		{"zero fixed", func(i *commands.CreatePromotionInput) {
			i.DiscountType = "fixed"
			i.DiscountValue = decimal.Zero
		}, promotion.ErrInvalidDiscountValue},
		{"bad type", func(i *commands.CreatePromotionInput) { i.DiscountType = "bogo" }, promotion.ErrInvalidDiscountType},
		{"bad code", func(i *commands.CreatePromotionInput) { i.Code = "no spaces" }, promotion.ErrInvalidCode},
		{"inverted window", func(i *commands.CreatePromotionInput) { i.EndDate = now.Add(-time.Hour) }, promotion.ErrInvalidWindow},
		{"zero usage limit", func(i *commands.CreatePromotionInput) { i.UsageLimit = ptr.To(int32(0)) }, promotion.ErrInvalidUsageLimit},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			cp := in
			cp.Code = "OTHER1"
			tc.mutate(&cp)
			_, err := s.f.admin.CreatePromotion(s.ctx, builder.Staff(), cp)
			s.ErrorIs(err, tc.errIs)
			s.Equal(errs.ErrValidation, errs.KindOf(err))
		})
	}
}

func (s *AdminTestSuite) TestSetPromotionActive() {
	p := builder.NewPromotionBuilder().Build()
	s.f.store.SeedPromotion(p)

	v, err := s.f.admin.SetPromotionActive(s.ctx, builder.Staff(), p.ID(), false)
	s.Require().NoError(err)
	s.False(v.IsActive)
	s.Equal(int32(2), v.Version)

	res, err := s.f.evaluator.Preview(s.ctx, "SAVE10", 5000)
	s.Require().NoError(err)
	s.Equal(promotion.ReasonInactive, res.Reason)

	again, err := s.f.admin.SetPromotionActive(s.ctx, builder.Staff(), p.ID(), false)
	s.Require().NoError(err)
	s.Equal(int32(2), again.Version)
	s.Equal([]string{shared.EventPromotionToggled}, s.f.events.names())
}
