//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront-orders/internal/domain/cart"
	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/pkg/ptr"
	"storefront-orders/internal/usecase/commands"
	"storefront-orders/internal/usecase/shared"
	"storefront-orders/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutTestSuite struct {
	suite.Suite
	f   *fixture
	ctx context.Context
}

func (s *CheckoutTestSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.ctx = context.Background()
	s.f.store.SeedPromotion(builder.NewPromotionBuilder().Build())
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) usage(code string) int32 {
	p, err := s.f.store.CommandReads().PromotionByCode(s.ctx, code)
	s.Require().NoError(err)
	return p.UsageCount()
}

func (s *CheckoutTestSuite) TestQuote() {
	s.Run("subtotal 5000 with SAVE10", func() {
		q, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{
			Lines:         lines("kurta-01", 2),
			City:          "Karachi",
			PromotionCode: "SAVE10",
		})
		s.Require().NoError(err)
		s.Equal(int64(5000), q.Subtotal)
		s.Equal(int64(500), q.Discount)
		s.Equal(int64(350), q.Shipping.Cost)
		s.Equal(int64(5000-500+350), q.Total)
		s.True(q.CODAllowed)
		s.Equal([]order.PaymentMethod{order.PaymentCard, order.PaymentCOD}, q.PaymentMethods)
		s.Equal(int32(0), s.usage("SAVE10"))
	})

	s.Run("COD only offered under the cap", func() {
		under, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("kurta-01", 1, "dupatta", 1), City: "Karachi"})
		s.Require().NoError(err)
		s.Equal(int64(3850), under.Total)
		s.True(under.CODAllowed)

		over, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("kurta-01", 2, "dupatta", 1), City: "Multan"})
		s.Require().NoError(err)
		s.Greater(over.Total, int64(5000))
		s.False(over.CODAllowed)
		s.Equal([]order.PaymentMethod{order.PaymentCard}, over.PaymentMethods)
	})

	s.Run("invalid code still quotes", func() {
		q, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("dupatta", 1), City: "Lahore", PromotionCode: "NOPE"})
		s.Require().NoError(err)
		s.Require().NotNil(q.Promotion)
		s.False(q.Promotion.Valid)
		s.Equal(promotion.ReasonNotFound, q.Promotion.Reason)
		s.Equal(int64(0), q.Discount)
	})

	s.Run("unknown product", func() {
		_, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("ghost", 1), City: "Karachi"})
		s.ErrorIs(err, commands.ErrProductNotFound)
		s.Equal(errs.ErrNotFound, errs.KindOf(err))
	})

	s.Run("quantity above stock", func() {
		_, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("dupatta", 11), City: "Karachi"})
		s.ErrorIs(err, cart.ErrInsufficientStock)
	})

	s.Run("repeated product above stock in total", func() {
		_, err := s.f.checkout.Quote(s.ctx, commands.QuoteInput{Lines: lines("dupatta", 6, "dupatta", 5), City: "Karachi"})
		s.ErrorIs(err, cart.ErrInsufficientStock)
	})
}

func (s *CheckoutTestSuite) TestPlaceOrderCOD() {
	actor := builder.Shopper("ayesha@example.com")

	s.Run("places a pending order and consumes the promotion", func() {
		in := codInput(lines("kurta-01", 1))
		in.PromotionCode = "save10"
		res, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.Require().NoError(err)
		s.False(res.IsReplayed)

		v := res.Order
		s.Equal("pending", v.Status)
		s.Equal("cod", v.PaymentMethod)
		s.Equal("pending", v.PaymentStatus)
		s.Equal(int64(2500), v.Subtotal)
		s.Equal(int64(250), v.Discount)
		s.Equal(int64(300), v.Shipping.Cost)
		s.Equal(v.Subtotal-v.Discount+v.Shipping.Cost, v.TotalAmount)
		s.Equal("SAVE10", *v.PromotionCode)
		s.NotNil(v.CancellableUntil)
		s.Equal(int32(1), s.usage("SAVE10"))
		s.Contains(s.f.events.names(), shared.EventOrderPlaced)
	})

	s.Run("rejected above the cap without side effects", func() {
		before := s.usage("SAVE10")
		in := codInput(lines("kurta-01", 3))
		in.PromotionCode = "SAVE10"
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.ErrorIs(err, order.ErrCODNotAvailable)
		s.Equal(before, s.usage("SAVE10"))
	})

	s.Run("records the order against the authenticated email", func() {
		in := codInput(lines("dupatta", 1))
		in.Customer.Email = "someone-else@example.com"
		res, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.Require().NoError(err)
		s.Equal("ayesha@example.com", res.Order.CustomerInfo.Email)
	})

	s.Run("bad payment method", func() {
		in := codInput(lines("dupatta", 1))
		in.PaymentMethod = "cheque"
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.ErrorIs(err, order.ErrInvalidPaymentMethod)
	})

	s.Run("failed promotion aborts the order", func() {
		s.f.store.SeedPromotion(builder.NewPromotionBuilder().WithCode("SOLDOUT").WithUsage(1, ptr.To(int32(1))).Build())
		in := codInput(lines("dupatta", 1))
		in.PromotionCode = "SOLDOUT"
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.ErrorIs(err, promotion.ErrUsageExceeded)

		orders, err := s.f.store.FindByEmail(s.ctx, "ayesha@example.com")
		s.Require().NoError(err)
		for _, o := range orders {
			if o.PromotionCode() != nil {
				s.NotEqual("SOLDOUT", *o.PromotionCode())
			}
		}
	})
}

func (s *CheckoutTestSuite) TestPlaceOrderCard() {
	actor := builder.Shopper("ayesha@example.com")
	in := commands.PlaceOrderInput{
		Lines:           lines("kurta-01", 3),
		Customer:        builder.DefaultCustomer(),
		PaymentMethod:   "card",
		PaymentIntentID: "pi_123",
	}
	// 7500 + Karachi 300 + 2 extra items
	const total = int64(7500 + 300 + 100)

	s.Run("confirmed payment is marked paid", func() {
		s.f.payments.EXPECT().Confirmation(gomock.Any(), "pi_123").
			Return(&shared.PaymentConfirmation{Confirmed: true, AmountMinor: total * 100, Currency: "pkr"}, nil)
		res, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.Require().NoError(err)
		s.Equal(total, res.Order.TotalAmount)
		s.Equal("paid", res.Order.PaymentStatus)
		s.Equal("pi_123", *res.Order.PaymentIntentID)
	})

	s.Run("unconfirmed payment", func() {
		s.f.payments.EXPECT().Confirmation(gomock.Any(), "pi_123").
			Return(&shared.PaymentConfirmation{Confirmed: false, AmountMinor: total * 100}, nil)
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.ErrorIs(err, order.ErrPaymentNotConfirmed)
		s.Equal(errs.ErrInvalidState, errs.KindOf(err))
	})

	s.Run("amount mismatch", func() {
		s.f.payments.EXPECT().Confirmation(gomock.Any(), "pi_123").
			Return(&shared.PaymentConfirmation{Confirmed: true, AmountMinor: 100}, nil)
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.ErrorIs(err, commands.ErrPaymentAmountMismatch)
	})

	s.Run("gateway failure is upstream", func() {
		s.f.payments.EXPECT().Confirmation(gomock.Any(), "pi_123").Return(nil, errors.New("timeout"))
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, nil)
		s.Equal(errs.ErrUpstream, errs.KindOf(err))
	})

	s.Run("missing intent", func() {
		noIntent := in
		noIntent.PaymentIntentID = ""
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, noIntent, nil)
		s.ErrorIs(err, order.ErrMissingPaymentIntent)
	})
}

func (s *CheckoutTestSuite) TestCreatePaymentIntent() {
	s.f.payments.EXPECT().CreateIntent(gomock.Any(), int64(395000), "PKR").
		Return(&shared.PaymentIntent{ID: "pi_9", ClientSecret: "secret", AmountMinor: 395000, Currency: "pkr"}, nil)

	res, err := s.f.checkout.CreatePaymentIntent(s.ctx, commands.QuoteInput{Lines: lines("kurta-01", 1, "dupatta", 1), City: "Lahore"})
	s.Require().NoError(err)
	s.Equal("pi_9", res.IntentID)
	s.Equal(int64(3950), res.Amount)
}

func (s *CheckoutTestSuite) TestIdempotency() {
	actor := builder.Shopper("ayesha@example.com")
	key := uuid.New()
	in := codInput(lines("dupatta", 2))

	first, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, &key)
	s.Require().NoError(err)

	s.Run("same body replays", func() {
		again, err := s.f.checkout.PlaceOrder(s.ctx, actor, in, &key)
		s.Require().NoError(err)
		s.True(again.IsReplayed)
		s.Equal(first.Order.ID, again.Order.ID)

		orders, err := s.f.store.FindByEmail(s.ctx, "ayesha@example.com")
		s.Require().NoError(err)
		s.Len(orders, 1)
	})

	s.Run("different body conflicts", func() {
		other := codInput(lines("dupatta", 1))
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, other, &key)
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
		s.Equal(errs.ErrConflict, errs.KindOf(err))
	})

	s.Run("failed placement frees the key", func() {
		retryKey := uuid.New()
		tooBig := codInput(lines("kurta-01", 3))
		_, err := s.f.checkout.PlaceOrder(s.ctx, actor, tooBig, &retryKey)
		s.ErrorIs(err, order.ErrCODNotAvailable)

		_, err = s.f.checkout.PlaceOrder(s.ctx, actor, codInput(lines("dupatta", 1)), &retryKey)
		s.NoError(err)
	})
}

func (s *CheckoutTestSuite) TestOrderCodeCollision() {
	actor := builder.Shopper("ayesha@example.com")
	existing := builder.NewOrderBuilder().With(func(p *order.ReconstructParams) {
		p.Code = "ORD-20260310100000-AAAAAA"
	}).Build()
	s.f.store.SeedOrder(existing)

	res, err := s.f.checkout.PlaceOrder(s.ctx, actor, codInput(lines("dupatta", 1)), nil)
	s.Require().NoError(err)
	s.Equal("ORD-20260310100000-BBBBBB", res.Order.Code)
}

func TestPlaceOrderCodeExhausted(t *testing.T) {
	f := newFixture(t)
	f.codes.Codes = []string{"ORD-20260310100000-AAAAAA"}
	f.store.SeedOrder(builder.NewOrderBuilder().With(func(p *order.ReconstructParams) {
		p.Code = "ORD-20260310100000-AAAAAA"
	}).Build())

	_, err := f.checkout.PlaceOrder(context.Background(), builder.Shopper("ayesha@example.com"), codInput(lines("dupatta", 1)), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderCodeExhausted)
}
