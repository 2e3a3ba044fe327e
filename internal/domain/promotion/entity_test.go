//go:build unit

package promotion_test

import (
	"math/rand"
	"testing"
	"time"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/pkg/ptr"
	"storefront-orders/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evalCase struct {
	name     string
	mutate   func(*builder.PromotionBuilder)
	subtotal int64
	at       func(b *builder.PromotionBuilder) time.Time
	want     int64
	errIs    error
}

func midWindow(b *builder.PromotionBuilder) time.Time { return b.StartDate.Add(48 * time.Hour) }

func runEvalCases(t *testing.T, cases []evalCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPromotionBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			at := midWindow
			if tc.at != nil {
				at = tc.at
			}
			got, err := b.Build().Evaluate(tc.subtotal, at(b))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("discount computation", func(t *testing.T) {
		runEvalCases(t, []evalCase{
			{name: "SAVE10 on 5000 gives 500", subtotal: 5000, want: 500},
			{name: "percentage rounds half up", mutate: func(b *builder.PromotionBuilder) { b.WithPercentage(decimal.NewFromInt(15)) }, subtotal: 1230, want: 185},
			{name: "percentage rounds down below half", mutate: func(b *builder.PromotionBuilder) { b.WithPercentage(decimal.NewFromInt(15)) }, subtotal: 1201, want: 180},
			{name: "fractional percentage", mutate: func(b *builder.PromotionBuilder) { b.WithPercentage(decimal.RequireFromString("12.5")) }, subtotal: 999, want: 125},
			{name: "hundred percent equals subtotal", mutate: func(b *builder.PromotionBuilder) { b.WithPercentage(decimal.NewFromInt(100)) }, subtotal: 2599, want: 2599},
			{name: "fixed amount", mutate: func(b *builder.PromotionBuilder) { b.WithFixed(300) }, subtotal: 2000, want: 300},
			{name: "fixed amount clamped to subtotal", mutate: func(b *builder.PromotionBuilder) { b.WithFixed(3000) }, subtotal: 2000, want: 2000},
			{name: "zero subtotal yields zero", subtotal: 0, want: 0},
		})
	})

	t.Run("failure order", func(t *testing.T) {
		exhausted := func(b *builder.PromotionBuilder) { b.WithUsage(5, ptr.To(int32(5))) }
		runEvalCases(t, []evalCase{
			{
				name:     "inactive wins over everything else",
				mutate:   func(b *builder.PromotionBuilder) { b.Inactive().WithMinPurchase(10000); exhausted(b) },
				subtotal: 100,
				at:       func(b *builder.PromotionBuilder) time.Time { return b.EndDate.Add(time.Hour) },
				errIs:    promotion.ErrInactive,
			},
			{
				name:     "out of window wins over minimum and usage",
				mutate:   func(b *builder.PromotionBuilder) { b.WithMinPurchase(10000); exhausted(b) },
				subtotal: 100,
				at:       func(b *builder.PromotionBuilder) time.Time { return b.StartDate.Add(-time.Hour) },
				errIs:    promotion.ErrOutOfWindow,
			},
			{
				name:     "below minimum wins over usage",
				mutate:   func(b *builder.PromotionBuilder) { b.WithMinPurchase(10000); exhausted(b) },
				subtotal: 9999,
				errIs:    promotion.ErrBelowMinimum,
			},
			{
				name:     "usage exceeded when count equals limit",
				mutate:   exhausted,
				subtotal: 5000,
				errIs:    promotion.ErrUsageExceeded,
			},
			{
				name:     "minimum purchase met exactly",
				mutate:   func(b *builder.PromotionBuilder) { b.WithMinPurchase(5000) },
				subtotal: 5000,
				want:     500,
			},
			{
				name:     "usage below limit",
				mutate:   func(b *builder.PromotionBuilder) { b.WithUsage(4, ptr.To(int32(5))) },
				subtotal: 5000,
				want:     500,
			},
		})
	})

	t.Run("window edges are inclusive", func(t *testing.T) {
		runEvalCases(t, []evalCase{
			{name: "one nanosecond before start", subtotal: 1000, at: func(b *builder.PromotionBuilder) time.Time { return b.StartDate.Add(-time.Nanosecond) }, errIs: promotion.ErrOutOfWindow},
			{name: "exactly at start", subtotal: 1000, at: func(b *builder.PromotionBuilder) time.Time { return b.StartDate }, want: 100},
			{name: "exactly at end", subtotal: 1000, at: func(b *builder.PromotionBuilder) time.Time { return b.EndDate }, want: 100},
			{name: "one nanosecond after end", subtotal: 1000, at: func(b *builder.PromotionBuilder) time.Time { return b.EndDate.Add(time.Nanosecond) }, errIs: promotion.ErrOutOfWindow},
		})
	})
}

func TestPercentageDiscountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		subtotal := rng.Int63n(500_000)
		percent := rng.Int63n(100) + 1

		p := builder.NewPromotionBuilder().WithPercentage(decimal.NewFromInt(percent)).Build()
		got, err := p.Evaluate(subtotal, p.StartDate())
		require.NoError(t, err)

		// round half up on non-negative integers
		want := (subtotal*percent + 50) / 100
		if want > subtotal {
			want = subtotal
		}
		require.Equal(t, want, got, "subtotal=%d percent=%d", subtotal, percent)
		require.GreaterOrEqual(t, got, int64(0))
		require.LessOrEqual(t, got, subtotal)
	}
}

func TestNewPromotion(t *testing.T) {
	now := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	t.Run("code normalised and defaults applied", func(t *testing.T) {
		params := builder.NewPromotionBuilder().WithCode("  eid25 ").NewParams()
		params.Name = ""

		p, err := promotion.NewPromotion(params, now)
		require.NoError(t, err)
		assert.Equal(t, promotion.Code("EID25"), p.Code())
		assert.Equal(t, "EID25", p.Name())
		assert.Zero(t, p.UsageCount())
		assert.Nil(t, p.UsageLimit())
		assert.Equal(t, int32(1), p.Version())
	})

	tests := []struct {
		name   string
		mutate func(*promotion.NewParams)
		errIs  error
	}{
		{name: "code too short", mutate: func(p *promotion.NewParams) { p.Code = "AB" }, errIs: promotion.ErrInvalidCode},
		{name: "code with symbols", mutate: func(p *promotion.NewParams) { p.Code = "SAVE-10" }, errIs: promotion.ErrInvalidCode},
		{name: "negative minimum", mutate: func(p *promotion.NewParams) { p.MinPurchase = -1 }, errIs: promotion.ErrInvalidMinPurchase},
		{name: "start after end", mutate: func(p *promotion.NewParams) { p.StartDate = p.EndDate.Add(time.Second) }, errIs: promotion.ErrInvalidWindow},
		{name: "zero usage limit", mutate: func(p *promotion.NewParams) { p.UsageLimit = ptr.To(int32(0)) }, errIs: promotion.ErrInvalidUsageLimit},
		{name: "missing discount", mutate: func(p *promotion.NewParams) { p.Discount = promotion.Discount{} }, errIs: promotion.ErrInvalidDiscountType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := builder.NewPromotionBuilder().NewParams()
			tt.mutate(&params)
			_, err := promotion.NewPromotion(params, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewDiscount(t *testing.T) {
	_, err := promotion.NewDiscount(promotion.DiscountPercentage, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountValue)

	_, err = promotion.NewDiscount(promotion.DiscountFixed, decimal.Zero)
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountValue)

	_, err = promotion.NewDiscount("bogo", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountType)
}

func TestSetActive(t *testing.T) {
	p := builder.NewPromotionBuilder().Build()
	later := p.UpdatedAt().Add(time.Hour)

	assert.False(t, p.SetActive(true, later), "already active")
	assert.True(t, p.SetActive(false, later))
	assert.False(t, p.IsActive())
	assert.Equal(t, later, p.UpdatedAt())
}

func TestReasonOf(t *testing.T) {
	assert.Equal(t, promotion.ReasonUsageExceeded, promotion.ReasonOf(promotion.ErrUsageExceeded))
	assert.Equal(t, promotion.ReasonNotFound, promotion.ReasonOf(promotion.ErrPromotionNotFound))
	assert.Equal(t, promotion.ReasonNone, promotion.ReasonOf(nil))
}
