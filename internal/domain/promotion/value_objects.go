package promotion

import (
	"regexp"
	"strings"

	"storefront-orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode          = errs.NewKind(errs.ErrValidation, "invalid promotion code format")
	ErrInvalidDiscountType  = errs.NewKind(errs.ErrValidation, "discount type must be percentage or fixed")
	ErrInvalidDiscountValue = errs.NewKind(errs.ErrValidation, "invalid discount value")
	ErrInvalidMinPurchase   = errs.NewKind(errs.ErrValidation, "minimum purchase cannot be negative")
	ErrInvalidWindow        = errs.NewKind(errs.ErrValidation, "start date must not be after end date")
	ErrInvalidUsageLimit    = errs.NewKind(errs.ErrValidation, "usage limit must be positive")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

var hundred = decimal.NewFromInt(100)

// Code is stored upper case so lookups are case-insensitive.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

// NormalizeCode upper-cases a shopper-entered code without validating it.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewDiscount(kind DiscountType, value decimal.Decimal) (Discount, error) {
	if !kind.IsValid() {
		return Discount{}, ErrInvalidDiscountType
	}
	if !value.IsPositive() {
		return Discount{}, ErrInvalidDiscountValue
	}
	if kind == DiscountPercentage && value.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountValue
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

// AmountFor returns the discount for subtotal, rounded half away from zero to
// whole currency units and clamped to [0, subtotal].
func (d Discount) AmountFor(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	var amount int64
	switch d.kind {
	case DiscountPercentage:
		amount = decimal.NewFromInt(subtotal).Mul(d.value).Div(hundred).Round(0).IntPart()
	case DiscountFixed:
		amount = d.value.Round(0).IntPart()
	}
	return clamp(amount, 0, subtotal)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
