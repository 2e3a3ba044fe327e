package cart

import (
	"fmt"

	"storefront-orders/internal/pkg/errs"
)

var (
	ErrEmptyCart         = errs.NewKind(errs.ErrValidation, "cart is empty")
	ErrInvalidQuantity   = errs.NewKind(errs.ErrValidation, "quantity must be at least 1")
	ErrInsufficientStock = errs.NewKind(errs.ErrValidation, "quantity exceeds available stock")
	ErrInvalidUnitPrice  = errs.NewKind(errs.ErrValidation, "unit price cannot be negative")
	ErrMissingProduct    = errs.NewKind(errs.ErrValidation, "line item is missing a product reference")
)

// LineError ties a line validation failure to the offending product.
type LineError struct {
	ProductRef string
	Err        error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("product %s: %s", e.ProductRef, e.Err.Error())
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Line is a priced snapshot of one cart entry. AvailableStock is the stock
// observed when the line was priced.
type Line struct {
	ProductRef     string
	Name           string
	UnitPrice      int64
	Quantity       int
	SelectedSize   string
	SelectedColor  string
	AvailableStock int
}

func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is shopper-local and never persisted; it exists to validate and total
// the lines handed to checkout.
type Cart struct {
	lines []Line
}

func New(lines []Line) (*Cart, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	// Stock is checked against the combined quantity of all lines for a product.
	requested := make(map[string]int, len(lines))
	for _, l := range lines {
		if err := validateLine(l); err != nil {
			return nil, err
		}
		requested[l.ProductRef] += l.Quantity
		if requested[l.ProductRef] > l.AvailableStock {
			return nil, &LineError{ProductRef: l.ProductRef, Err: ErrInsufficientStock}
		}
	}
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return &Cart{lines: copied}, nil
}

func validateLine(l Line) error {
	switch {
	case l.ProductRef == "":
		return ErrMissingProduct
	case l.Quantity < 1:
		return &LineError{ProductRef: l.ProductRef, Err: ErrInvalidQuantity}
	case l.UnitPrice < 0:
		return &LineError{ProductRef: l.ProductRef, Err: ErrInvalidUnitPrice}
	case l.Quantity > l.AvailableStock:
		return &LineError{ProductRef: l.ProductRef, Err: ErrInsufficientStock}
	}
	return nil
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Total()
	}
	return sum
}

// ItemCount is the total quantity across lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
