package request

import (
	"strings"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/usecase/commands"
)

type CartLineRequest struct {
	ProductRef    string `json:"productRef" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

type ShippingEstimateQuery struct {
	City  string `form:"city"`
	Items *int   `form:"items" binding:"omitempty,min=0"`
}

// ItemCount defaults to a single item when the query omits it.
func (q ShippingEstimateQuery) ItemCount() int {
	if q.Items == nil {
		return 1
	}
	return *q.Items
}

type ValidatePromotionRequest struct {
	Code     string `json:"code" binding:"required,max=40"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

type QuoteRequest struct {
	Lines         []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	City          string            `json:"city"`
	PromotionCode string            `json:"promotionCode,omitempty" binding:"max=40"`
}

func (r QuoteRequest) ToInput() commands.QuoteInput {
	return commands.QuoteInput{
		Lines:         toLines(r.Lines),
		City:          strings.TrimSpace(r.City),
		PromotionCode: strings.TrimSpace(r.PromotionCode),
	}
}

type CustomerInfoRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	PostalCode  string `json:"postalCode" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

type PlaceOrderRequest struct {
	Lines           []CartLineRequest   `json:"lines" binding:"required,min=1,dive"`
	Customer        CustomerInfoRequest `json:"customerInfo"`
	PromotionCode   string              `json:"promotionCode,omitempty" binding:"max=40"`
	PaymentMethod   string              `json:"paymentMethod" binding:"required,oneof=card cod"`
	PaymentIntentID string              `json:"paymentIntentId,omitempty"`
}

// ToInput leaves the customer email empty; it always comes from the caller's identity.
func (r PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		Lines: toLines(r.Lines),
		Customer: order.CustomerInfo{
			FullName:    r.Customer.FullName,
			PhoneNumber: r.Customer.PhoneNumber,
			Address:     r.Customer.Address,
			City:        r.Customer.City,
			PostalCode:  r.Customer.PostalCode,
			Country:     r.Customer.Country,
		},
		PromotionCode:   strings.TrimSpace(r.PromotionCode),
		PaymentMethod:   r.PaymentMethod,
		PaymentIntentID: strings.TrimSpace(r.PaymentIntentID),
	}
}

func toLines(in []CartLineRequest) []commands.CartLineInput {
	lines := make([]commands.CartLineInput, len(in))
	for i, l := range in {
		lines[i] = commands.CartLineInput{
			ProductRef:    strings.TrimSpace(l.ProductRef),
			Quantity:      l.Quantity,
			SelectedSize:  l.SelectedSize,
			SelectedColor: l.SelectedColor,
		}
	}
	return lines
}
