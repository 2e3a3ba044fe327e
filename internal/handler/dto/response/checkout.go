package response

import (
	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/usecase/commands"
)

type ShippingEstimateResponse struct {
	Cost          int64  `json:"cost"`
	EstimatedDays int    `json:"estimatedDays"`
	Service       string `json:"service"`
	Currency      string `json:"currency"`
}

func FromShippingQuote(q shipping.Quote) ShippingEstimateResponse {
	return ShippingEstimateResponse{
		Cost:          q.Cost,
		EstimatedDays: q.EstimatedDays,
		Service:       q.Service,
		Currency:      q.Currency,
	}
}

type PromotionEvaluationResponse struct {
	Code           string `json:"code"`
	Valid          bool   `json:"valid"`
	DiscountAmount int64  `json:"discountAmount"`
	Reason         string `json:"reason,omitempty"`
	Message        string `json:"message,omitempty"`
}

func FromEvaluation(r *commands.EvaluationResult) *PromotionEvaluationResponse {
	if r == nil {
		return nil
	}
	return &PromotionEvaluationResponse{
		Code:           r.Code,
		Valid:          r.Valid,
		DiscountAmount: r.DiscountAmount,
		Reason:         string(r.Reason),
		Message:        r.Message,
	}
}

type QuoteResponse struct {
	Subtotal       int64                        `json:"subtotal"`
	Discount       int64                        `json:"discount"`
	Promotion      *PromotionEvaluationResponse `json:"promotion,omitempty"`
	Shipping       ShippingEstimateResponse     `json:"shipping"`
	Total          int64                        `json:"total"`
	Currency       string                       `json:"currency"`
	CODAllowed     bool                         `json:"codAllowed"`
	PaymentMethods []string                     `json:"paymentMethods"`
}

func FromQuote(q *commands.QuoteResult) *QuoteResponse {
	methods := make([]string, len(q.PaymentMethods))
	for i, m := range q.PaymentMethods {
		methods[i] = m.String()
	}
	return &QuoteResponse{
		Subtotal:       q.Subtotal,
		Discount:       q.Discount,
		Promotion:      FromEvaluation(q.Promotion),
		Shipping:       FromShippingQuote(q.Shipping),
		Total:          q.Total,
		Currency:       q.Currency,
		CODAllowed:     q.CODAllowed,
		PaymentMethods: methods,
	}
}

type PaymentIntentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	AmountMinor  int64  `json:"amountMinor"`
	Currency     string `json:"currency"`
}

func FromPaymentIntent(r *commands.PaymentIntentResult) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		IntentID:     r.IntentID,
		ClientSecret: r.ClientSecret,
		Amount:       r.Amount,
		AmountMinor:  r.AmountMinor,
		Currency:     r.Currency,
	}
}
