package queries

import (
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	OrderDate       time.Time        `json:"orderDate"`
	Status          string           `json:"status"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentStatus   string           `json:"paymentStatus"`
	PaymentIntentID *string          `json:"paymentIntentId,omitempty"`
	CustomerInfo    CustomerInfoView `json:"customerInfo"`
	Items           []LineItemView   `json:"items"`
	Subtotal        int64            `json:"subtotal"`
	Discount        int64            `json:"discount"`
	PromotionCode   *string          `json:"promotionCode,omitempty"`
	Shipping        ShippingView     `json:"shipping"`
	TotalAmount     int64            `json:"totalAmount"`
	CancelledAt     *time.Time       `json:"cancelledAt,omitempty"`
	Tracking        *TrackingView    `json:"tracking,omitempty"`
	Version         int32            `json:"version"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	// CancellableUntil is set while the shopper may still cancel.
	CancellableUntil *time.Time `json:"cancellableUntil,omitempty"`
}

type CustomerInfoView struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

type LineItemView struct {
	ProductRef    string `json:"productRef"`
	Name          string `json:"name"`
	UnitPrice     int64  `json:"unitPrice"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

type ShippingView struct {
	Cost          int64  `json:"cost"`
	Service       string `json:"service"`
	EstimatedDays int    `json:"estimatedDays"`
	Currency      string `json:"currency"`
}

type TrackingView struct {
	TrackingNumber    string     `json:"trackingNumber"`
	Carrier           string     `json:"carrier"`
	Status            string     `json:"status"`
	LabelURL          string     `json:"labelUrl"`
	Cost              int64      `json:"cost"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
	ShippedAt         time.Time  `json:"shippedAt"`
	HandedOverAt      *time.Time `json:"handedOverAt,omitempty"`
}

// DashboardView summarizes the order book for the back office.
type DashboardView struct {
	TotalOrders       int          `json:"totalOrders"`
	PendingOrders     int          `json:"pendingOrders"`
	ProcessingOrders  int          `json:"processingOrders"`
	CompletedOrders   int          `json:"completedOrders"`
	CancelledOrders   int          `json:"cancelledOrders"`
	TotalRevenue      int64        `json:"totalRevenue"`
	AverageOrderValue int64        `json:"averageOrderValue"`
	ItemsSold         int          `json:"itemsSold"`
	RecentOrders      []*OrderView `json:"recentOrders"`
}

type TrackingStatusView struct {
	OrderID        uuid.UUID `json:"orderId"`
	TrackingNumber string    `json:"trackingNumber"`
	Carrier        string    `json:"carrier"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
}

type PromotionView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	DiscountType  string    `json:"discountType"`
	DiscountValue string    `json:"discountValue"`
	MinPurchase   int64     `json:"minPurchase"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	UsageLimit    *int32    `json:"usageLimit,omitempty"`
	UsageCount    int32     `json:"usageCount"`
	Version       int32     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewOrderView(o *order.Order) *OrderView {
	c := o.Customer()
	items := o.Items()
	itemViews := make([]LineItemView, len(items))
	for i, it := range items {
		itemViews[i] = LineItemView{
			ProductRef:    it.ProductRef,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
		}
	}
	s := o.Shipping()

	v := &OrderView{
		ID:              o.ID(),
		Code:            o.Code(),
		OrderDate:       o.OrderDate(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		PaymentIntentID: o.PaymentIntentID(),
		CustomerInfo: CustomerInfoView{
			FullName:    c.FullName,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
			Address:     c.Address,
			City:        c.City,
			PostalCode:  c.PostalCode,
			Country:     c.Country,
		},
		Items:         itemViews,
		Subtotal:      o.Subtotal(),
		Discount:      o.Discount(),
		PromotionCode: o.PromotionCode(),
		Shipping: ShippingView{
			Cost:          s.Cost,
			Service:       s.Service,
			EstimatedDays: s.EstimatedDays,
			Currency:      s.Currency,
		},
		TotalAmount: o.TotalAmount(),
		CancelledAt: o.CancelledAt(),
		Version:     o.Version(),
		UpdatedAt:   o.UpdatedAt(),
	}
	if t := o.Tracking(); t != nil {
		v.Tracking = &TrackingView{
			TrackingNumber:    t.TrackingNumber,
			Carrier:           t.Carrier,
			Status:            t.Status.String(),
			LabelURL:          t.LabelURL,
			Cost:              t.Cost,
			EstimatedDelivery: t.EstimatedDelivery,
			ShippedAt:         t.ShippedAt,
			HandedOverAt:      t.HandedOverAt,
		}
	}
	return v
}

// NewShopperOrderView adds the cancellation deadline while one applies.
func NewShopperOrderView(o *order.Order, now time.Time, window time.Duration) *OrderView {
	v := NewOrderView(o)
	if o.CheckShopperCancellation(now, window) == nil {
		until := o.CancellationDeadline(window)
		v.CancellableUntil = &until
	}
	return v
}

func NewPromotionView(p *promotion.Promotion) *PromotionView {
	return &PromotionView{
		ID:            p.ID(),
		Code:          p.Code().String(),
		Name:          p.Name(),
		DiscountType:  p.Discount().Type().String(),
		DiscountValue: p.Discount().Value().String(),
		MinPurchase:   p.MinPurchase(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		IsActive:      p.IsActive(),
		UsageLimit:    p.UsageLimit(),
		UsageCount:    p.UsageCount(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
