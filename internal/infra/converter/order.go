package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderColumns is the select list ScanOrder expects.
const OrderColumns = `id, code, order_date, status, payment_method, payment_status, payment_intent_id,
	customer, items, subtotal, discount, promotion_code, shipping, total_amount,
	cancelled_at, tracking, version, updated_at`

// JSONB documents stored on the order row. Field names are part of the
// stored format and must not change without a migration.
type customerDoc struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

type itemDoc struct {
	ProductRef    string `json:"productRef"`
	Name          string `json:"name"`
	UnitPrice     int64  `json:"unitPrice"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

type shippingDoc struct {
	Cost          int64  `json:"cost"`
	Service       string `json:"service"`
	EstimatedDays int    `json:"estimatedDays"`
	Currency      string `json:"currency"`
}

type trackingDoc struct {
	TrackingNumber    string     `json:"trackingNumber"`
	Carrier           string     `json:"carrier"`
	Status            string     `json:"status"`
	LabelURL          string     `json:"labelUrl"`
	Cost              int64      `json:"cost"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
	ShippedAt         time.Time  `json:"shippedAt"`
	HandedOverAt      *time.Time `json:"handedOverAt,omitempty"`
}

// OrderRow holds the column values written for an order.
type OrderRow struct {
	ID              uuid.UUID
	Code            string
	OrderDate       pgtype.Timestamptz
	Status          string
	PaymentMethod   string
	PaymentStatus   string
	PaymentIntentID pgtype.Text
	CustomerEmail   string
	Customer        []byte
	Items           []byte
	Subtotal        int64
	Discount        int64
	PromotionCode   pgtype.Text
	Shipping        []byte
	TotalAmount     int64
	CancelledAt     pgtype.Timestamptz
	Tracking        []byte
	Version         int32
	UpdatedAt       pgtype.Timestamptz
}

func OrderToRow(o *order.Order) (OrderRow, error) {
	s := o.Snapshot()

	customer, err := json.Marshal(customerDoc(s.Customer))
	if err != nil {
		return OrderRow{}, fmt.Errorf("encode customer: %w", err)
	}
	docs := make([]itemDoc, len(s.Items))
	for i, it := range s.Items {
		docs[i] = itemDoc(it)
	}
	items, err := json.Marshal(docs)
	if err != nil {
		return OrderRow{}, fmt.Errorf("encode items: %w", err)
	}
	shipping, err := json.Marshal(shippingDoc(s.Shipping))
	if err != nil {
		return OrderRow{}, fmt.Errorf("encode shipping: %w", err)
	}
	var tracking []byte
	if t := s.Tracking; t != nil {
		tracking, err = json.Marshal(trackingDoc{
			TrackingNumber:    t.TrackingNumber,
			Carrier:           t.Carrier,
			Status:            t.Status.String(),
			LabelURL:          t.LabelURL,
			Cost:              t.Cost,
			EstimatedDelivery: t.EstimatedDelivery,
			ShippedAt:         t.ShippedAt,
			HandedOverAt:      t.HandedOverAt,
		})
		if err != nil {
			return OrderRow{}, fmt.Errorf("encode tracking: %w", err)
		}
	}

	return OrderRow{
		ID:              s.ID,
		Code:            s.Code,
		OrderDate:       pgconv.TimeToPgtype(s.OrderDate),
		Status:          s.Status.String(),
		PaymentMethod:   s.PaymentMethod.String(),
		PaymentStatus:   s.PaymentStatus.String(),
		PaymentIntentID: pgconv.StringPtrToPgtype(s.PaymentIntentID),
		CustomerEmail:   s.Customer.Email,
		Customer:        customer,
		Items:           items,
		Subtotal:        s.Subtotal,
		Discount:        s.Discount,
		PromotionCode:   pgconv.StringPtrToPgtype(s.PromotionCode),
		Shipping:        shipping,
		TotalAmount:     s.TotalAmount,
		CancelledAt:     pgconv.TimePtrToPgtype(s.CancelledAt),
		Tracking:        tracking,
		Version:         s.Version,
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt),
	}, nil
}

// ScanOrder reads one row selected with OrderColumns.
func ScanOrder(row pgx.Row) (*order.Order, error) {
	var r OrderRow
	err := row.Scan(
		&r.ID, &r.Code, &r.OrderDate, &r.Status, &r.PaymentMethod, &r.PaymentStatus, &r.PaymentIntentID,
		&r.Customer, &r.Items, &r.Subtotal, &r.Discount, &r.PromotionCode, &r.Shipping, &r.TotalAmount,
		&r.CancelledAt, &r.Tracking, &r.Version, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return RowToOrder(r)
}

func RowToOrder(r OrderRow) (*order.Order, error) {
	var c customerDoc
	if err := json.Unmarshal(r.Customer, &c); err != nil {
		return nil, fmt.Errorf("decode customer: %w", err)
	}
	var docs []itemDoc
	if err := json.Unmarshal(r.Items, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]order.LineItem, len(docs))
	for i, d := range docs {
		items[i] = order.LineItem(d)
	}
	var s shippingDoc
	if err := json.Unmarshal(r.Shipping, &s); err != nil {
		return nil, fmt.Errorf("decode shipping: %w", err)
	}
	var tracking *order.Tracking
	if len(r.Tracking) > 0 {
		var t trackingDoc
		if err := json.Unmarshal(r.Tracking, &t); err != nil {
			return nil, fmt.Errorf("decode tracking: %w", err)
		}
		tracking = &order.Tracking{
			TrackingNumber:    t.TrackingNumber,
			Carrier:           t.Carrier,
			Status:            order.TrackingStatus(t.Status),
			LabelURL:          t.LabelURL,
			Cost:              t.Cost,
			EstimatedDelivery: t.EstimatedDelivery,
			ShippedAt:         t.ShippedAt,
			HandedOverAt:      t.HandedOverAt,
		}
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:              r.ID,
		Code:            r.Code,
		OrderDate:       r.OrderDate.Time,
		Status:          order.Status(r.Status),
		PaymentMethod:   order.PaymentMethod(r.PaymentMethod),
		PaymentStatus:   order.PaymentStatus(r.PaymentStatus),
		PaymentIntentID: pgconv.StringPtrFromPgtype(r.PaymentIntentID),
		Customer:        order.CustomerInfo(c),
		Items:           items,
		Subtotal:        r.Subtotal,
		Discount:        r.Discount,
		PromotionCode:   pgconv.StringPtrFromPgtype(r.PromotionCode),
		Shipping:        order.ShippingSnapshot(s),
		TotalAmount:     r.TotalAmount,
		CancelledAt:     pgconv.TimePtrFromPgtype(r.CancelledAt),
		Tracking:        tracking,
		Version:         r.Version,
		UpdatedAt:       r.UpdatedAt.Time,
	}), nil
}
