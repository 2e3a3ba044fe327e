package order

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/errs"
)

var ErrMissingCustomerField = errs.NewKind(errs.ErrValidation, "customer information is incomplete")

// FieldError names the customer field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CustomerInfo is the contact and delivery snapshot captured at checkout. It
// does not follow later profile edits.
type CustomerInfo struct {
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	PostalCode  string
	Country     string
}

// NewCustomerInfo trims every field, lower-cases the email and rejects
// missing values.
func NewCustomerInfo(in CustomerInfo) (CustomerInfo, error) {
	out := CustomerInfo{
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		Country:     strings.TrimSpace(in.Country),
	}

	required := []struct {
		name  string
		value string
	}{
		{"fullName", out.FullName},
		{"email", strings.TrimSpace(in.Email)},
		{"phoneNumber", out.PhoneNumber},
		{"address", out.Address},
		{"city", out.City},
		{"postalCode", out.PostalCode},
		{"country", out.Country},
	}
	for _, f := range required {
		if f.value == "" {
			return CustomerInfo{}, &FieldError{Field: f.name, Err: ErrMissingCustomerField}
		}
	}

	email, err := user.NewEmail(in.Email)
	if err != nil {
		return CustomerInfo{}, &FieldError{Field: "email", Err: err}
	}
	out.Email = email.Value()
	return out, nil
}

// LineItem is the persisted copy of a cart line.
type LineItem struct {
	ProductRef    string
	Name          string
	UnitPrice     int64
	Quantity      int
	SelectedSize  string
	SelectedColor string
}

func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

type ShippingSnapshot struct {
	Cost          int64
	Service       string
	EstimatedDays int
	Currency      string
}

func ShippingFromQuote(q shipping.Quote) ShippingSnapshot {
	return ShippingSnapshot{
		Cost:          q.Cost,
		Service:       q.Service,
		EstimatedDays: q.EstimatedDays,
		Currency:      q.Currency,
	}
}

type Tracking struct {
	TrackingNumber    string
	Carrier           string
	Status            TrackingStatus
	LabelURL          string
	Cost              int64
	EstimatedDelivery time.Time
	ShippedAt         time.Time
	HandedOverAt      *time.Time
}

// CodeGenerator produces the human-facing order code.
type CodeGenerator interface {
	Generate(now time.Time) (string, error)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// RandomCodeGenerator yields ORD-YYYYMMDDhhmmss-XXXXXX codes with a random
// base32 suffix.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (RandomCodeGenerator) Generate(now time.Time) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "read random order code suffix")
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102150405"), buf), nil
}
