package promotion

import (
	"time"

	"storefront-orders/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound = errs.NewKind(errs.ErrNotFound, "promotion not found")
	ErrInactive          = errs.NewKind(errs.ErrInvalidState, "promotion is not active")
	ErrOutOfWindow       = errs.NewKind(errs.ErrInvalidState, "promotion is not valid at this time")
	ErrBelowMinimum      = errs.NewKind(errs.ErrInvalidState, "subtotal is below the promotion minimum purchase")
	ErrUsageExceeded     = errs.NewKind(errs.ErrInvalidState, "promotion usage limit reached")
	ErrDuplicateCode     = errs.NewKind(errs.ErrConflict, "promotion code already exists")
)

type Promotion struct {
	id          uuid.UUID
	code        Code
	name        string
	discount    Discount
	minPurchase int64
	startDate   time.Time
	endDate     time.Time
	isActive    bool
	usageLimit  *int32
	usageCount  int32
	version     int32
	createdAt   time.Time
	updatedAt   time.Time
}

type NewParams struct {
	Code        string
	Name        string
	Discount    Discount
	MinPurchase int64
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	UsageLimit  *int32
}

func NewPromotion(p NewParams, now time.Time) (*Promotion, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	if !p.Discount.Type().IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if p.MinPurchase < 0 {
		return nil, ErrInvalidMinPurchase
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() || p.StartDate.After(p.EndDate) {
		return nil, ErrInvalidWindow
	}
	if p.UsageLimit != nil && *p.UsageLimit <= 0 {
		return nil, ErrInvalidUsageLimit
	}

	name := p.Name
	if name == "" {
		name = code.String()
	}

	return &Promotion{
		id:          uuid.New(),
		code:        code,
		name:        name,
		discount:    p.Discount,
		minPurchase: p.MinPurchase,
		startDate:   p.StartDate,
		endDate:     p.EndDate,
		isActive:    p.IsActive,
		usageLimit:  p.UsageLimit,
		usageCount:  0,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPromotion(
	id uuid.UUID,
	code Code,
	name string,
	discount Discount,
	minPurchase int64,
	startDate, endDate time.Time,
	isActive bool,
	usageLimit *int32,
	usageCount int32,
	version int32,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:          id,
		code:        code,
		name:        name,
		discount:    discount,
		minPurchase: minPurchase,
		startDate:   startDate,
		endDate:     endDate,
		isActive:    isActive,
		usageLimit:  usageLimit,
		usageCount:  usageCount,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) Code() Code           { return p.code }
func (p *Promotion) Name() string         { return p.name }
func (p *Promotion) Discount() Discount   { return p.discount }
func (p *Promotion) MinPurchase() int64   { return p.minPurchase }
func (p *Promotion) StartDate() time.Time { return p.startDate }
func (p *Promotion) EndDate() time.Time   { return p.endDate }
func (p *Promotion) IsActive() bool       { return p.isActive }
func (p *Promotion) UsageLimit() *int32   { return p.usageLimit }
func (p *Promotion) UsageCount() int32    { return p.usageCount }
func (p *Promotion) Version() int32       { return p.version }
func (p *Promotion) CreatedAt() time.Time { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time { return p.updatedAt }

// InWindow reports whether now lies in [startDate, endDate], both edges inclusive.
func (p *Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.startDate) && !now.After(p.endDate)
}

func (p *Promotion) HasUsageRemaining() bool {
	return p.usageLimit == nil || p.usageCount < *p.usageLimit
}

// AdvanceVersion mirrors the version bump of a successful guarded write.
func (p *Promotion) AdvanceVersion() {
	p.version++
}

// SetActive flips the kill switch and reports whether anything changed.
func (p *Promotion) SetActive(active bool, now time.Time) bool {
	if p.isActive == active {
		return false
	}
	p.isActive = active
	p.updatedAt = now
	return true
}
