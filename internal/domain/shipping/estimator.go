package shipping

import (
	"log/slog"
	"math"
	"strings"

	"storefront-orders/internal/pkg/errs"
)

var (
	ErrNegativeItemCount = errs.New("item count cannot be negative")
	ErrCostOverflow      = errs.New("shipping cost overflows")
)

type Quote struct {
	Cost          int64
	EstimatedDays int
	Service       string
	Currency      string
	// Fallback is set when the quote is the conservative default.
	Fallback bool
}

type Estimator interface {
	Estimate(city string, itemCount int) Quote
}

type Tier int

const (
	TierDefault Tier = iota
	TierPrimary
	TierSecondary
)

type TierRate struct {
	Surcharge int64
	Days      int
}

type Rates struct {
	BaseCost        int64
	PerExtraItem    int64
	Currency        string
	Service         string
	PrimaryCities   []string
	SecondaryCities []string
	Tiers           map[Tier]TierRate
	Fallback        Quote
}

func DefaultRates() Rates {
	return Rates{
		BaseCost:        200,
		PerExtraItem:    50,
		Currency:        "PKR",
		Service:         "Standard Delivery",
		PrimaryCities:   []string{"karachi"},
		SecondaryCities: []string{"lahore", "islamabad", "rawalpindi"},
		Tiers: map[Tier]TierRate{
			TierPrimary:   {Surcharge: 100, Days: 1},
			TierSecondary: {Surcharge: 200, Days: 2},
			TierDefault:   {Surcharge: 300, Days: 3},
		},
		Fallback: Quote{
			Cost:          300,
			EstimatedDays: 3,
			Service:       "Standard Delivery",
			Currency:      "PKR",
			Fallback:      true,
		},
	}
}

type TieredEstimator struct {
	rates     Rates
	primary   map[string]struct{}
	secondary map[string]struct{}
	logger    *slog.Logger
}

func NewTieredEstimator(rates Rates, logger *slog.Logger) *TieredEstimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TieredEstimator{
		rates:     rates,
		primary:   citySet(rates.PrimaryCities),
		secondary: citySet(rates.SecondaryCities),
		logger:    logger,
	}
}

func NewDefaultEstimator(logger *slog.Logger) *TieredEstimator {
	return NewTieredEstimator(DefaultRates(), logger)
}

// Estimate never fails: any internal error yields the fallback quote so that
// checkout is not blocked on an advisory number.
func (e *TieredEstimator) Estimate(city string, itemCount int) Quote {
	q, err := e.quote(city, itemCount)
	if err != nil {
		e.logger.Warn("shipping estimate fell back to default quote",
			"city", city,
			"item_count", itemCount,
			"error", err.Error())
		return e.rates.Fallback
	}
	return q
}

func (e *TieredEstimator) TierOf(city string) Tier {
	key := normalizeCity(city)
	if _, ok := e.primary[key]; ok {
		return TierPrimary
	}
	if _, ok := e.secondary[key]; ok {
		return TierSecondary
	}
	return TierDefault
}

func (e *TieredEstimator) quote(city string, itemCount int) (Quote, error) {
	if itemCount < 0 {
		return Quote{}, ErrNegativeItemCount
	}
	rate, ok := e.rates.Tiers[e.TierOf(city)]
	if !ok {
		return Quote{}, errs.New("no rate configured for city tier")
	}

	extra := int64(0)
	if itemCount > 1 {
		extra = int64(itemCount - 1)
	}
	fixed := e.rates.BaseCost + rate.Surcharge
	if e.rates.PerExtraItem > 0 && extra > (math.MaxInt64-fixed)/e.rates.PerExtraItem {
		return Quote{}, ErrCostOverflow
	}

	return Quote{
		Cost:          fixed + extra*e.rates.PerExtraItem,
		EstimatedDays: rate.Days,
		Service:       e.rates.Service,
		Currency:      e.rates.Currency,
	}, nil
}

func citySet(cities []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		set[normalizeCity(c)] = struct{}{}
	}
	return set
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
