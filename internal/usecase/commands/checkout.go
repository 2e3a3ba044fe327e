package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"storefront-orders/internal/domain/cart"
	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/shipping"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxOrderCodeAttempts = 3
	idempotencyTTL       = 24 * time.Hour
)

var (
	ErrProductNotFound       = errs.NewKind(errs.ErrNotFound, "product not found")
	ErrPaymentAmountMismatch = errs.NewKind(errs.ErrValidation, "payment amount does not match the order total")
	ErrIdempotencyKeyReused  = errs.NewKind(errs.ErrConflict, "idempotency key was used for a different request")
	ErrIdempotencyInProgress = errs.NewKind(errs.ErrConflict, "a request with this idempotency key is still in progress")
	ErrOrderCodeExhausted    = errs.NewKind(errs.ErrConflict, "could not allocate a unique order code")
)

type CartLineInput struct {
	ProductRef    string `json:"productRef"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

type QuoteInput struct {
	Lines         []CartLineInput
	City          string
	PromotionCode string
}

type QuoteResult struct {
	Subtotal       int64
	Discount       int64
	Promotion      *EvaluationResult
	Shipping       shipping.Quote
	Total          int64
	Currency       string
	CODAllowed     bool
	PaymentMethods []order.PaymentMethod
}

type PaymentIntentResult struct {
	IntentID     string
	ClientSecret string
	Amount       int64
	AmountMinor  int64
	Currency     string
}

type PlaceOrderInput struct {
	Lines           []CartLineInput    `json:"lines"`
	Customer        order.CustomerInfo `json:"customer"`
	PromotionCode   string             `json:"promotionCode,omitempty"`
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
}

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type CheckoutCommands interface {
	Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error)
	CreatePaymentIntent(ctx context.Context, in QuoteInput) (*PaymentIntentResult, error)
	PlaceOrder(ctx context.Context, actor user.Identity, in PlaceOrderInput, idempotencyKey *uuid.UUID) (*PlaceOrderResult, error)
}

type checkoutUseCaseImpl struct {
	uow       shared.UnitOfWork
	evaluator PromotionEvaluator
	estimator shipping.Estimator
	factory   *order.Factory
	payments  shared.PaymentGateway
	events    shared.EventPublisher
	policy    order.Policy
	currency  string
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	evaluator PromotionEvaluator,
	estimator shipping.Estimator,
	factory *order.Factory,
	payments shared.PaymentGateway,
	events shared.EventPublisher,
	policy order.Policy,
	currency string,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:       uow,
		evaluator: evaluator,
		estimator: estimator,
		factory:   factory,
		payments:  payments,
		events:    events,
		policy:    policy,
		currency:  currency,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *checkoutUseCaseImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	c, err := priceCart(ctx, uc.uow.CommandReads(), in.Lines)
	if err != nil {
		return nil, err
	}
	subtotal := c.Subtotal()
	ship := uc.estimator.Estimate(in.City, c.ItemCount())

	res := &QuoteResult{
		Subtotal: subtotal,
		Shipping: ship,
		Currency: uc.currency,
	}
	if in.PromotionCode != "" {
		eval, err := uc.evaluator.Preview(ctx, in.PromotionCode, subtotal)
		if err != nil {
			return nil, err
		}
		res.Promotion = eval
		if eval.Valid {
			res.Discount = eval.DiscountAmount
		}
	}
	res.Total = subtotal - res.Discount + ship.Cost
	res.CODAllowed = uc.factory.CODAllowed(res.Total)
	res.PaymentMethods = []order.PaymentMethod{order.PaymentCard}
	if res.CODAllowed {
		res.PaymentMethods = append(res.PaymentMethods, order.PaymentCOD)
	}
	return res, nil
}

func (uc *checkoutUseCaseImpl) CreatePaymentIntent(ctx context.Context, in QuoteInput) (*PaymentIntentResult, error) {
	q, err := uc.Quote(ctx, in)
	if err != nil {
		return nil, err
	}
	intent, err := uc.payments.CreateIntent(ctx, toMinor(q.Total), q.Currency)
	if err != nil {
		uc.logger.Error("failed to create payment intent", "error", err.Error(), "amount", q.Total)
		return nil, errs.Upstream(err, "create payment intent")
	}
	return &PaymentIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       q.Total,
		AmountMinor:  intent.AmountMinor,
		Currency:     intent.Currency,
	}, nil
}

func (uc *checkoutUseCaseImpl) PlaceOrder(ctx context.Context, actor user.Identity, in PlaceOrderInput, idempotencyKey *uuid.UUID) (*PlaceOrderResult, error) {
	method, err := order.NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	// Orders are always recorded against the authenticated shopper.
	in.Customer.Email = actor.Email.Value()

	if idempotencyKey != nil {
		replayed, err := uc.claimIdempotencyKey(ctx, *idempotencyKey, actor.Email.Value(), requestHash(in))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &PlaceOrderResult{Order: replayed, IsReplayed: true}, nil
		}
	}

	o, err := uc.placeOrder(ctx, in, method, idempotencyKey, actor.Email.Value())
	if err != nil {
		if idempotencyKey != nil {
			uc.releaseIdempotencyKey(ctx, *idempotencyKey, actor.Email.Value())
		}
		return nil, err
	}

	uc.publish(ctx, shared.EventOrderPlaced, map[string]any{
		"orderId":       o.ID().String(),
		"code":          o.Code(),
		"email":         o.Customer().Email,
		"totalAmount":   o.TotalAmount(),
		"paymentMethod": o.PaymentMethod().String(),
		"promotionCode": o.PromotionCode(),
	})

	return &PlaceOrderResult{
		Order: queries.NewShopperOrderView(o, uc.clock.Now(), uc.policy.CancellationWindow),
	}, nil
}

func (uc *checkoutUseCaseImpl) placeOrder(
	ctx context.Context,
	in PlaceOrderInput,
	method order.PaymentMethod,
	idempotencyKey *uuid.UUID,
	ownerEmail string,
) (*order.Order, error) {
	var intentID *string
	var confirmation *shared.PaymentConfirmation
	if method == order.PaymentCard && in.PaymentIntentID != "" {
		id := in.PaymentIntentID
		intentID = &id
		conf, err := uc.payments.Confirmation(ctx, id)
		if err != nil {
			uc.logger.Error("failed to confirm payment intent", "intent_id", id, "error", err.Error())
			return nil, errs.Upstream(err, "confirm payment intent")
		}
		confirmation = conf
	}

	var placed *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := priceCart(ctx, tx.Reads(), in.Lines)
		if err != nil {
			return err
		}

		var discount int64
		var promoCode *string
		if in.PromotionCode != "" {
			redemption, err := uc.evaluator.Redeem(ctx, tx, in.PromotionCode, c.Subtotal())
			if err != nil {
				return err
			}
			discount = redemption.DiscountAmount
			code := redemption.Promotion.Code().String()
			promoCode = &code
		}

		o, err := uc.factory.Assemble(order.AssembleParams{
			Cart:             c,
			Customer:         in.Customer,
			Shipping:         uc.estimator.Estimate(in.Customer.City, c.ItemCount()),
			Discount:         discount,
			PromotionCode:    promoCode,
			PaymentMethod:    method,
			PaymentIntentID:  intentID,
			PaymentConfirmed: confirmation != nil && confirmation.Confirmed,
		})
		if err != nil {
			return err
		}
		if confirmation != nil && confirmation.AmountMinor != toMinor(o.TotalAmount()) {
			return ErrPaymentAmountMismatch
		}

		o, err = uc.createWithUniqueCode(ctx, tx, o)
		if err != nil {
			return err
		}
		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *idempotencyKey, ownerEmail, o.ID()); err != nil {
				return err
			}
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (uc *checkoutUseCaseImpl) createWithUniqueCode(ctx context.Context, tx shared.Tx, o *order.Order) (*order.Order, error) {
	for attempt := 1; attempt <= maxOrderCodeAttempts; attempt++ {
		err := tx.Orders().Create(ctx, o)
		if err == nil {
			return o, nil
		}
		err = shared.Translate(err, nil, order.ErrDuplicateOrderCode)
		if !errs.Is(err, order.ErrDuplicateOrderCode) {
			return nil, err
		}
		uc.logger.Warn("order code collision, retrying", "code", o.Code(), "attempt", attempt)
		code, genErr := uc.factory.Codes.Generate(o.OrderDate())
		if genErr != nil {
			return nil, genErr
		}
		o = o.WithCode(code)
	}
	return nil, ErrOrderCodeExhausted
}

// claimIdempotencyKey returns the original order when the key was already
// completed for the same request.
func (uc *checkoutUseCaseImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, ownerEmail, hash string) (*queries.OrderView, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	var replayID *uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, ownerEmail, hash, expiresAt)
		if err != nil || inserted {
			return err
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, ownerEmail)
		if err != nil {
			return err
		}
		if !existing.ExpiresAt.After(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, key, ownerEmail, hash, now, expiresAt)
			if err != nil {
				return err
			}
			if claimed {
				return nil
			}
			return ErrIdempotencyInProgress
		}
		if existing.RequestHash != hash {
			return ErrIdempotencyKeyReused
		}
		switch existing.Status {
		case shared.IdempotencyCompleted:
			if existing.ResultOrderID == nil {
				return errs.New("completed idempotency key has no order")
			}
			replayID = existing.ResultOrderID
			return nil
		default:
			return ErrIdempotencyInProgress
		}
	})
	if err != nil || replayID == nil {
		return nil, err
	}

	o, err := uc.uow.CommandReads().OrderByID(ctx, *replayID)
	if err != nil {
		return nil, shared.Translate(err, order.ErrOrderNotFound, nil)
	}
	return queries.NewShopperOrderView(o, now, uc.policy.CancellationWindow), nil
}

func (uc *checkoutUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID, ownerEmail string) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key, ownerEmail)
	})
	if err != nil {
		uc.logger.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

func (uc *checkoutUseCaseImpl) publish(ctx context.Context, name string, payload map[string]any) {
	publishEvent(ctx, uc.events, uc.logger, uc.clock, name, payload)
}

// priceCart builds the cart from catalog prices and stock; the client only
// chooses products and quantities.
func priceCart(ctx context.Context, reads shared.CommandReads, in []CartLineInput) (*cart.Cart, error) {
	if len(in) == 0 {
		return nil, cart.ErrEmptyCart
	}
	refs := make([]string, 0, len(in))
	for _, l := range in {
		refs = append(refs, l.ProductRef)
	}
	products, err := reads.ProductsByRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(in))
	for _, l := range in {
		p, ok := products[l.ProductRef]
		if !ok {
			return nil, errs.Wrapf(ErrProductNotFound, "product %s", l.ProductRef)
		}
		lines = append(lines, cart.Line{
			ProductRef:     p.Ref,
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			Quantity:       l.Quantity,
			SelectedSize:   l.SelectedSize,
			SelectedColor:  l.SelectedColor,
			AvailableStock: p.StockQuantity,
		})
	}
	return cart.New(lines)
}

func toMinor(amount int64) int64 {
	return amount * 100
}

func requestHash(in PlaceOrderInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
