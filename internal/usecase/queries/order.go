package queries

import (
	"context"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrStaffOnly = errs.NewKind(errs.ErrForbidden, "staff access required")

type OrderQueries interface {
	// ListForShopper hides cancelled orders past their grace period unless includeAll.
	ListForShopper(ctx context.Context, actor user.Identity, includeAll bool) ([]*OrderView, error)
	GetForShopper(ctx context.Context, actor user.Identity, id uuid.UUID) (*OrderView, error)
	TrackingForShopper(ctx context.Context, actor user.Identity, id uuid.UUID) (*TrackingStatusView, error)
	ListForStaff(ctx context.Context, actor user.Identity, filter StaffOrderFilter) ([]*OrderView, error)
	GetForStaff(ctx context.Context, actor user.Identity, id uuid.UUID) (*OrderView, error)
	TrackingForStaff(ctx context.Context, actor user.Identity, id uuid.UUID) (*TrackingStatusView, error)
	Summary(ctx context.Context, actor user.Identity) (*DashboardView, error)
}

// StaffOrderFilter narrows the back-office order list. Search matches the
// order code, customer name or email as a case-insensitive substring.
type StaffOrderFilter struct {
	Status *order.Status
	Search string
}

const recentOrdersLimit = 5

// OrderViewRepo returns orders newest first.
type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*order.Order, error)
	FindAll(ctx context.Context, status *order.Status) ([]*order.Order, error)
}

type orderQueriesImpl struct {
	repo   OrderViewRepo
	labels shared.LabelProvider
	policy order.Policy
	clock  clock.Clock
}

func NewOrderQueries(repo OrderViewRepo, labels shared.LabelProvider, policy order.Policy, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{repo: repo, labels: labels, policy: policy, clock: clk}
}

func (q *orderQueriesImpl) ListForShopper(ctx context.Context, actor user.Identity, includeAll bool) ([]*OrderView, error) {
	orders, err := q.repo.FindByEmail(ctx, actor.Email.Value())
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	if !includeAll {
		orders = q.policy.Visibility.Filter(orders, now)
	}
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewShopperOrderView(o, now, q.policy.CancellationWindow)
	}
	return views, nil
}

func (q *orderQueriesImpl) GetForShopper(ctx context.Context, actor user.Identity, id uuid.UUID) (*OrderView, error) {
	o, err := q.ownedOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return NewShopperOrderView(o, q.clock.Now(), q.policy.CancellationWindow), nil
}

func (q *orderQueriesImpl) TrackingForShopper(ctx context.Context, actor user.Identity, id uuid.UUID) (*TrackingStatusView, error) {
	o, err := q.ownedOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return q.tracking(ctx, o)
}

func (q *orderQueriesImpl) ListForStaff(ctx context.Context, actor user.Identity, filter StaffOrderFilter) ([]*OrderView, error) {
	if !actor.Staff {
		return nil, ErrStaffOnly
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, order.ErrInvalidStatus
	}
	orders, err := q.repo.FindAll(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		if o.MatchesSearch(filter.Search) {
			views = append(views, NewOrderView(o))
		}
	}
	return views, nil
}

// Summary aggregates every stored order. Revenue and items sold leave out
// cancelled orders.
func (q *orderQueriesImpl) Summary(ctx context.Context, actor user.Identity) (*DashboardView, error) {
	if !actor.Staff {
		return nil, ErrStaffOnly
	}
	orders, err := q.repo.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	v := &DashboardView{TotalOrders: len(orders), RecentOrders: []*OrderView{}}
	for i, o := range orders {
		if i < recentOrdersLimit {
			v.RecentOrders = append(v.RecentOrders, NewOrderView(o))
		}
		switch o.Status() {
		case order.StatusPending:
			v.PendingOrders++
		case order.StatusProcessing:
			v.ProcessingOrders++
		case order.StatusCompleted:
			v.CompletedOrders++
		case order.StatusCancelled:
			v.CancelledOrders++
			continue
		}
		v.TotalRevenue += o.TotalAmount()
		for _, item := range o.Items() {
			v.ItemsSold += item.Quantity
		}
	}
	if billable := v.TotalOrders - v.CancelledOrders; billable > 0 {
		v.AverageOrderValue = v.TotalRevenue / int64(billable)
	}
	return v, nil
}

func (q *orderQueriesImpl) GetForStaff(ctx context.Context, actor user.Identity, id uuid.UUID) (*OrderView, error) {
	if !actor.Staff {
		return nil, ErrStaffOnly
	}
	o, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewOrderView(o), nil
}

func (q *orderQueriesImpl) TrackingForStaff(ctx context.Context, actor user.Identity, id uuid.UUID) (*TrackingStatusView, error) {
	if !actor.Staff {
		return nil, ErrStaffOnly
	}
	o, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return q.tracking(ctx, o)
}

func (q *orderQueriesImpl) find(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, order.ErrOrderNotFound, nil)
	}
	return o, nil
}

// ownedOrder reports orders of other shoppers as missing.
func (q *orderQueriesImpl) ownedOrder(ctx context.Context, actor user.Identity, id uuid.UUID) (*order.Order, error) {
	o, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(actor.Email) {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (q *orderQueriesImpl) tracking(ctx context.Context, o *order.Order) (*TrackingStatusView, error) {
	t := o.Tracking()
	if t == nil {
		return nil, order.ErrNoShipment
	}
	info, err := q.labels.TrackingStatus(ctx, t.TrackingNumber)
	if err != nil {
		return nil, errs.Upstream(err, "fetch tracking status")
	}
	return &TrackingStatusView{
		OrderID:        o.ID(),
		TrackingNumber: t.TrackingNumber,
		Carrier:        t.Carrier,
		Status:         info.Status,
		Location:       info.Location,
	}, nil
}
