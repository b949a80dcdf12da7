//go:build unit || e2e

package fake

import (
	"context"
	"sync"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"

	"github.com/google/uuid"
)

// OrderRepository keeps orders in memory and counts writes.
// Stored orders are copies, so callers see changes only after Update.
// Like the SQL repository, Update refuses to overwrite a completed payment.
type OrderRepository struct {
	mu      sync.Mutex
	byToken map[string]*order.Order

	Creates int
	Updates int

	// error hooks, checked before the in-memory operation. CreateErr runs unlocked.
	FindErr   error
	CreateErr func(o *order.Order) error
	UpdateErr error
}

func NewOrderRepository(seed ...*order.Order) *OrderRepository {
	r := &OrderRepository{byToken: map[string]*order.Order{}}
	for _, o := range seed {
		r.byToken[o.CorrelationToken()] = clone(o)
	}
	return r
}

func (r *OrderRepository) FindByCorrelationToken(_ context.Context, token string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	o, ok := r.byToken[token]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return clone(o), nil
}

func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	for _, o := range r.byToken {
		if o.ID() == id {
			return clone(o), nil
		}
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func (r *OrderRepository) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	if r.CreateErr != nil {
		if err := r.CreateErr(o); err != nil {
			return uuid.Nil, err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byToken[o.CorrelationToken()]; ok {
		return uuid.Nil, infra.WrapRepoErr("order already exists", nil, infra.KindDuplicateKey)
	}
	o.AssignID(uuid.New())
	r.byToken[o.CorrelationToken()] = clone(o)
	r.Creates++
	return o.ID(), nil
}

func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	stored, ok := r.byToken[o.CorrelationToken()]
	if !ok || stored.Payment().Status == order.PaymentCompleted {
		return infra.WrapRepoErr("order missing or payment already completed", nil, infra.KindStaleWrite)
	}
	r.byToken[o.CorrelationToken()] = clone(o)
	r.Updates++
	return nil
}

// Put stores an order directly, bypassing the write counters.
func (r *OrderRepository) Put(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[o.CorrelationToken()] = clone(o)
}

// Get returns the stored copy or nil.
func (r *OrderRepository) Get(token string) *order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byToken[token]
	if !ok {
		return nil
	}
	return clone(o)
}

func (r *OrderRepository) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Creates + r.Updates
}

func clone(o *order.Order) *order.Order {
	pay := o.Payment()
	if pay.CompletedAt != nil {
		at := *pay.CompletedAt
		pay.CompletedAt = &at
	}
	return order.Reconstruct(
		o.ID(), o.CorrelationToken(), o.PublicHash(), o.LifecycleStatus(),
		pay, o.Product(), o.Customer(), o.CreatedAt(), o.UpdatedAt(),
	)
}
