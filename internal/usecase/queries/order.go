package queries

import (
	"context"
	"strings"
	"time"

	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/pkg/hashid"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPublicHash = errs.New("invalid public hash")
	ErrOrderNotFound     = errs.New("order not found")
)

// OrderView is the customer-facing projection of an order.
type OrderView struct {
	ID              uuid.UUID         `json:"id"`
	PublicHash      string            `json:"public_hash"`
	LifecycleStatus string            `json:"lifecycle_status"`
	PaymentStatus   string            `json:"payment_status"`
	Provider        string            `json:"provider,omitempty"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	Product         OrderProductView  `json:"product"`
	Shipping        OrderShippingView `json:"shipping"`
	ContactEmail    string            `json:"contact_email"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type OrderProductView struct {
	Quantity    int               `json:"quantity"`
	SensorType  string            `json:"sensor_type"`
	Colors      map[string]string `json:"colors,omitempty"`
	Accessories []string          `json:"accessories,omitempty"`
}

type OrderShippingView struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderReadStore interface {
	FindByPublicHash(ctx context.Context, publicHash string) (*OrderView, error)
}

type OrderQueries interface {
	// GetByPublicHash returns the order only to the session owning its contact email.
	GetByPublicHash(ctx context.Context, publicHash string, sessionEmail string) (*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByPublicHash(ctx context.Context, publicHash string, sessionEmail string) (*OrderView, error) {
	hash, err := hashid.Parse(publicHash)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPublicHash)
	}

	view, err := q.repo.FindByPublicHash(ctx, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// a foreign order is reported as missing
	if !strings.EqualFold(view.ContactEmail, strings.TrimSpace(sessionEmail)) {
		return nil, ErrOrderNotFound
	}
	return view, nil
}
