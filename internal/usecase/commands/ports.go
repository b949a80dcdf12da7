package commands

import (
	"context"
	"time"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	FindByCorrelationToken(ctx context.Context, token string) (*order.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	Update(ctx context.Context, o *order.Order) error
}

// ProviderAStatus is provider A's authoritative answer for one payment.
type ProviderAStatus struct {
	Status          int
	Amount          decimal.NullDecimal
	Currency        string
	Payer           string
	Detail          *payment.PaymentDetail
	ProviderOrderID string
	Metadata        string
}

type ProviderAStatusClient interface {
	GetPaymentStatus(ctx context.Context, token string) (*ProviderAStatus, error)
}

type ProviderBVerifier interface {
	// Verify echoes the raw notification back to provider B. Any transport failure is returned as an error.
	Verify(ctx context.Context, rawBody []byte) (bool, error)
}

// OrderSummary is what the purchase confirmation shows the customer.
type OrderSummary struct {
	CorrelationToken string
	Quantity         int
	SensorType       string
	Colors           map[string]string
	Accessories      []string
	Amount           string
	Currency         string
	ShippingAddress  order.Address
	LifecycleStatus  string
}

type ConfirmationSender interface {
	// SendPurchaseConfirmation reports false when the mail API accepted the call but did not send.
	SendPurchaseConfirmation(ctx context.Context, email, displayName, publicHash string, summary OrderSummary) (bool, error)
}

type LoginCodeSender interface {
	SendLoginCode(ctx context.Context, email, code string) error
}

type LoginCodeStore interface {
	Put(key, value string, ttl time.Duration)
	// Take returns the stored value and removes it. Expired entries are reported as missing.
	Take(key string) (string, bool)
}
