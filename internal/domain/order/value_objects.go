package order

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-payments/internal/domain/payment"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrMissingSensorType = errors.New("sensor type is required")
	ErrNegativePrice     = errors.New("unit price cannot be negative")
	ErrMissingToken      = errors.New("correlation token is required")
	ErrMissingPublicHash = errors.New("public hash is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ProductSnapshot freezes the configuration the customer paid for.
// Catalog edits after checkout never reach it.
type ProductSnapshot struct {
	Quantity    int               `json:"quantity"`
	SensorType  string            `json:"sensorType"`
	Colors      map[string]string `json:"colors,omitempty"`
	Accessories []string          `json:"accessories,omitempty"`
	UnitPrice   decimal.Decimal   `json:"unitPrice"`
}

func (p ProductSnapshot) Validate() error {
	if p.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(p.SensorType) == "" {
		return ErrMissingSensorType
	}
	if p.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func (p ProductSnapshot) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

func (p ProductSnapshot) clone() ProductSnapshot {
	c := p
	c.Colors = maps.Clone(p.Colors)
	c.Accessories = slices.Clone(p.Accessories)
	return c
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CustomerSnapshot is the contact and shipping data captured at checkout.
type CustomerSnapshot struct {
	Email             string  `json:"email"`
	FullName          string  `json:"fullName"`
	Address           Address `json:"address"`
	CommunityUsername string  `json:"communityUsername,omitempty"`
}

func (c CustomerSnapshot) Validate() error {
	if !emailRegex.MatchString(strings.TrimSpace(c.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// DisplayName prefers the community username over the legal name.
func (c CustomerSnapshot) DisplayName() string {
	if c.CommunityUsername != "" {
		return c.CommunityUsername
	}
	if c.FullName != "" {
		return c.FullName
	}
	return c.Email
}

func (c CustomerSnapshot) normalized() CustomerSnapshot {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

// Payment is the payment sub-record of an order.
type Payment struct {
	Provider              payment.Provider `json:"provider,omitempty"`
	ProviderTransactionID string           `json:"providerTransactionId,omitempty"`
	Status                PaymentStatus    `json:"status"`
	Amount                decimal.Decimal  `json:"amount"`
	Currency              string           `json:"currency"`
	CompletedAt           *time.Time       `json:"completedAt,omitempty"`
}

// Receipt is what a verified provider callback reports about the payment.
type Receipt struct {
	Provider      payment.Provider
	TransactionID string
	Amount        decimal.NullDecimal
	Currency      string
}

func (p Payment) withReceipt(r Receipt) Payment {
	if r.Provider != "" {
		p.Provider = r.Provider
	}
	if r.TransactionID != "" {
		p.ProviderTransactionID = r.TransactionID
	}
	if r.Amount.Valid {
		p.Amount = r.Amount.Decimal
	}
	if r.Currency != "" {
		p.Currency = strings.ToUpper(r.Currency)
	}
	return p
}
