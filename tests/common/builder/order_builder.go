//go:build unit || e2e

package builder

import (
	"time"

	domorder "storefront-payments/internal/domain/order"
	reqdto "storefront-payments/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	Token      string
	PublicHash string
	Product    domorder.ProductSnapshot
	Customer   domorder.CustomerSnapshot
	Currency   string
	Now        time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Token:      "MT_123",
		PublicHash: "0123456789abcdef",
		Product: domorder.ProductSnapshot{
			Quantity:    1,
			SensorType:  "optical",
			Colors:      map[string]string{"shell": "black", "keys": "white"},
			Accessories: []string{"cable"},
			UnitPrice:   decimal.RequireFromString("129.90"),
		},
		Customer: domorder.CustomerSnapshot{
			Email:    "buyer@example.com",
			FullName: "Test Buyer",
			Address: domorder.Address{
				Line1:      "1 Test Street",
				City:       "Berlin",
				PostalCode: "10115",
				Country:    "DE",
			},
			CommunityUsername: "buyer42",
		},
		Currency: "EUR",
		Now:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithToken(token string) *OrderBuilder {
	b.Token = token
	return b
}

func (b *OrderBuilder) WithQuantity(q int) *OrderBuilder {
	b.Product.Quantity = q
	return b
}

func (b *OrderBuilder) WithEmail(email string) *OrderBuilder {
	b.Customer.Email = email
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.NewPendingOrder(b.Token, b.PublicHash, b.Product, b.Customer, b.Currency, b.Now)
}

// BuildStored returns an order as the repository would load it.
func (b *OrderBuilder) BuildStored(lifecycle domorder.LifecycleStatus, status domorder.PaymentStatus) *domorder.Order {
	pay := domorder.Payment{
		Status:   status,
		Amount:   b.Product.Total(),
		Currency: b.Currency,
	}
	if status == domorder.PaymentCompleted {
		at := b.Now
		pay.CompletedAt = &at
	}
	return domorder.Reconstruct(uuid.New(), b.Token, b.PublicHash, lifecycle, pay, b.Product, b.Customer, b.Now, b.Now)
}

func (b *OrderBuilder) BuildMetadata() domorder.Metadata {
	return domorder.NewMetadata(b.Product, b.Customer)
}

func (b *OrderBuilder) EncodedMetadata() string {
	s, err := b.BuildMetadata().Encode()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *OrderBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Product: reqdto.ProductSelection{
			Quantity:    b.Product.Quantity,
			SensorType:  b.Product.SensorType,
			Colors:      b.Product.Colors,
			Accessories: b.Product.Accessories,
		},
		Customer: reqdto.CustomerDetails{
			Email:             b.Customer.Email,
			FullName:          b.Customer.FullName,
			Line1:             b.Customer.Address.Line1,
			Line2:             b.Customer.Address.Line2,
			City:              b.Customer.Address.City,
			Region:            b.Customer.Address.Region,
			PostalCode:        b.Customer.Address.PostalCode,
			Country:           b.Customer.Address.Country,
			CommunityUsername: b.Customer.CommunityUsername,
		},
	}
}
