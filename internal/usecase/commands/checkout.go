package commands

import (
	"context"
	"strings"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/pkg/hashid"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const correlationTokenPrefix = "MT_"

var (
	ErrInvalidCheckout = errs.New("invalid checkout request")
	ErrCheckoutFailed  = errs.New("checkout failed")
)

type CheckoutInput struct {
	Product  order.ProductSnapshot
	Customer order.CustomerSnapshot
}

type CheckoutResult struct {
	OrderID          uuid.UUID
	CorrelationToken string
	PublicHash       string
	// Metadata is embedded in the provider request and echoed back on callbacks.
	Metadata string
	Amount   decimal.Decimal
	Currency string
}

type CheckoutCommands interface {
	Initiate(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	repo      OrderRepository
	hasher    *hashid.Hasher
	clock     clock.Clock
	currency  string
	unitPrice decimal.Decimal
}

func NewCheckoutCommands(repo OrderRepository, hasher *hashid.Hasher, clk clock.Clock, cfg config.Config) (CheckoutCommands, error) {
	price, err := decimal.NewFromString(cfg.Checkout.UnitPrice)
	if err != nil {
		return nil, errs.Wrap(err, "invalid checkout unit price")
	}
	return &checkoutCommandsImpl{
		repo:      repo,
		hasher:    hasher,
		clock:     clk,
		currency:  cfg.Checkout.Currency,
		unitPrice: price,
	}, nil
}

func NewCorrelationToken() string {
	return correlationTokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Initiate stores the PENDING_PAYMENT order the provider callbacks will later reconcile.
// The unit price always comes from configuration.
func (uc *checkoutCommandsImpl) Initiate(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	product := in.Product
	product.UnitPrice = uc.unitPrice

	token := NewCorrelationToken()
	publicHash := uc.hasher.Derive(in.Customer.CommunityUsername, token)

	o, err := order.NewPendingOrder(token, publicHash, product, in.Customer, uc.currency, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	meta, err := order.NewMetadata(o.Product(), o.Customer()).Encode()
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	id, err := uc.repo.Create(ctx, o)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	return &CheckoutResult{
		OrderID:          id,
		CorrelationToken: token,
		PublicHash:       publicHash,
		Metadata:         meta,
		Amount:           o.Amount(),
		Currency:         o.Payment().Currency,
	}, nil
}
