package commands

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrVerificationFailed = errs.New("payment verification failed")

// Provider B notification fields.
const (
	ipnPaymentStatus = "payment_status"
	ipnTxnID         = "txn_id"
	ipnGross         = "mc_gross"
	ipnCurrency      = "mc_currency"
	ipnCustom        = "custom"
)

// CallbackInput is one inbound provider request after the correlation token was found.
type CallbackInput struct {
	Token   string
	Query   url.Values
	Body    map[string]any
	RawBody []byte
}

// Verification is an authenticated provider signal. Authentic false means the request must be dropped.
type Verification struct {
	Authentic       bool
	Outcome         payment.Outcome
	Receipt         order.Receipt
	ProviderOrderID string
	Metadata        string
}

// ProviderAdapter authenticates a provider callback and classifies it. It never touches orders.
type ProviderAdapter interface {
	Provider() payment.Provider
	TokenKey() string
	Verify(ctx context.Context, in CallbackInput) (*Verification, error)
}

// Adapters is the static routing table from provider to adapter.
type Adapters map[payment.Provider]ProviderAdapter

func NewAdapters(a ProviderAStatusClient, b ProviderBVerifier) Adapters {
	return Adapters{
		payment.ProviderA: &providerAAdapter{client: a},
		payment.ProviderB: &providerBAdapter{verifier: b},
	}
}

func (a Adapters) Get(p payment.Provider) (ProviderAdapter, error) {
	adapter, ok := a[p]
	if !ok {
		return nil, payment.ErrUnknownProvider
	}
	return adapter, nil
}

type providerAAdapter struct {
	client ProviderAStatusClient
}

func (p *providerAAdapter) Provider() payment.Provider { return payment.ProviderA }

func (p *providerAAdapter) TokenKey() string { return payment.ProviderA.TokenKey() }

// Verify trusts only provider A's status API. The inbound body is never used for classification.
func (p *providerAAdapter) Verify(ctx context.Context, in CallbackInput) (*Verification, error) {
	status, err := p.client.GetPaymentStatus(ctx, in.Token)
	if err != nil {
		return nil, errs.Mark(err, ErrVerificationFailed)
	}

	return &Verification{
		Authentic: true,
		Outcome:   payment.ClassifyProviderA(status.Status, status.Detail),
		Receipt: order.Receipt{
			Provider:      payment.ProviderA,
			TransactionID: status.ProviderOrderID,
			Amount:        status.Amount,
			Currency:      status.Currency,
		},
		ProviderOrderID: status.ProviderOrderID,
		Metadata:        status.Metadata,
	}, nil
}

type providerBAdapter struct {
	verifier ProviderBVerifier
}

func (p *providerBAdapter) Provider() payment.Provider { return payment.ProviderB }

func (p *providerBAdapter) TokenKey() string { return payment.ProviderB.TokenKey() }

// Verify treats a transport failure the same as a rejected echo.
func (p *providerBAdapter) Verify(ctx context.Context, in CallbackInput) (*Verification, error) {
	ok, err := p.verifier.Verify(ctx, in.RawBody)
	if err != nil {
		slog.WarnContext(ctx, "provider B verification unavailable",
			"correlation_token", in.Token,
			"error", err.Error(),
		)
		return &Verification{Authentic: false}, nil
	}
	if !ok {
		return &Verification{Authentic: false}, nil
	}

	field := func(key string) string {
		s, _ := in.Body[key].(string)
		return strings.TrimSpace(s)
	}

	var amount decimal.NullDecimal
	if gross, err := decimal.NewFromString(field(ipnGross)); err == nil {
		amount = decimal.NewNullDecimal(gross)
	}

	return &Verification{
		Authentic: true,
		Outcome:   payment.ClassifyProviderB(field(ipnPaymentStatus)),
		Receipt: order.Receipt{
			Provider:      payment.ProviderB,
			TransactionID: field(ipnTxnID),
			Amount:        amount,
			Currency:      field(ipnCurrency),
		},
		ProviderOrderID: field(ipnTxnID),
		Metadata:        field(ipnCustom),
	}, nil
}
