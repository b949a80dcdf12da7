package gateway

import (
	"context"
	"net/http"

	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const apiKeyHeader = "X-Api-Key"

type providerAStatusResponse struct {
	Status          int                    `json:"status"`
	Amount          decimal.NullDecimal    `json:"amount"`
	Currency        string                 `json:"currency"`
	Payer           string                 `json:"payer"`
	PaymentDetail   *payment.PaymentDetail `json:"paymentDetail"`
	ProviderOrderID string                 `json:"providerOrderId"`
	Metadata        string                 `json:"metadata"`
}

type ProviderAClient struct {
	client *resty.Client
}

func NewProviderAClient(cfg config.ProviderAConfig) *ProviderAClient {
	client := newClient().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader(apiKeyHeader, cfg.APIKey).
		SetHeader("Accept", "application/json")
	return &ProviderAClient{client: client}
}

// GetPaymentStatus asks provider A for the current state of the payment behind token.
func (c *ProviderAClient) GetPaymentStatus(ctx context.Context, token string) (*commands.ProviderAStatus, error) {
	var body providerAStatusResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("token", token).
		SetResult(&body).
		ForceContentType("application/json").
		Get("/payments/{token}/status")
	if err != nil {
		return nil, infra.WrapRepoErr("provider A status request failed", err, infra.KindUpstream)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, infra.WrapRepoErr("provider A does not know the payment", nil, infra.KindNotFound)
	}
	if resp.IsError() {
		return nil, infra.WrapRepoErr("provider A returned "+resp.Status(), nil, infra.KindUpstream)
	}

	return &commands.ProviderAStatus{
		Status:          body.Status,
		Amount:          body.Amount,
		Currency:        body.Currency,
		Payer:           body.Payer,
		Detail:          body.PaymentDetail,
		ProviderOrderID: body.ProviderOrderID,
		Metadata:        body.Metadata,
	}, nil
}
