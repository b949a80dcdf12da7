package gateway

import (
	"context"

	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

const (
	templatePurchaseConfirmation = "purchase-confirmation"
	templateLoginCode            = "login-code"
)

type mailRequest struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

type mailResponse struct {
	Sent bool   `json:"sent"`
	ID   string `json:"id"`
}

// MailClient talks to the transactional mail API.
type MailClient struct {
	client *resty.Client
	from   string
}

func NewMailClient(cfg config.MailConfig) *MailClient {
	client := newClient().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)
	return &MailClient{client: client, from: cfg.FromEmail}
}

func (m *MailClient) SendPurchaseConfirmation(
	ctx context.Context,
	email, displayName, publicHash string,
	summary commands.OrderSummary,
) (bool, error) {
	return m.send(ctx, mailRequest{
		From:     m.from,
		To:       email,
		Template: templatePurchaseConfirmation,
		Data: map[string]any{
			"displayName":      displayName,
			"publicHash":       publicHash,
			"correlationToken": summary.CorrelationToken,
			"quantity":         summary.Quantity,
			"sensorType":       summary.SensorType,
			"colors":           summary.Colors,
			"accessories":      summary.Accessories,
			"amount":           summary.Amount,
			"currency":         summary.Currency,
			"shippingAddress":  summary.ShippingAddress,
			"status":           summary.LifecycleStatus,
		},
	})
}

func (m *MailClient) SendLoginCode(ctx context.Context, email, code string) error {
	sent, err := m.send(ctx, mailRequest{
		From:     m.from,
		To:       email,
		Template: templateLoginCode,
		Data:     map[string]any{"code": code},
	})
	if err != nil {
		return err
	}
	if !sent {
		return infra.WrapRepoErr("mail API did not send login code", nil, infra.KindUpstream)
	}
	return nil
}

func (m *MailClient) send(ctx context.Context, req mailRequest) (bool, error) {
	var out mailResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/messages")
	if err != nil {
		return false, infra.WrapRepoErr("mail request failed", err, infra.KindUpstream)
	}
	if resp.IsError() {
		return false, infra.WrapRepoErr("mail API returned "+resp.Status(), nil, infra.KindUpstream)
	}
	return out.Sent, nil
}
