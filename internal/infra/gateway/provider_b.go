package gateway

import (
	"bytes"
	"context"
	"strings"

	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/config"

	"github.com/go-resty/resty/v2"
)

const (
	notifyValidatePrefix = "cmd=_notify-validate&"
	verifiedResponse     = "VERIFIED"
)

type ProviderBClient struct {
	client    *resty.Client
	verifyURL string
}

func NewProviderBClient(cfg config.ProviderBConfig) *ProviderBClient {
	client := newClient().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "storefront-payments-ipn")
	return &ProviderBClient{client: client, verifyURL: cfg.VerifyURL()}
}

// Verify posts the notification back unmodified, prefixed with the validate command.
// The notification is authentic only when provider B answers exactly VERIFIED.
func (c *ProviderBClient) Verify(ctx context.Context, rawBody []byte) (bool, error) {
	var payload bytes.Buffer
	payload.Grow(len(notifyValidatePrefix) + len(rawBody))
	payload.WriteString(notifyValidatePrefix)
	payload.Write(rawBody)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(payload.Bytes()).
		Post(c.verifyURL)
	if err != nil {
		return false, infra.WrapRepoErr("provider B verification request failed", err, infra.KindUpstream)
	}
	if resp.IsError() {
		return false, infra.WrapRepoErr("provider B verification returned "+resp.Status(), nil, infra.KindUpstream)
	}
	return strings.TrimSpace(resp.String()) == verifiedResponse, nil
}
