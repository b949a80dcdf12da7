//go:build unit

package payment_test

import (
	"net/url"
	"testing"

	"storefront-payments/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestExtractCorrelationToken(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		body      map[string]any
		wantToken string
		wantOK    bool
	}{
		{
			name:      "query only",
			query:     url.Values{"token": {"MT_1"}},
			wantToken: "MT_1",
			wantOK:    true,
		},
		{
			name:      "body only",
			body:      map[string]any{"token": "MT_2"},
			wantToken: "MT_2",
			wantOK:    true,
		},
		{
			name:      "query wins over body",
			query:     url.Values{"token": {"MT_Q"}},
			body:      map[string]any{"token": "MT_B"},
			wantToken: "MT_Q",
			wantOK:    true,
		},
		{
			name:      "placeholder in query falls back to body",
			query:     url.Values{"token": {"undefined"}},
			body:      map[string]any{"token": "MT_B"},
			wantToken: "MT_B",
			wantOK:    true,
		},
		{
			name:      "empty query value falls back to body",
			query:     url.Values{"token": {""}},
			body:      map[string]any{"token": "body-token"},
			wantToken: "body-token",
			wantOK:    true,
		},
		{name: "null placeholder", query: url.Values{"token": {"null"}}},
		{name: "empty value", body: map[string]any{"token": ""}},
		{name: "non-string body value", body: map[string]any{"token": 123}},
		{name: "nested body value", body: map[string]any{"token": map[string]any{"id": "MT_1"}}},
		{name: "absent everywhere", query: url.Values{"other": {"x"}}, body: map[string]any{}},
		{name: "nil inputs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := payment.ExtractCorrelationToken("token", tt.query, tt.body)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, got)
			if ok {
				assert.True(t, payment.IsUsableToken(got))
			}
		})
	}
}

func TestProvider(t *testing.T) {
	p, err := payment.ParseProvider("provider-b")
	assert.NoError(t, err)
	assert.Equal(t, payment.ProviderB, p)
	assert.Equal(t, "invoice", p.TokenKey())
	assert.Equal(t, "token", payment.ProviderA.TokenKey())

	_, err = payment.ParseProvider("provider-c")
	assert.ErrorIs(t, err, payment.ErrUnknownProvider)
}
