package response

import "storefront-payments/internal/usecase/commands"

// PaymentEnvelope acknowledges a provider callback. It is always sent with HTTP 200.
type PaymentEnvelope struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	CorrelationToken string `json:"correlationToken,omitempty"`
	ProviderOrderID  string `json:"providerOrderId,omitempty"`
}

func FromEnvelope(e *commands.Envelope) PaymentEnvelope {
	return PaymentEnvelope{
		Status:           e.Status,
		Message:          e.Message,
		CorrelationToken: e.CorrelationToken,
		ProviderOrderID:  e.ProviderOrderID,
	}
}
