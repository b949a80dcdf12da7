package response

import (
	"storefront-payments/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	OrderID          uuid.UUID `json:"order_id"`
	CorrelationToken string    `json:"correlation_token"`
	PublicHash       string    `json:"public_hash"`
	Metadata         string    `json:"metadata"`
	Amount           string    `json:"amount"`
	Currency         string    `json:"currency"`
}

func FromCheckoutResult(r *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:          r.OrderID,
		CorrelationToken: r.CorrelationToken,
		PublicHash:       r.PublicHash,
		Metadata:         r.Metadata,
		Amount:           r.Amount.StringFixed(2),
		Currency:         r.Currency,
	}
}
