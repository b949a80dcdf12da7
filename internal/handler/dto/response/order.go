package response

import (
	"time"

	"storefront-payments/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	PublicHash      string                `json:"public_hash"`
	LifecycleStatus string                `json:"lifecycle_status"`
	PaymentStatus   string                `json:"payment_status"`
	Amount          string                `json:"amount" copier:"-"`
	Currency        string                `json:"currency"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	Product         OrderProductResponse  `json:"product"`
	Shipping        OrderShippingResponse `json:"shipping"`
	CreatedAt       time.Time             `json:"created_at"`
}

type OrderProductResponse struct {
	Quantity    int               `json:"quantity"`
	SensorType  string            `json:"sensor_type"`
	Colors      map[string]string `json:"colors,omitempty"`
	Accessories []string          `json:"accessories,omitempty"`
}

type OrderShippingResponse struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// FromOrderView omits internal identifiers and the contact email.
func FromOrderView(v *queries.OrderView) (OrderResponse, error) {
	var res OrderResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return OrderResponse{}, err
	}
	res.Amount = v.Amount.StringFixed(2)
	return res, nil
}
