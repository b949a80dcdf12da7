package request

import (
	"strings"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/usecase/commands"
)

type ProductSelection struct {
	Quantity    int               `json:"quantity" binding:"required,min=1,max=10"`
	SensorType  string            `json:"sensor_type" binding:"required"`
	Colors      map[string]string `json:"colors"`
	Accessories []string          `json:"accessories"`
}

type CustomerDetails struct {
	Email             string `json:"email" binding:"required,email"`
	FullName          string `json:"full_name" binding:"required"`
	Line1             string `json:"line1" binding:"required"`
	Line2             string `json:"line2"`
	City              string `json:"city" binding:"required"`
	Region            string `json:"region"`
	PostalCode        string `json:"postal_code" binding:"required"`
	Country           string `json:"country" binding:"required,len=2"`
	CommunityUsername string `json:"community_username"`
}

type CheckoutRequest struct {
	Product  ProductSelection `json:"product" binding:"required"`
	Customer CustomerDetails  `json:"customer" binding:"required"`
}

func (r *CheckoutRequest) ToInput() commands.CheckoutInput {
	return commands.CheckoutInput{
		Product: order.ProductSnapshot{
			Quantity:    r.Product.Quantity,
			SensorType:  strings.TrimSpace(r.Product.SensorType),
			Colors:      r.Product.Colors,
			Accessories: r.Product.Accessories,
		},
		Customer: order.CustomerSnapshot{
			Email:    r.Customer.Email,
			FullName: strings.TrimSpace(r.Customer.FullName),
			Address: order.Address{
				Line1:      r.Customer.Line1,
				Line2:      r.Customer.Line2,
				City:       r.Customer.City,
				Region:     r.Customer.Region,
				PostalCode: r.Customer.PostalCode,
				Country:    strings.ToUpper(r.Customer.Country),
			},
			CommunityUsername: strings.TrimSpace(r.Customer.CommunityUsername),
		},
	}
}
