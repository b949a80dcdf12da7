package main

import (
	"encoding/json"
	"errors"

	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/usecase/commands"

	"github.com/spf13/cobra"
)

type orderOutput struct {
	ID               string                `json:"id"`
	CorrelationToken string                `json:"correlationToken"`
	PublicHash       string                `json:"publicHash"`
	LifecycleStatus  string                `json:"lifecycleStatus"`
	PaymentStatus    string                `json:"paymentStatus"`
	Provider         string                `json:"provider,omitempty"`
	ContactEmail     string                `json:"contactEmail"`
	Summary          commands.OrderSummary `json:"summary"`
	CreatedAt        string                `json:"createdAt"`
	UpdatedAt        string                `json:"updatedAt"`
}

func orderCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the stored order for a correlation token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !payment.IsUsableToken(token) {
				return errors.New("--token is required")
			}

			ctx := cmd.Context()
			e, err := newEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			o, err := e.orders.FindByCorrelationToken(ctx, token)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errors.New("no order for token " + token)
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(orderOutput{
				ID:               o.ID().String(),
				CorrelationToken: o.CorrelationToken(),
				PublicHash:       o.PublicHash(),
				LifecycleStatus:  o.LifecycleStatus().String(),
				PaymentStatus:    o.Payment().Status.String(),
				Provider:         o.Payment().Provider.String(),
				ContactEmail:     o.Customer().Email,
				Summary:          commands.SummarizeOrder(o),
				CreatedAt:        o.CreatedAt().Format(timeLayout),
				UpdatedAt:        o.UpdatedAt().Format(timeLayout),
			})
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Correlation token (required)")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

const timeLayout = "2006-01-02T15:04:05.000000Z07:00"
