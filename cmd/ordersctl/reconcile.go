package main

import (
	"errors"
	"fmt"

	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-query provider A for a payment and reconcile the order",
		Long: `Looks up the payment behind a correlation token with provider A and applies
the result exactly as the callback endpoint would. Safe to run repeatedly.`,
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

			adapter, err := e.adapters.Get(payment.ProviderA)
			if err != nil {
				return err
			}
			v, err := adapter.Verify(ctx, commands.CallbackInput{Token: token})
			if err != nil {
				return fmt.Errorf("provider A lookup failed: %w", err)
			}

			res, err := e.reconciler.Reconcile(ctx, commands.ReconcileInput{
				Token:    token,
				Outcome:  v.Outcome,
				Receipt:  v.Receipt,
				Metadata: v.Metadata,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Token:        %s\n", token)
			fmt.Fprintf(out, "Outcome:      %s\n", v.Outcome)
			fmt.Fprintf(out, "Action:       %s\n", res.Action)
			fmt.Fprintf(out, "Transitioned: %t\n", res.Transitioned)
			if res.Action != commands.ActionIgnored {
				fmt.Fprintf(out, "Order:        %s\n", res.OrderID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Correlation token (required)")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
