package commands

import (
	"context"
	"log/slog"

	"storefront-payments/internal/domain/order"

	"github.com/google/uuid"
)

type ConfirmationNotifier interface {
	// NotifyPurchase never fails the caller. Problems are logged.
	NotifyPurchase(ctx context.Context, orderID uuid.UUID)
}

type confirmationNotifierImpl struct {
	repo   OrderRepository
	sender ConfirmationSender
}

func NewConfirmationNotifier(repo OrderRepository, sender ConfirmationSender) ConfirmationNotifier {
	return &confirmationNotifierImpl{repo: repo, sender: sender}
}

func (n *confirmationNotifierImpl) NotifyPurchase(ctx context.Context, orderID uuid.UUID) {
	o, err := n.repo.FindByID(ctx, orderID)
	if err != nil {
		slog.ErrorContext(ctx, "purchase confirmation skipped: order reload failed",
			"order_id", orderID,
			"error", err.Error(),
		)
		return
	}

	customer := o.Customer()
	sent, err := n.sender.SendPurchaseConfirmation(ctx, customer.Email, customer.DisplayName(), o.PublicHash(), SummarizeOrder(o))
	if err != nil {
		slog.ErrorContext(ctx, "purchase confirmation failed",
			"order_id", orderID,
			"correlation_token", o.CorrelationToken(),
			"error", err.Error(),
		)
		return
	}
	if !sent {
		slog.WarnContext(ctx, "purchase confirmation not sent",
			"order_id", orderID,
			"correlation_token", o.CorrelationToken(),
		)
	}
}

func SummarizeOrder(o *order.Order) OrderSummary {
	product := o.Product()
	pay := o.Payment()
	return OrderSummary{
		CorrelationToken: o.CorrelationToken(),
		Quantity:         product.Quantity,
		SensorType:       product.SensorType,
		Colors:           product.Colors,
		Accessories:      product.Accessories,
		Amount:           pay.Amount.StringFixed(2),
		Currency:         pay.Currency,
		ShippingAddress:  o.Customer().Address,
		LifecycleStatus:  o.LifecycleStatus().String(),
	}
}
