package components

import (
	"storefront-payments/internal/infra/gateway"
	"storefront-payments/internal/infra/session"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *gateway.ProviderAClient { return gateway.NewProviderAClient(cfg.ProviderA) },
			fx.As(new(commands.ProviderAStatusClient)),
		),
		fx.Annotate(
			func(cfg config.Config) *gateway.ProviderBClient { return gateway.NewProviderBClient(cfg.ProviderB) },
			fx.As(new(commands.ProviderBVerifier)),
		),
		fx.Annotate(
			func(cfg config.Config) *gateway.MailClient { return gateway.NewMailClient(cfg.Mail) },
			fx.As(new(commands.ConfirmationSender)),
			fx.As(new(commands.LoginCodeSender)),
		),
		fx.Annotate(
			session.NewStore,
			fx.As(new(commands.LoginCodeStore)),
		),
	),
)
