package bootstrap

import (
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/hashid"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPublicHasher,
	),
)

func NewPublicHasher(cfg config.Config) (*hashid.Hasher, error) {
	return hashid.NewHasher(cfg.Checkout.PublicHashKey)
}
