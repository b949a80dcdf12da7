package main

import (
	"context"

	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/infra/db"
	"storefront-payments/internal/infra/gateway"
	"storefront-payments/internal/infra/repository"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/hashid"
	"storefront-payments/internal/usecase/commands"
)

// env is the subset of the service graph the CLI needs, wired by hand.
type env struct {
	cfg        config.Config
	orders     commands.OrderRepository
	adapters   commands.Adapters
	reconciler commands.Reconciler
	close      func()
}

func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	hasher, err := hashid.NewHasher(cfg.Checkout.PublicHashKey)
	if err != nil {
		cleanup()
		return nil, err
	}

	orders := repository.NewOrderRepository(pool)
	notifier := commands.NewConfirmationNotifier(orders, gateway.NewMailClient(cfg.Mail))
	reconciler, err := commands.NewReconciler(orders, notifier, hasher, clock.NewRealClock(), cfg)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &env{
		cfg:        cfg,
		orders:     orders,
		adapters:   commands.NewAdapters(gateway.NewProviderAClient(cfg.ProviderA), gateway.NewProviderBClient(cfg.ProviderB)),
		reconciler: reconciler,
		close:      cleanup,
	}, nil
}
