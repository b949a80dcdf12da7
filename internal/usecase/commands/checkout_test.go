//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/hashid"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/tests/common/builder"
	"storefront-payments/tests/common/fake"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckout(t *testing.T, repo commands.OrderRepository, mutate ...func(*config.Config)) (commands.CheckoutCommands, *hashid.Hasher) {
	t.Helper()
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	hasher, err := hashid.NewHasher(cfg.Checkout.PublicHashKey)
	require.NoError(t, err)
	uc, err := commands.NewCheckoutCommands(repo, hasher, clock.NewMockClock(builder.NewOrderBuilder().Now), cfg)
	require.NoError(t, err)
	return uc, hasher
}

func TestCheckoutInitiate(t *testing.T) {
	t.Run("success: stores a pending order priced from configuration", func(t *testing.T) {
		repo := fake.NewOrderRepository()
		uc, hasher := newCheckout(t, repo)
		b := builder.NewOrderBuilder().WithQuantity(2)
		in := commands.CheckoutInput{Product: b.Product, Customer: b.Customer}
		in.Product.UnitPrice = decimal.RequireFromString("0.01")

		res, err := uc.Initiate(context.Background(), in)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.CorrelationToken, "MT_"))
		assert.NotContains(t, res.CorrelationToken, "-")
		assert.Equal(t, hasher.Derive(b.Customer.CommunityUsername, res.CorrelationToken), res.PublicHash)
		assert.True(t, hashid.Valid(res.PublicHash))
		assert.True(t, res.Amount.Equal(decimal.RequireFromString("259.80")), res.Amount.String())
		assert.Equal(t, "EUR", res.Currency)

		stored := repo.Get(res.CorrelationToken)
		require.NotNil(t, stored)
		assert.Equal(t, res.OrderID, stored.ID())
		assert.Equal(t, order.LifecyclePendingPayment, stored.LifecycleStatus())
		assert.Equal(t, order.PaymentPending, stored.Payment().Status)

		meta, err := order.DecodeMetadata(res.Metadata)
		require.NoError(t, err)
		assert.Equal(t, 2, meta.Product.Quantity)
		assert.True(t, meta.Product.UnitPrice.Equal(decimal.RequireFromString("129.90")))
		assert.Equal(t, b.Customer.Email, meta.Customer.Email)
	})

	t.Run("success: every checkout gets its own token", func(t *testing.T) {
		repo := fake.NewOrderRepository()
		uc, _ := newCheckout(t, repo)
		b := builder.NewOrderBuilder()
		in := commands.CheckoutInput{Product: b.Product, Customer: b.Customer}

		first, err := uc.Initiate(context.Background(), in)
		require.NoError(t, err)
		second, err := uc.Initiate(context.Background(), in)
		require.NoError(t, err)

		assert.NotEqual(t, first.CorrelationToken, second.CorrelationToken)
		assert.NotEqual(t, first.PublicHash, second.PublicHash)
		assert.Equal(t, 2, repo.Creates)
	})

	t.Run("error: invalid input", func(t *testing.T) {
		repo := fake.NewOrderRepository()
		uc, _ := newCheckout(t, repo)

		for name, b := range map[string]*builder.OrderBuilder{
			"zero quantity": builder.NewOrderBuilder().WithQuantity(0),
			"bad email":     builder.NewOrderBuilder().WithEmail("not-an-email"),
		} {
			t.Run(name, func(t *testing.T) {
				_, err := uc.Initiate(context.Background(), commands.CheckoutInput{Product: b.Product, Customer: b.Customer})

				assert.ErrorIs(t, err, commands.ErrInvalidCheckout)
			})
		}
		assert.Equal(t, 0, repo.Writes())
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := fake.NewOrderRepository()
		repo.CreateErr = func(*order.Order) error { return infra.WrapRepoErr("insert order", assert.AnError) }
		uc, _ := newCheckout(t, repo)
		b := builder.NewOrderBuilder()

		_, err := uc.Initiate(context.Background(), commands.CheckoutInput{Product: b.Product, Customer: b.Customer})

		assert.ErrorIs(t, err, commands.ErrCheckoutFailed)
	})

	t.Run("error: misconfigured unit price", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Checkout.UnitPrice = "free"
		hasher, err := hashid.NewHasher(cfg.Checkout.PublicHashKey)
		require.NoError(t, err)

		_, err = commands.NewCheckoutCommands(fake.NewOrderRepository(), hasher, clock.NewRealClock(), cfg)

		assert.Error(t, err)
	})
}
