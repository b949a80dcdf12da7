//go:build unit

package order_test

import (
	"testing"
	"time"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/payment"
	"storefront-payments/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestNewPendingOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, uuid.Nil, actual.ID())
		assert.Equal(t, "MT_123", actual.CorrelationToken())
		assert.Equal(t, order.LifecyclePendingPayment, actual.LifecycleStatus())
		assert.Equal(t, order.PaymentPending, actual.Payment().Status)
		assert.Nil(t, actual.Payment().CompletedAt)
		assert.True(t, decimal.RequireFromString("129.90").Equal(actual.Amount()))
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing token",
				mutate: func(b *builder.OrderBuilder) { b.WithToken("") },
				errIs:  order.ErrMissingToken,
			},
			{
				name:   "missing public hash",
				mutate: func(b *builder.OrderBuilder) { b.PublicHash = "" },
				errIs:  order.ErrMissingPublicHash,
			},
			{
				name:   "zero quantity",
				mutate: func(b *builder.OrderBuilder) { b.WithQuantity(0) },
				errIs:  order.ErrInvalidQuantity,
			},
			{
				name:   "missing sensor type",
				mutate: func(b *builder.OrderBuilder) { b.Product.SensorType = "  " },
				errIs:  order.ErrMissingSensorType,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.OrderBuilder) { b.Product.UnitPrice = decimal.NewFromInt(-1) },
				errIs:  order.ErrNegativePrice,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.OrderBuilder) { b.WithEmail("not-an-email") },
				errIs:  order.ErrInvalidEmail,
			},
			{
				name:   "multiple units",
				mutate: func(b *builder.OrderBuilder) { b.WithQuantity(3) },
			},
		})
	})

	t.Run("email is normalized", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithEmail("  Buyer@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", actual.Customer().Email)
	})

	t.Run("snapshots are copied", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		b.Product.Colors["shell"] = "red"
		b.Product.Accessories[0] = "stand"

		assert.Equal(t, "black", actual.Product().Colors["shell"])
		assert.Equal(t, []string{"cable"}, actual.Product().Accessories)

		p := actual.Product()
		p.Colors["shell"] = "green"
		assert.Equal(t, "black", actual.Product().Colors["shell"])
	})
}

func TestNewCompletedOrder(t *testing.T) {
	b := builder.NewOrderBuilder()
	receipt := order.Receipt{
		Provider:      payment.ProviderA,
		TransactionID: "PA-42",
		Amount:        decimal.NewNullDecimal(decimal.RequireFromString("129.90")),
		Currency:      "eur",
	}

	actual, err := order.NewCompletedOrder(b.Token, b.PublicHash, b.BuildMetadata(), receipt, "EUR", b.Now)
	require.NoError(t, err)

	assert.Equal(t, order.LifecycleAwaitingFulfillment, actual.LifecycleStatus())
	assert.Equal(t, order.PaymentCompleted, actual.Payment().Status)
	assert.Equal(t, payment.ProviderA, actual.Payment().Provider)
	assert.Equal(t, "PA-42", actual.Payment().ProviderTransactionID)
	assert.Equal(t, "EUR", actual.Payment().Currency)
	require.NotNil(t, actual.Payment().CompletedAt)
	assert.Equal(t, b.Now, *actual.Payment().CompletedAt)
	assert.Equal(t, b.Customer.Email, actual.Customer().Email)

	_, err = order.NewCompletedOrder(b.Token, b.PublicHash, order.Metadata{}, receipt, "EUR", b.Now)
	assert.ErrorIs(t, err, order.ErrInvalidQuantity)
}

func TestApplyOutcome(t *testing.T) {
	later := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	receipt := order.Receipt{Provider: payment.ProviderB, TransactionID: "TX-1"}

	tests := []struct {
		name           string
		lifecycle      order.LifecycleStatus
		status         order.PaymentStatus
		outcome        payment.Outcome
		wantTransition order.Transition
		wantLifecycle  order.LifecycleStatus
		wantStatus     order.PaymentStatus
		wantTouched    bool
	}{
		{
			name:           "success completes pending payment",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentPending,
			outcome:        payment.Success(),
			wantTransition: order.TransitionCompleted,
			wantLifecycle:  order.LifecycleAwaitingFulfillment,
			wantStatus:     order.PaymentCompleted,
			wantTouched:    true,
		},
		{
			name:           "success never lowers lifecycle",
			lifecycle:      order.LifecycleShipped,
			status:         order.PaymentPending,
			outcome:        payment.Success(),
			wantTransition: order.TransitionCompleted,
			wantLifecycle:  order.LifecycleShipped,
			wantStatus:     order.PaymentCompleted,
			wantTouched:    true,
		},
		{
			name:           "success recovers failed payment",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentFailed,
			outcome:        payment.Success(),
			wantTransition: order.TransitionCompleted,
			wantLifecycle:  order.LifecycleAwaitingFulfillment,
			wantStatus:     order.PaymentCompleted,
			wantTouched:    true,
		},
		{
			name:           "completed payment ignores success",
			lifecycle:      order.LifecycleAwaitingFulfillment,
			status:         order.PaymentCompleted,
			outcome:        payment.Success(),
			wantTransition: order.TransitionNone,
			wantLifecycle:  order.LifecycleAwaitingFulfillment,
			wantStatus:     order.PaymentCompleted,
		},
		{
			name:           "completed payment ignores rejection",
			lifecycle:      order.LifecycleManufacturing,
			status:         order.PaymentCompleted,
			outcome:        payment.Rejected(),
			wantTransition: order.TransitionNone,
			wantLifecycle:  order.LifecycleManufacturing,
			wantStatus:     order.PaymentCompleted,
		},
		{
			name:           "rejection fails pending payment",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentPending,
			outcome:        payment.Rejected(),
			wantTransition: order.TransitionFailed,
			wantLifecycle:  order.LifecyclePendingPayment,
			wantStatus:     order.PaymentFailed,
			wantTouched:    true,
		},
		{
			name:           "cancellation fails pending payment",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentPending,
			outcome:        payment.Cancelled(),
			wantTransition: order.TransitionFailed,
			wantLifecycle:  order.LifecyclePendingPayment,
			wantStatus:     order.PaymentFailed,
			wantTouched:    true,
		},
		{
			name:           "repeated failure is a no-op",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentFailed,
			outcome:        payment.Cancelled(),
			wantTransition: order.TransitionNone,
			wantLifecycle:  order.LifecyclePendingPayment,
			wantStatus:     order.PaymentFailed,
		},
		{
			name:           "pending changes nothing",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentPending,
			outcome:        payment.Pending(),
			wantTransition: order.TransitionNone,
			wantLifecycle:  order.LifecyclePendingPayment,
			wantStatus:     order.PaymentPending,
		},
		{
			name:           "unknown changes nothing",
			lifecycle:      order.LifecyclePendingPayment,
			status:         order.PaymentPending,
			outcome:        payment.Unknown("99"),
			wantTransition: order.TransitionNone,
			wantLifecycle:  order.LifecyclePendingPayment,
			wantStatus:     order.PaymentPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewOrderBuilder()
			o := b.BuildStored(tt.lifecycle, tt.status)
			before := o.UpdatedAt()

			got := o.ApplyOutcome(tt.outcome, receipt, later)

			assert.Equal(t, tt.wantTransition, got)
			assert.Equal(t, tt.wantLifecycle, o.LifecycleStatus())
			assert.Equal(t, tt.wantStatus, o.Payment().Status)
			if tt.wantTouched {
				assert.Equal(t, later, o.UpdatedAt())
				assert.Equal(t, "TX-1", o.Payment().ProviderTransactionID)
			} else {
				assert.Equal(t, before, o.UpdatedAt())
			}
		})
	}

	t.Run("applying success twice stamps once", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildStored(order.LifecyclePendingPayment, order.PaymentPending)

		first := o.ApplyOutcome(payment.Success(), receipt, later)
		second := o.ApplyOutcome(payment.Success(), receipt, later.Add(time.Hour))

		assert.Equal(t, order.TransitionCompleted, first)
		assert.Equal(t, order.TransitionNone, second)
		require.NotNil(t, o.Payment().CompletedAt)
		assert.Equal(t, later, *o.Payment().CompletedAt)
		assert.Equal(t, later, o.UpdatedAt())
	})
}

func TestLifecycleStatus(t *testing.T) {
	assert.True(t, order.LifecyclePendingPayment.Before(order.LifecycleAwaitingFulfillment))
	assert.True(t, order.LifecycleShipped.Before(order.LifecycleDelivered))
	assert.False(t, order.LifecycleManufacturing.Before(order.LifecycleAwaitingFulfillment))

	s, err := order.ParseLifecycleStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, order.LifecycleShipped, s)

	_, err = order.ParseLifecycleStatus("LOST")
	assert.ErrorIs(t, err, order.ErrInvalidLifecycleStatus)

	_, err = order.ParsePaymentStatus("REFUNDED")
	assert.ErrorIs(t, err, order.ErrInvalidPaymentStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
