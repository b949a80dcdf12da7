//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/infra"
	"storefront-payments/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func errRow(err error) pgx.Row {
	return rowFunc(func(...any) error { return err })
}

// storedRow scans the columns of o the way PostgreSQL returns them.
func storedRow(t *testing.T, o *order.Order) pgx.Row {
	t.Helper()
	pay, product, customer, err := marshalDocuments(o)
	require.NoError(t, err)

	return rowFunc(func(dest ...any) error {
		require.Len(t, dest, 9)
		*dest[0].(*uuid.UUID) = o.ID()
		*dest[1].(*string) = o.CorrelationToken()
		*dest[2].(*string) = o.PublicHash()
		*dest[3].(*string) = o.LifecycleStatus().String()
		*dest[4].(*[]byte) = pay
		*dest[5].(*[]byte) = product
		*dest[6].(*[]byte) = customer
		*dest[7].(*pgtype.Timestamptz) = pgtype.Timestamptz{Time: o.CreatedAt().In(time.FixedZone("CET", 3600)), Valid: true}
		*dest[8].(*pgtype.Timestamptz) = pgtype.Timestamptz{Time: o.UpdatedAt(), Valid: true}
		return nil
	})
}

func TestFindByCorrelationToken(t *testing.T) {
	b := builder.NewOrderBuilder()
	stored := b.BuildStored(order.LifecycleAwaitingFulfillment, order.PaymentCompleted)

	tests := []struct {
		name     string
		row      pgx.Row
		wantKind infra.RepositoryErrorKind
	}{
		{name: "found", row: storedRow(t, stored)},
		{name: "no rows", row: errRow(pgx.ErrNoRows), wantKind: infra.KindNotFound},
		{name: "database error", row: errRow(assert.AnError), wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, findOrderByTokenSQL, []any{b.Token}).Return(tt.row)

			got, err := NewOrderRepository(dbtx).FindByCorrelationToken(context.Background(), b.Token)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.ID(), got.ID())
				assert.Equal(t, order.PaymentCompleted, got.Payment().Status)
				assert.Equal(t, order.LifecycleAwaitingFulfillment, got.LifecycleStatus())
				assert.Equal(t, b.Product.Colors, got.Product().Colors)
				assert.Equal(t, b.Customer.Address, got.Customer().Address)
				assert.True(t, got.Amount().Equal(stored.Amount()))
				assert.Equal(t, time.UTC, got.CreatedAt().Location())
				assert.True(t, got.CreatedAt().Equal(stored.CreatedAt()))
			}
			dbtx.AssertExpectations(t)
		})
	}

	t.Run("corrupt lifecycle is a failure", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findOrderByTokenSQL, mock.Anything).Return(rowFunc(func(dest ...any) error {
			*dest[3].(*string) = "LOST"
			return nil
		}))

		_, err := NewOrderRepository(dbtx).FindByCorrelationToken(context.Background(), b.Token)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCreateOrder(t *testing.T) {
	b := builder.NewOrderBuilder()

	t.Run("success assigns the generated id", func(t *testing.T) {
		o, err := b.BuildDomain()
		require.NoError(t, err)
		id := uuid.New()

		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, createOrderSQL, mock.MatchedBy(func(args []any) bool {
			if len(args) != 9 {
				return false
			}
			var pay order.Payment
			if err := json.Unmarshal(args[3].([]byte), &pay); err != nil {
				return false
			}
			return args[0] == b.Token && args[2] == "PENDING_PAYMENT" && pay.Status == order.PaymentPending && args[6] == b.Customer.Email
		})).Return(rowFunc(func(dest ...any) error {
			*dest[0].(*uuid.UUID) = id
			return nil
		}))

		got, err := NewOrderRepository(dbtx).Create(context.Background(), o)

		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, id, o.ID())
		dbtx.AssertExpectations(t)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		o, err := b.BuildDomain()
		require.NoError(t, err)

		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, createOrderSQL, mock.Anything).
			Return(errRow(&pgconn.PgError{Code: "23505", ConstraintName: "orders_correlation_token_key"}))

		_, err = NewOrderRepository(dbtx).Create(context.Background(), o)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, uuid.Nil, o.ID())
	})
}

func TestUpdateOrder(t *testing.T) {
	b := builder.NewOrderBuilder()

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "payment completed concurrently", tag: pgconn.NewCommandTag("UPDATE 0"), wantKind: infra.KindStaleWrite},
		{name: "database error", tag: pgconn.CommandTag{}, execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := b.BuildStored(order.LifecyclePendingPayment, order.PaymentPending)
			o.ApplyOutcome(payment.Success(), order.Receipt{Provider: payment.ProviderB, TransactionID: "TX-1"}, b.Now.Add(time.Minute))

			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, updateOrderSQL, mock.MatchedBy(func(args []any) bool {
				var pay order.Payment
				if err := json.Unmarshal(args[2].([]byte), &pay); err != nil {
					return false
				}
				return args[0] == o.ID() && args[1] == "AWAITING_FULFILLMENT" && pay.ProviderTransactionID == "TX-1"
			})).Return(tt.tag, tt.execErr)

			err := NewOrderRepository(dbtx).Update(context.Background(), o)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			dbtx.AssertExpectations(t)
		})
	}
}
