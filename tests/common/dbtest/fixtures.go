//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// StoredOrder is the raw row state e2e tests assert on.
type StoredOrder struct {
	ID              uuid.UUID
	LifecycleStatus string
	PaymentStatus   string
	Provider        string
	TransactionID   string
	UpdatedAt       time.Time
}

func InsertOrder(t *testing.T, pool *pgxpool.Pool, o *order.Order) uuid.UUID {
	t.Helper()

	id, err := repository.NewOrderRepository(pool).Create(context.Background(), o)
	require.NoError(t, err)
	return id
}

func CountOrders(t *testing.T, db DBLike, token string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM orders WHERE correlation_token = $1", token).Scan(&n)
	require.NoError(t, err)
	return n
}

func LoadOrder(t *testing.T, db DBLike, token string) StoredOrder {
	t.Helper()

	var s StoredOrder
	err := db.QueryRow(context.Background(), `
		SELECT id, lifecycle_status,
		       payment ->> 'status',
		       coalesce(payment ->> 'provider', ''),
		       coalesce(payment ->> 'providerTransactionId', ''),
		       updated_at
		FROM orders WHERE correlation_token = $1`, token).
		Scan(&s.ID, &s.LifecycleStatus, &s.PaymentStatus, &s.Provider, &s.TransactionID, &s.UpdatedAt)
	require.NoError(t, err)
	return s
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
