package repository

import (
	"context"
	"encoding/json"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/infra/db"
	"storefront-payments/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, correlation_token, public_hash, lifecycle_status, payment,
	product_snapshot, customer_snapshot, created_at, updated_at`

const findOrderByTokenSQL = `SELECT ` + orderColumns + ` FROM orders WHERE correlation_token = $1`

const findOrderByIDSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

const createOrderSQL = `INSERT INTO orders (
	correlation_token, public_hash, lifecycle_status, payment,
	product_snapshot, customer_snapshot, contact_email, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

// snapshots are immutable after creation, so only payment state is written back.
// A completed payment is never overwritten, whatever the caller read earlier.
const updateOrderSQL = `UPDATE orders
SET lifecycle_status = $2, payment = $3, updated_at = $4
WHERE id = $1 AND payment->>'status' <> 'COMPLETED'`

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) FindByCorrelationToken(ctx context.Context, token string) (*order.Order, error) {
	return r.findOne(ctx, findOrderByTokenSQL, token)
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, findOrderByIDSQL, id)
}

func (r *OrderRepository) findOne(ctx context.Context, query string, arg any) (*order.Order, error) {
	var row orderRow
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&row.ID,
		&row.CorrelationToken,
		&row.PublicHash,
		&row.LifecycleStatus,
		&row.Payment,
		&row.Product,
		&row.Customer,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return row.toDomain()
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	pay, product, customer, err := marshalDocuments(o)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode order documents", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, createOrderSQL,
		o.CorrelationToken(),
		o.PublicHash(),
		o.LifecycleStatus().String(),
		pay,
		product,
		customer,
		o.Customer().Email,
		pgconv.TimeToPgtype(o.CreatedAt()),
		pgconv.TimeToPgtype(o.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order already exists for correlation token", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	o.AssignID(id)
	return id, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	pay, err := json.Marshal(o.Payment())
	if err != nil {
		return infra.WrapRepoErr("failed to encode payment", err)
	}

	tag, err := r.db.Exec(ctx, updateOrderSQL,
		o.ID(),
		o.LifecycleStatus().String(),
		pay,
		pgconv.TimeToPgtype(o.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order missing or payment already completed", nil, infra.KindStaleWrite)
	}
	return nil
}

type orderRow struct {
	ID               uuid.UUID
	CorrelationToken string
	PublicHash       string
	LifecycleStatus  string
	Payment          []byte
	Product          []byte
	Customer         []byte
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (row orderRow) toDomain() (*order.Order, error) {
	lifecycle, err := order.ParseLifecycleStatus(row.LifecycleStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order has invalid lifecycle status", err)
	}

	var pay order.Payment
	if err := json.Unmarshal(row.Payment, &pay); err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	var product order.ProductSnapshot
	if err := json.Unmarshal(row.Product, &product); err != nil {
		return nil, infra.WrapRepoErr("failed to decode product snapshot", err)
	}
	var customer order.CustomerSnapshot
	if err := json.Unmarshal(row.Customer, &customer); err != nil {
		return nil, infra.WrapRepoErr("failed to decode customer snapshot", err)
	}
	if pay.CompletedAt != nil {
		t := pay.CompletedAt.UTC()
		pay.CompletedAt = &t
	}

	return order.Reconstruct(
		row.ID,
		row.CorrelationToken,
		row.PublicHash,
		lifecycle,
		pay,
		product,
		customer,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func marshalDocuments(o *order.Order) (pay, product, customer []byte, err error) {
	if pay, err = json.Marshal(o.Payment()); err != nil {
		return nil, nil, nil, err
	}
	if product, err = json.Marshal(o.Product()); err != nil {
		return nil, nil, nil, err
	}
	if customer, err = json.Marshal(o.Customer()); err != nil {
		return nil, nil, nil, err
	}
	return pay, product, customer, nil
}
