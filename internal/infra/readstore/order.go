package readstore

import (
	"context"
	"encoding/json"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/infra/db"
	"storefront-payments/internal/pkg/pgconv"
	"storefront-payments/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findOrderViewByHashSQL = `SELECT id, public_hash, lifecycle_status, payment,
	product_snapshot, customer_snapshot, contact_email, created_at, updated_at
FROM orders
WHERE public_hash = $1
ORDER BY created_at DESC
LIMIT 1`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByPublicHash(ctx context.Context, publicHash string) (*queries.OrderView, error) {
	var view queries.OrderView
	var payRaw, productRaw, custRaw []byte
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, findOrderViewByHashSQL, publicHash).Scan(
		&view.ID,
		&view.PublicHash,
		&view.LifecycleStatus,
		&payRaw,
		&productRaw,
		&custRaw,
		&view.ContactEmail,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by public hash", err)
	}

	var (
		pay      order.Payment
		product  order.ProductSnapshot
		customer order.CustomerSnapshot
	)
	if err := json.Unmarshal(payRaw, &pay); err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	if err := json.Unmarshal(productRaw, &product); err != nil {
		return nil, infra.WrapRepoErr("failed to decode product snapshot", err)
	}
	if err := json.Unmarshal(custRaw, &customer); err != nil {
		return nil, infra.WrapRepoErr("failed to decode customer snapshot", err)
	}

	view.PaymentStatus = pay.Status.String()
	view.Provider = pay.Provider.String()
	view.Amount = pay.Amount
	view.Currency = pay.Currency
	view.CompletedAt = pay.CompletedAt
	view.Product = queries.OrderProductView{
		Quantity:    product.Quantity,
		SensorType:  product.SensorType,
		Colors:      product.Colors,
		Accessories: product.Accessories,
	}
	view.Shipping = queries.OrderShippingView{
		FullName:   customer.FullName,
		Line1:      customer.Address.Line1,
		Line2:      customer.Address.Line2,
		City:       customer.Address.City,
		Region:     customer.Address.Region,
		PostalCode: customer.Address.PostalCode,
		Country:    customer.Address.Country,
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
