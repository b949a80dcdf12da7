package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-payments/internal/domain/payment"
)

// Transition describes what applying an outcome did to an order.
type Transition string

const (
	TransitionNone      Transition = "none"
	TransitionCompleted Transition = "completed"
	TransitionFailed    Transition = "failed"
)

// Order is one customer purchase attempt, keyed for reconciliation by its correlation token.
type Order struct {
	id               uuid.UUID
	correlationToken string
	publicHash       string
	lifecycleStatus  LifecycleStatus
	payment          Payment
	product          ProductSnapshot
	customer         CustomerSnapshot
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPendingOrder builds the record written at checkout, before the customer reaches the provider.
// The id is assigned by the repository.
func NewPendingOrder(
	token, publicHash string,
	product ProductSnapshot,
	customer CustomerSnapshot,
	currency string,
	now time.Time,
) (*Order, error) {
	if err := validateNew(token, publicHash, product, customer); err != nil {
		return nil, err
	}

	return &Order{
		correlationToken: token,
		publicHash:       publicHash,
		lifecycleStatus:  LifecyclePendingPayment,
		payment: Payment{
			Status:   PaymentPending,
			Amount:   product.Total(),
			Currency: currency,
		},
		product:   product.clone(),
		customer:  customer.normalized(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewCompletedOrder rebuilds an order purely from the snapshots a provider echoed back,
// for a successful payment whose pending record is missing.
func NewCompletedOrder(
	token, publicHash string,
	meta Metadata,
	receipt Receipt,
	currency string,
	now time.Time,
) (*Order, error) {
	if err := validateNew(token, publicHash, meta.Product, meta.Customer); err != nil {
		return nil, err
	}

	pay := Payment{
		Status:   PaymentPending,
		Amount:   meta.Product.Total(),
		Currency: currency,
	}.withReceipt(receipt)
	pay.Status = PaymentCompleted
	pay.CompletedAt = &now

	return &Order{
		correlationToken: token,
		publicHash:       publicHash,
		lifecycleStatus:  LifecycleAwaitingFulfillment,
		payment:          pay,
		product:          meta.Product.clone(),
		customer:         meta.Customer.normalized(),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	token, publicHash string,
	lifecycle LifecycleStatus,
	pay Payment,
	product ProductSnapshot,
	customer CustomerSnapshot,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		correlationToken: token,
		publicHash:       publicHash,
		lifecycleStatus:  lifecycle,
		payment:          pay,
		product:          product,
		customer:         customer,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func validateNew(token, publicHash string, product ProductSnapshot, customer CustomerSnapshot) error {
	if token == "" {
		return ErrMissingToken
	}
	if publicHash == "" {
		return ErrMissingPublicHash
	}
	if err := product.Validate(); err != nil {
		return err
	}
	return customer.Validate()
}

// ApplyOutcome moves the order according to a classified provider outcome.
//
// A COMPLETED payment is final: nothing changes it. SUCCESS completes the payment and lifts the
// lifecycle to AWAITING_FULFILLMENT unless it is already further along. REJECTED and CANCELLED
// fail the payment and leave the lifecycle alone. PENDING and UNKNOWN change nothing, not even
// updatedAt.
func (o *Order) ApplyOutcome(outcome payment.Outcome, receipt Receipt, now time.Time) Transition {
	if o.payment.Status == PaymentCompleted {
		return TransitionNone
	}

	switch {
	case outcome.IsSuccess():
		pay := o.payment.withReceipt(receipt)
		pay.Status = PaymentCompleted
		pay.CompletedAt = &now
		o.payment = pay
		if o.lifecycleStatus.Before(LifecycleAwaitingFulfillment) {
			o.lifecycleStatus = LifecycleAwaitingFulfillment
		}
		o.updatedAt = now
		return TransitionCompleted

	case outcome.IsFailure():
		if o.payment.Status == PaymentFailed {
			return TransitionNone
		}
		pay := o.payment.withReceipt(receipt)
		pay.Status = PaymentFailed
		o.payment = pay
		o.updatedAt = now
		return TransitionFailed

	default:
		return TransitionNone
	}
}

func (o *Order) IsPaid() bool {
	return o.payment.Status == PaymentCompleted
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) CorrelationToken() string         { return o.correlationToken }
func (o *Order) PublicHash() string               { return o.publicHash }
func (o *Order) LifecycleStatus() LifecycleStatus { return o.lifecycleStatus }
func (o *Order) Payment() Payment                 { return o.payment }
func (o *Order) Product() ProductSnapshot         { return o.product.clone() }
func (o *Order) Customer() CustomerSnapshot       { return o.customer }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
func (o *Order) Amount() decimal.Decimal          { return o.payment.Amount }

// AssignID is called once by the repository after the insert.
func (o *Order) AssignID(id uuid.UUID) {
	if o.id == uuid.Nil {
		o.id = id
	}
}
