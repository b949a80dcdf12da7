package order

import "errors"

var (
	ErrInvalidLifecycleStatus = errors.New("invalid lifecycle status")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
)

// LifecycleStatus is the fulfillment stage of an order. Stages are ordered.
type LifecycleStatus string

const (
	LifecyclePendingPayment      LifecycleStatus = "PENDING_PAYMENT"
	LifecycleAwaitingFulfillment LifecycleStatus = "AWAITING_FULFILLMENT"
	LifecycleManufacturing       LifecycleStatus = "MANUFACTURING"
	LifecycleShipped             LifecycleStatus = "SHIPPED"
	LifecycleDelivered           LifecycleStatus = "DELIVERED"
)

var lifecycleRank = map[LifecycleStatus]int{
	LifecyclePendingPayment:      0,
	LifecycleAwaitingFulfillment: 1,
	LifecycleManufacturing:       2,
	LifecycleShipped:             3,
	LifecycleDelivered:           4,
}

func (s LifecycleStatus) String() string {
	return string(s)
}

func (s LifecycleStatus) IsValid() bool {
	_, ok := lifecycleRank[s]
	return ok
}

// Before reports whether s is an earlier stage than other.
func (s LifecycleStatus) Before(other LifecycleStatus) bool {
	return lifecycleRank[s] < lifecycleRank[other]
}

func ParseLifecycleStatus(s string) (LifecycleStatus, error) {
	status := LifecycleStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidLifecycleStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}
