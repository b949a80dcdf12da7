package payment

import "fmt"

type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "SUCCESS"
	OutcomePending   OutcomeKind = "PENDING"
	OutcomeRejected  OutcomeKind = "REJECTED"
	OutcomeCancelled OutcomeKind = "CANCELLED"
	OutcomeUnknown   OutcomeKind = "UNKNOWN"
)

// Outcome is the canonical classification of a provider status signal.
// Code keeps the raw provider status for UNKNOWN outcomes.
type Outcome struct {
	Kind OutcomeKind
	Code string
}

func Success() Outcome   { return Outcome{Kind: OutcomeSuccess} }
func Pending() Outcome   { return Outcome{Kind: OutcomePending} }
func Rejected() Outcome  { return Outcome{Kind: OutcomeRejected} }
func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

func Unknown(code string) Outcome {
	return Outcome{Kind: OutcomeUnknown, Code: code}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// IsFailure covers outcomes that fail the payment.
func (o Outcome) IsFailure() bool {
	return o.Kind == OutcomeRejected || o.Kind == OutcomeCancelled
}

func (o Outcome) String() string {
	if o.Kind == OutcomeUnknown {
		return fmt.Sprintf("%s(%s)", o.Kind, o.Code)
	}
	return string(o.Kind)
}
