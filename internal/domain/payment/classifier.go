package payment

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Provider A numeric status codes.
const (
	providerAStatusSuccess   = 1
	providerAStatusRejected  = 2
	providerAStatusPending   = 3
	providerAStatusCancelled = 4
)

const providerBStatusCompleted = "Completed"

// FlexString decodes a JSON string, number or bool into its text form.
// Empty values follow JSON-falsy rules: null, "", false and a numeric zero decode to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*f = ""
		return nil
	case bytes.Equal(data, []byte("true")):
		*f = "true"
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if v, err := strconv.ParseFloat(n.String(), 64); err == nil && v == 0 {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// PaymentDetail is the auxiliary settlement record some provider A responses carry.
type PaymentDetail struct {
	Date   FlexString `json:"date"`
	Method FlexString `json:"method"`
	Amount FlexString `json:"amount"`
}

// IsSettled reports whether date, method and amount are all present.
func (d *PaymentDetail) IsSettled() bool {
	if d == nil {
		return false
	}
	return strings.TrimSpace(d.Date.String()) != "" &&
		strings.TrimSpace(d.Method.String()) != "" &&
		strings.TrimSpace(d.Amount.String()) != ""
}

// ClassifyProviderA maps a provider A status code to an outcome.
// A settled payment detail wins over the status code.
func ClassifyProviderA(status int, detail *PaymentDetail) Outcome {
	if detail.IsSettled() {
		return Success()
	}

	switch status {
	case providerAStatusSuccess:
		return Success()
	case providerAStatusRejected:
		return Rejected()
	case providerAStatusPending:
		return Pending()
	case providerAStatusCancelled:
		return Cancelled()
	default:
		return Unknown(strconv.Itoa(status))
	}
}

// ClassifyProviderB distinguishes only completed from not completed.
func ClassifyProviderB(status string) Outcome {
	if status == providerBStatusCompleted {
		return Success()
	}
	return Rejected()
}
