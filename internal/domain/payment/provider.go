package payment

import "errors"

var ErrUnknownProvider = errors.New("unknown payment provider")

// Provider names one of the integrated payment gateways.
type Provider string

const (
	// ProviderA redirects the customer and confirms server-to-server via a status lookup.
	ProviderA Provider = "provider-a"
	// ProviderB posts fire-and-forget instant payment notifications.
	ProviderB Provider = "provider-b"
)

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderA, ProviderB:
		return true
	default:
		return false
	}
}

func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.IsValid() {
		return "", ErrUnknownProvider
	}
	return p, nil
}

// TokenKey is the request field that carries the correlation token for the provider.
func (p Provider) TokenKey() string {
	switch p {
	case ProviderB:
		return "invoice"
	default:
		return "token"
	}
}
