package order

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidMetadata = errors.New("invalid order metadata")

const metadataVersion = 1

// Metadata is the opaque blob embedded in the outbound provider request and echoed back
// on callbacks. It carries enough to rebuild the order without the pending record.
type Metadata struct {
	Version  int              `json:"v"`
	Product  ProductSnapshot  `json:"p"`
	Customer CustomerSnapshot `json:"c"`
}

func NewMetadata(product ProductSnapshot, customer CustomerSnapshot) Metadata {
	return Metadata{
		Version:  metadataVersion,
		Product:  product.clone(),
		Customer: customer,
	}
}

func (m Metadata) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeMetadata accepts padded and unpadded, URL-safe and standard base64.
func DecodeMetadata(s string) (Metadata, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Metadata{}, ErrInvalidMetadata
	}

	var raw []byte
	var err error
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.StdEncoding} {
		raw, err = enc.DecodeString(s)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Metadata{}, errors.Join(ErrInvalidMetadata, err)
	}

	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return Metadata{}, errors.Join(ErrInvalidMetadata, err)
	}
	if m.Version != metadataVersion {
		return Metadata{}, ErrInvalidMetadata
	}
	if err := m.Product.Validate(); err != nil {
		return Metadata{}, errors.Join(ErrInvalidMetadata, err)
	}
	if err := m.Customer.Validate(); err != nil {
		return Metadata{}, errors.Join(ErrInvalidMetadata, err)
	}
	return m, nil
}
