//go:build unit

package order_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"storefront-payments/internal/domain/order"
	"storefront-payments/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	t.Run("encoded blob decodes to the same snapshots", func(t *testing.T) {
		meta := builder.NewOrderBuilder().BuildMetadata()

		encoded, err := meta.Encode()
		require.NoError(t, err)
		assert.NotContains(t, encoded, "=")

		decoded, err := order.DecodeMetadata(encoded)
		require.NoError(t, err)
		if diff := cmp.Diff(meta.Customer, decoded.Customer); diff != "" {
			t.Errorf("customer mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, meta.Product.UnitPrice.Equal(decoded.Product.UnitPrice))
		assert.Equal(t, meta.Product.Colors, decoded.Product.Colors)
	})

	t.Run("padded standard encoding is accepted", func(t *testing.T) {
		meta := builder.NewOrderBuilder().BuildMetadata()
		raw, err := json.Marshal(meta)
		require.NoError(t, err)

		_, err = order.DecodeMetadata(base64.StdEncoding.EncodeToString(raw))
		assert.NoError(t, err)
	})

	invalid := map[string]string{
		"empty":          "",
		"not base64":     "%%%",
		"not json":       base64.RawURLEncoding.EncodeToString([]byte("hello")),
		"wrong version":  base64.RawURLEncoding.EncodeToString([]byte(`{"v":7}`)),
		"missing fields": base64.RawURLEncoding.EncodeToString([]byte(`{"v":1,"p":{"quantity":1}}`)),
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := order.DecodeMetadata(in)
			assert.ErrorIs(t, err, order.ErrInvalidMetadata)
		})
	}
}
