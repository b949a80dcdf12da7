//go:build unit

package queries_test

import (
	"context"
	"testing"

	"storefront-payments/internal/infra"
	"storefront-payments/internal/usecase/queries"
	queriesmock "storefront-payments/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByPublicHash(t *testing.T) {
	const hash = "0123456789abcdef"
	view := &queries.OrderView{PublicHash: hash, ContactEmail: "buyer@example.com"}

	tests := []struct {
		name    string
		hash    string
		session string
		setup   func(m *queriesmock.MockOrderReadStore)
		wantErr error
	}{
		{
			name:    "owner sees the order",
			hash:    hash,
			session: "Buyer@Example.com",
			setup: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByPublicHash(gomock.Any(), hash).Return(view, nil)
			},
		},
		{
			name:    "another customer gets not found",
			hash:    hash,
			session: "intruder@example.com",
			setup: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByPublicHash(gomock.Any(), hash).Return(view, nil)
			},
			wantErr: queries.ErrOrderNotFound,
		},
		{
			name:    "unknown hash",
			hash:    hash,
			session: "buyer@example.com",
			setup: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByPublicHash(gomock.Any(), hash).
					Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrOrderNotFound,
		},
		{
			name:    "free text never reaches the store",
			hash:    "' OR 1=1 --",
			session: "buyer@example.com",
			setup:   func(m *queriesmock.MockOrderReadStore) {},
			wantErr: queries.ErrInvalidPublicHash,
		},
		{
			name:    "uppercase hash is rejected",
			hash:    "0123456789ABCDEF",
			session: "buyer@example.com",
			setup:   func(m *queriesmock.MockOrderReadStore) {},
			wantErr: queries.ErrInvalidPublicHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			tt.setup(store)

			got, err := queries.NewOrderQueries(store).GetByPublicHash(context.Background(), tt.hash, tt.session)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("database failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByPublicHash(gomock.Any(), hash).Return(nil, infra.WrapRepoErr("select order", assert.AnError))

		_, err := queries.NewOrderQueries(store).GetByPublicHash(context.Background(), hash, "buyer@example.com")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
