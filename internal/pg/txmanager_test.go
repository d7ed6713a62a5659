package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTXManager_Begin(t *testing.T) {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(m *txManager) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits when fn succeeds",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(opts)
				mock.ExpectCommit()
			},
			fn: func(_ *txManager) TransactionalFn {
				return func(ctx context.Context) error {
					_, ok := TxFromContext(ctx)
					if !ok {
						return errors.New("tx not in context")
					}
					return nil
				}
			},
			expectErr: false,
		},
		{
			name: "Rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(opts)
				mock.ExpectRollback()
			},
			fn: func(_ *txManager) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(opts).WillReturnError(errors.New("connection refused"))
			},
			fn: func(_ *txManager) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
		{
			name: "Nested begin joins outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(opts)
				mock.ExpectCommit()
			},
			fn: func(m *txManager) TransactionalFn {
				return func(ctx context.Context) error {
					return m.Begin(ctx, func(ctx context.Context) error { return nil })
				}
			},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			m := &txManager{pool: mock, opts: opts}

			err = m.Begin(context.Background(), tt.fn(m))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
