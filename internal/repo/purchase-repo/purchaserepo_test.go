package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expires := now.Add(10 * time.Minute)
	items := []domain.LineItem{{Name: "Latte", Quantity: 2, Price: decimal.RequireFromString("3.50")}}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchases")).
		WithArgs("p-1", 1, 3, decimal.NewFromInt(7), 7, "tok", items, expires).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	purchase, err := repo.Create(context.Background(), &domain.Purchase{
		ID: "p-1", BusinessID: 1, WaiterID: 3, Amount: decimal.NewFromInt(7), PointsAwarded: 7,
		SecurityToken: "tok", Items: items, ExpiresAt: expires,
	})
	assert.NoError(t, err)
	assert.Equal(t, now, purchase.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM purchases WHERE id = $1 FOR UPDATE")
	columns := []string{"id", "business_id", "waiter_id", "client_id", "amount", "points_awarded", "security_token", "items", "expires_at", "redeemed", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Purchase
	}{
		{
			name: "Open purchase",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnRows(pgxmock.NewRows(columns).
					AddRow("p-1", 1, 3, (*int)(nil), decimal.NewFromInt(7), 7, "tok", []domain.LineItem{}, now, false, now))
			},
			result: &domain.Purchase{
				ID: "p-1", BusinessID: 1, WaiterID: 3, Amount: decimal.NewFromInt(7), PointsAwarded: 7,
				SecurityToken: "tok", Items: []domain.LineItem{}, ExpiresAt: now, CreatedAt: now,
			},
		},
		{
			name: "Unknown purchase",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIDForUpdate(context.Background(), "p-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkRedeemed(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("WHERE id = $1 AND redeemed = false")

	mock.ExpectExec(query).WithArgs("p-1", 7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkRedeemed(context.Background(), "p-1", 7)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).WithArgs("p-1", 8).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkRedeemed(context.Background(), "p-1", 8)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Now().Add(-720 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM purchases WHERE redeemed = false AND expires_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.DeleteExpired(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
