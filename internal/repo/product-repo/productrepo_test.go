package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
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
	price := decimal.RequireFromString("3.50")

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (business_id, name, price, points_per_unit) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)).
		WithArgs(1, "Latte", price, 4).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	product, err := repo.Create(context.Background(), &domain.Product{BusinessID: 1, Name: "Latte", Price: price, PointsPerUnit: 4})
	assert.NoError(t, err)
	assert.Equal(t, 3, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByBusiness(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE business_id = $1 ORDER BY name ASC")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_id", "name", "price", "points_per_unit", "created_at"}).
			AddRow(2, 1, "Croissant", decimal.RequireFromString("2.10"), 2, now).
			AddRow(3, 1, "Latte", decimal.RequireFromString("3.50"), 4, now))

	products, err := repo.ListByBusiness(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Latte", products[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("DELETE FROM products WHERE id = $1 AND business_id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		deleted   bool
		expectErr bool
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(3, 1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "Foreign product",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(3, 1).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(3, 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), 1, 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}
