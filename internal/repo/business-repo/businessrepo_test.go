package businessrepo

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

var columns = []string{"id", "owner_id", "name", "status", "tier", "points_multiplier", "birthday_bonus", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByOwnerID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM businesses WHERE owner_id = $1")

	tests := []struct {
		name      string
		ownerID   int
		mockSetup func()
		expectErr bool
		result    *domain.Business
	}{
		{
			name:    "Business found",
			ownerID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(1, 2, "Cafe", domain.BusinessActive, "FREE", decimal.NewFromInt(1), 50, now))
			},
			result: &domain.Business{
				ID: 1, OwnerID: 2, Name: "Cafe", Status: domain.BusinessActive, Tier: "FREE",
				PointsMultiplier: decimal.NewFromInt(1), BirthdayBonus: 50, CreatedAt: now,
			},
		},
		{
			name:    "No business",
			ownerID: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			ownerID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOwnerID(context.Background(), tt.ownerID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO businesses (owner_id, name, status, tier, points_multiplier, birthday_bonus) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)).
		WithArgs(2, "Cafe", domain.BusinessPending, "FREE", decimal.NewFromInt(1), 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))

	business, err := repo.Create(context.Background(), &domain.Business{
		OwnerID: 2, Name: "Cafe", Status: domain.BusinessPending, Tier: "FREE", PointsMultiplier: decimal.NewFromInt(1),
	})
	assert.NoError(t, err)
	assert.Equal(t, 9, business.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateMultiplier(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	boosted := decimal.NewFromInt(2)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE businesses SET points_multiplier = $1 WHERE id = $2 RETURNING`)).
		WithArgs(boosted, 1).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 2, "Cafe", domain.BusinessActive, "PRO", boosted, 0, now))

	business, err := repo.UpdateMultiplier(context.Background(), 1, boosted)
	assert.NoError(t, err)
	assert.True(t, business.PointsMultiplier.Equal(boosted))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE businesses SET status = $1, tier = $2 WHERE id = $3 RETURNING`)).
		WithArgs(domain.BusinessBlocked, "FREE", 42).
		WillReturnError(pgx.ErrNoRows)

	business, err := repo.UpdateStatus(context.Background(), 42, domain.BusinessBlocked, "FREE")
	assert.NoError(t, err)
	assert.Nil(t, business)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM businesses ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(2, 5, "Bakery", domain.BusinessPending, "FREE", decimal.NewFromInt(1), 0, now).
			AddRow(1, 2, "Cafe", domain.BusinessActive, "PRO", decimal.NewFromInt(2), 10, now))

	businesses, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, businesses, 2)
	assert.Equal(t, "Bakery", businesses[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
