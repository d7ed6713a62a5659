package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "client_id", "business_id", "program_id", "expires_at", "used", "used_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expires := now.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO redemption_tickets (id, client_id, business_id, program_id, expires_at)")).
		WithArgs("4111111111111111", 7, 1, 5, expires).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	ticket, err := repo.Create(context.Background(), &domain.RedemptionTicket{
		ID: "4111111111111111", ClientID: 7, BusinessID: 1, ProgramID: 5, ExpiresAt: expires,
	})
	assert.NoError(t, err)
	assert.Equal(t, now, ticket.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM redemption_tickets WHERE id = $1 FOR UPDATE")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.RedemptionTicket
	}{
		{
			name: "Ticket found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("4111111111111111").WillReturnRows(pgxmock.NewRows(columns).
					AddRow("4111111111111111", 7, 1, 5, now, false, (*time.Time)(nil), now))
			},
			result: &domain.RedemptionTicket{ID: "4111111111111111", ClientID: 7, BusinessID: 1, ProgramID: 5, ExpiresAt: now, CreatedAt: now},
		},
		{
			name: "Unknown ticket",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("4111111111111111").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("4111111111111111").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIDForUpdate(context.Background(), "4111111111111111")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkUsed(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("WHERE id = $1 AND used = false")

	mock.ExpectExec(query).WithArgs("4111111111111111", now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkUsed(context.Background(), "4111111111111111", now)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).WithArgs("4111111111111111", now).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkUsed(context.Background(), "4111111111111111", now)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM redemption_tickets WHERE used = false AND expires_at < $1")).
		WithArgs(cutoff).
		WillReturnError(errors.New("database error"))

	n, err := repo.DeleteExpired(context.Background(), cutoff)
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
