package ticketrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const ticketColumns = `id, client_id, business_id, program_id, expires_at, used, used_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) findOne(ctx context.Context, query, id string) (*domain.RedemptionTicket, error) {
	var t domain.RedemptionTicket
	err := r.db.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.ClientID, &t.BusinessID, &t.ProgramID, &t.ExpiresAt, &t.Used, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ticket", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, ticket *domain.RedemptionTicket) (*domain.RedemptionTicket, error) {
	query := `
		INSERT INTO redemption_tickets (id, client_id, business_id, program_id, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, ticket.ID, ticket.ClientID, ticket.BusinessID, ticket.ProgramID, ticket.ExpiresAt).
		Scan(&ticket.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ticket", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.RedemptionTicket, error) {
	return r.findOne(ctx, "SELECT "+ticketColumns+" FROM redemption_tickets WHERE id = $1", id)
}

func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.RedemptionTicket, error) {
	return r.findOne(ctx, "SELECT "+ticketColumns+" FROM redemption_tickets WHERE id = $1 FOR UPDATE", id)
}

// MarkUsed reports false when the ticket was already used.
func (r *Repository) MarkUsed(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE redemption_tickets SET used = true, used_at = $2 WHERE id = $1 AND used = false", id, at)
	if err != nil {
		zap.L().Error("can't mark ticket used", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM redemption_tickets WHERE used = false AND expires_at < $1", before)
	if err != nil {
		zap.L().Error("can't delete expired tickets", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
