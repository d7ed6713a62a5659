package purchaserepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
		INSERT INTO purchases (id, business_id, waiter_id, amount, points_awarded, security_token, items, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		purchase.ID, purchase.BusinessID, purchase.WaiterID, purchase.Amount, purchase.PointsAwarded,
		purchase.SecurityToken, purchase.Items, purchase.ExpiresAt,
	).Scan(&purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

// FindByIDForUpdate locks the purchase so concurrent scans of one code
// are serialized.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `
		SELECT id, business_id, waiter_id, client_id, amount, points_awarded, security_token, items, expires_at, redeemed, created_at
		FROM purchases
		WHERE id = $1
		FOR UPDATE
	`
	var p domain.Purchase
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.BusinessID, &p.WaiterID, &p.ClientID, &p.Amount, &p.PointsAwarded,
		&p.SecurityToken, &p.Items, &p.ExpiresAt, &p.Redeemed, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock purchase", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// MarkRedeemed binds the purchase to a client. It reports false when the
// purchase had already been redeemed.
func (r *Repository) MarkRedeemed(ctx context.Context, id string, clientID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE purchases SET redeemed = true, client_id = $2 WHERE id = $1 AND redeemed = false", id, clientID)
	if err != nil {
		zap.L().Error("can't redeem purchase", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteExpired drops never scanned codes that expired before the cutoff.
func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM purchases WHERE redeemed = false AND expires_at < $1", before)
	if err != nil {
		zap.L().Error("can't delete expired purchases", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
