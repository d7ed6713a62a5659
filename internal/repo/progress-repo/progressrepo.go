package progressrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const progressColumns = `id, client_id, program_id, points_accumulated, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProgress(row pgx.Row) (*domain.ClientProgress, error) {
	var p domain.ClientProgress
	if err := row.Scan(&p.ID, &p.ClientID, &p.ProgramID, &p.PointsAccumulated, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindForUpdate locks the balance row until the surrounding transaction ends.
func (r *Repository) FindForUpdate(ctx context.Context, clientID, programID int) (*domain.ClientProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM client_progress
		WHERE client_id = $1 AND program_id = $2
		FOR UPDATE
	`
	p, err := scanProgress(r.db.QueryRow(ctx, query, clientID, programID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock client progress", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Credit adds points to the balance, creating it on first use.
func (r *Repository) Credit(ctx context.Context, clientID, programID, points int) (*domain.ClientProgress, error) {
	query := `
		INSERT INTO client_progress (client_id, program_id, points_accumulated, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (client_id, program_id)
		DO UPDATE SET points_accumulated = client_progress.points_accumulated + EXCLUDED.points_accumulated,
			updated_at = NOW()
		RETURNING ` + progressColumns
	p, err := scanProgress(r.db.QueryRow(ctx, query, clientID, programID, points))
	if err != nil {
		zap.L().Error("can't credit client progress", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Debit subtracts points only while the balance covers them and reports
// whether a row was changed.
func (r *Repository) Debit(ctx context.Context, id, points int) (bool, error) {
	query := `
		UPDATE client_progress
		SET points_accumulated = points_accumulated - $2, updated_at = NOW()
		WHERE id = $1 AND points_accumulated >= $2
	`
	tag, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		zap.L().Error("can't debit client progress", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByClient(ctx context.Context, clientID int) ([]domain.ProgressView, error) {
	query := `
		SELECT lp.id, lp.name, lp.reward_description, b.id, b.name, lp.points_threshold, cp.points_accumulated, cp.updated_at
		FROM client_progress cp
		JOIN loyalty_programs lp ON lp.id = cp.program_id
		JOIN businesses b ON b.id = lp.business_id
		WHERE cp.client_id = $1
		ORDER BY cp.updated_at DESC
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		zap.L().Error("can't list client progress", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []domain.ProgressView
	for rows.Next() {
		var v domain.ProgressView
		err := rows.Scan(&v.ProgramID, &v.ProgramName, &v.RewardDescription, &v.BusinessID, &v.BusinessName,
			&v.PointsThreshold, &v.PointsAccumulated, &v.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan client progress row", zap.Error(err))
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
