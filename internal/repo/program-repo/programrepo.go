package programrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const programColumns = `id, business_id, name, reward_description, points_threshold, points_per_currency, active, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanProgram(row pgx.Row) (*domain.LoyaltyProgram, error) {
	var p domain.LoyaltyProgram
	err := row.Scan(&p.ID, &p.BusinessID, &p.Name, &p.RewardDescription, &p.PointsThreshold, &p.PointsPerCurrency, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.LoyaltyProgram, error) {
	p, err := scanProgram(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find loyalty program", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error) {
	query := `
		INSERT INTO loyalty_programs (business_id, name, reward_description, points_threshold, points_per_currency, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		program.BusinessID, program.Name, program.RewardDescription, program.PointsThreshold, program.PointsPerCurrency, program.Active,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		zap.L().Error("can't save loyalty program", zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.LoyaltyProgram, error) {
	return r.findOne(ctx, "SELECT "+programColumns+" FROM loyalty_programs WHERE id = $1", id)
}

// FindFirstActive picks the oldest active program of the business; ties on
// created_at fall back to the id so the choice is stable.
func (r *Repository) FindFirstActive(ctx context.Context, businessID int) (*domain.LoyaltyProgram, error) {
	query := `
		SELECT ` + programColumns + `
		FROM loyalty_programs
		WHERE business_id = $1 AND active = true
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`
	return r.findOne(ctx, query, businessID)
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID int) ([]domain.LoyaltyProgram, error) {
	query := `
		SELECT ` + programColumns + `
		FROM loyalty_programs
		WHERE business_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't list loyalty programs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var programs []domain.LoyaltyProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			zap.L().Error("can't scan loyalty program row", zap.Error(err))
			return nil, err
		}
		programs = append(programs, *p)
	}
	return programs, rows.Err()
}

func (r *Repository) Update(ctx context.Context, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error) {
	query := `
		UPDATE loyalty_programs
		SET name = $1, reward_description = $2, points_threshold = $3, points_per_currency = $4, active = $5
		WHERE id = $6 AND business_id = $7
		RETURNING ` + programColumns
	return r.findOne(ctx, query,
		program.Name, program.RewardDescription, program.PointsThreshold, program.PointsPerCurrency, program.Active,
		program.ID, program.BusinessID,
	)
}

// Delete removes the program together with its tickets and balances.
func (r *Repository) Delete(ctx context.Context, businessID, id int) (bool, error) {
	var deleted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, "DELETE FROM redemption_tickets WHERE program_id = $1 AND business_id = $2", id, businessID); err != nil {
			zap.L().Error("can't delete program tickets", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `
			DELETE FROM client_progress
			WHERE program_id IN (SELECT id FROM loyalty_programs WHERE id = $1 AND business_id = $2)
		`, id, businessID); err != nil {
			zap.L().Error("can't delete program progress", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, "DELETE FROM loyalty_programs WHERE id = $1 AND business_id = $2", id, businessID)
		if err != nil {
			zap.L().Error("can't delete loyalty program", zap.Error(err))
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
