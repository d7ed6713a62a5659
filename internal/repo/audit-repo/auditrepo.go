package auditrepo

import (
	"context"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
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

func (r *Repository) Create(ctx context.Context, entry *domain.SystemLog) error {
	query := `
		INSERT INTO system_logs (level, message)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.Level, entry.Message).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save system log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.SystemLog, error) {
	query := `
		SELECT id, level, message, created_at
		FROM system_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list system logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SystemLog
	for rows.Next() {
		var e domain.SystemLog
		if err := rows.Scan(&e.ID, &e.Level, &e.Message, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan system log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
