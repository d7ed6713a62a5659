package clientrepo

import (
	"context"
	"errors"

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

func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (user_id, display_name, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, client.UserID, client.DisplayName, client.BirthDate).
		Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		zap.L().Error("can't save client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Client, error) {
	return r.findOne(ctx, "SELECT id, user_id, display_name, birth_date, created_at FROM clients WHERE user_id = $1", userID)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	return r.findOne(ctx, "SELECT id, user_id, display_name, birth_date, created_at FROM clients WHERE id = $1", id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg int) (*domain.Client, error) {
	var client domain.Client
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&client.ID, &client.UserID, &client.DisplayName, &client.BirthDate, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.Error(err))
		return nil, err
	}
	return &client, nil
}
