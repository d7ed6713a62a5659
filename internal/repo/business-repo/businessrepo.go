package businessrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const businessColumns = `id, owner_id, name, status, tier, points_multiplier, birthday_bonus, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var b domain.Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Status, &b.Tier, &b.PointsMultiplier, &b.BirthdayBonus, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Business, error) {
	b, err := scanBusiness(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find business", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	query := `
		INSERT INTO businesses (owner_id, name, status, tier, points_multiplier, birthday_bonus)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		business.OwnerID, business.Name, business.Status, business.Tier, business.PointsMultiplier, business.BirthdayBonus,
	).Scan(&business.ID, &business.CreatedAt)
	if err != nil {
		zap.L().Error("can't save business", zap.Error(err))
		return nil, err
	}
	return business, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Business, error) {
	return r.findOne(ctx, "SELECT "+businessColumns+" FROM businesses WHERE id = $1", id)
}

func (r *Repository) FindByOwnerID(ctx context.Context, ownerID int) (*domain.Business, error) {
	return r.findOne(ctx, "SELECT "+businessColumns+" FROM businesses WHERE owner_id = $1", ownerID)
}

func (r *Repository) List(ctx context.Context) ([]domain.Business, error) {
	rows, err := r.db.Query(ctx, "SELECT "+businessColumns+" FROM businesses ORDER BY created_at DESC")
	if err != nil {
		zap.L().Error("can't list businesses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			zap.L().Error("can't scan business row", zap.Error(err))
			return nil, err
		}
		businesses = append(businesses, *b)
	}
	return businesses, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.BusinessStatus, tier string) (*domain.Business, error) {
	query := `
		UPDATE businesses
		SET status = $1, tier = $2
		WHERE id = $3
		RETURNING ` + businessColumns
	return r.findOne(ctx, query, status, tier, id)
}

func (r *Repository) UpdateMultiplier(ctx context.Context, id int, multiplier decimal.Decimal) (*domain.Business, error) {
	query := `
		UPDATE businesses
		SET points_multiplier = $1
		WHERE id = $2
		RETURNING ` + businessColumns
	return r.findOne(ctx, query, multiplier, id)
}

func (r *Repository) UpdateBirthdayBonus(ctx context.Context, id int, points int) (*domain.Business, error) {
	query := `
		UPDATE businesses
		SET birthday_bonus = $1
		WHERE id = $2
		RETURNING ` + businessColumns
	return r.findOne(ctx, query, points, id)
}
