package productrepo

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

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (business_id, name, price, points_per_unit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, product.BusinessID, product.Name, product.Price, product.PointsPerUnit).
		Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID int) ([]domain.Product, error) {
	query := `
		SELECT id, business_id, name, price, points_per_unit, created_at
		FROM products
		WHERE business_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Price, &p.PointsPerUnit, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete reports false when the product doesn't exist within the business.
func (r *Repository) Delete(ctx context.Context, businessID, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1 AND business_id = $2", id, businessID)
	if err != nil {
		zap.L().Error("can't delete product", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
