package postgres

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ports.ProductRepositoryPort = (*ProductRepository)(nil)

const productColumns = `
    id, name, product_type, description, status, created_at, updated_at`

func scanProduct(rows RowScanner) (domain.Product, error) {
	var p domain.Product
	err := rows.Scan(
		&p.ID, &p.Name, &p.Type, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProductRepository) List(ctx context.Context, search string) ([]domain.Product, error) {
	query := `SELECT` + productColumns + `
FROM products`
	args := []any{}

	if search != "" {
		query += `
WHERE name ILIKE $1 OR description ILIKE $1 OR product_type ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += `
ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT` + productColumns + `
FROM products
WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	query := `
INSERT INTO products (name, product_type, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
RETURNING id`

	rows, err := r.db.QueryContext(ctx, query, p.Name, p.Type, p.Description, p.Status)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (bool, error) {
	query := `
UPDATE products
SET name = $1, product_type = $2, description = $3, status = $4, updated_at = NOW()
WHERE id = $5`

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Type, p.Description, p.Status, p.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 AND id <> $2)`,
		name, excludeID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var exists bool
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return false, err
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, int64, error) {
	query := `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE status = 'active') AS active
FROM products`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var total, active int64
	if rows.Next() {
		if err := rows.Scan(&total, &active); err != nil {
			return 0, 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
