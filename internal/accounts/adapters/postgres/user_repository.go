package postgres

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepositoryPort = (*UserRepository)(nil)

const userColumns = `
    id, username, email, company_name, phone, tenant_id,
    is_client, is_active, website_url, notes, created_at, updated_at`

func scanUser(rows RowScanner) (domain.User, error) {
	var u domain.User
	err := rows.Scan(
		&u.ID, &u.Username, &u.Email, &u.CompanyName, &u.Phone, &u.TenantID,
		&u.IsClient, &u.IsActive, &u.WebsiteURL, &u.Notes, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *UserRepository) ListClients(ctx context.Context, search string) ([]domain.User, error) {
	query := `SELECT` + userColumns + `
FROM users
WHERE is_client = TRUE`
	args := []any{}

	if search != "" {
		query += `
  AND (username ILIKE $1 OR email ILIKE $1 OR company_name ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetClient(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT` + userColumns + `
FROM users
WHERE id = $1 AND is_client = TRUE`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	u, err := scanUser(rows)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateClient(ctx context.Context, u *domain.User) (int64, error) {
	query := `
INSERT INTO users (
    username, email, company_name, phone, tenant_id,
    is_client, is_active, website_url, notes, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, NOW(), NOW()
)
RETURNING id`

	rows, err := r.db.QueryContext(ctx, query,
		u.Username, u.Email, u.CompanyName, u.Phone, u.TenantID,
		u.IsClient, u.IsActive, u.WebsiteURL, u.Notes,
	)
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

func (r *UserRepository) UpdateClient(ctx context.Context, u *domain.User) (bool, error) {
	query := `
UPDATE users
SET username = $1, email = $2, company_name = $3, phone = $4,
    is_active = $5, website_url = $6, notes = $7, updated_at = NOW()
WHERE id = $8 AND is_client = TRUE`

	res, err := r.db.ExecContext(ctx, query,
		u.Username, u.Email, u.CompanyName, u.Phone,
		u.IsActive, u.WebsiteURL, u.Notes, u.ID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) DeleteClient(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1 AND is_client = TRUE`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	return r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
		username, excludeID)
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID)
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *UserRepository) CountClients(ctx context.Context) (int64, int64, error) {
	query := `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE is_active) AS active
FROM users
WHERE is_client = TRUE`

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

func (r *UserRepository) RecentClients(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT` + userColumns + `
FROM users
WHERE is_client = TRUE
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// ClientExists backs the chatbot operator report's target check.
func (r *UserRepository) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	return r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND is_client = TRUE)`,
		clientID)
}
