package postgres

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

type ContactRequestRepository struct {
	db DB
}

func NewContactRequestRepository(db DB) *ContactRequestRepository {
	return &ContactRequestRepository{db: db}
}

var _ ports.ContactRequestRepositoryPort = (*ContactRequestRepository)(nil)

const contactColumns = `
    id, name, email, company, project, newsletter, status, notes, created_at, updated_at`

func scanContactRequest(rows RowScanner) (domain.ContactRequest, error) {
	var cr domain.ContactRequest
	err := rows.Scan(
		&cr.ID, &cr.Name, &cr.Email, &cr.Company, &cr.Project,
		&cr.Newsletter, &cr.Status, &cr.Notes, &cr.CreatedAt, &cr.UpdatedAt,
	)
	return cr, err
}

func (r *ContactRequestRepository) List(ctx context.Context, status string) ([]domain.ContactRequest, error) {
	query := `SELECT` + contactColumns + `
FROM contact_requests`
	args := []any{}

	if status != "" {
		query += `
WHERE status = $1`
		args = append(args, status)
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ContactRequest
	for rows.Next() {
		cr, err := scanContactRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ContactRequestRepository) Get(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	query := `SELECT` + contactColumns + `
FROM contact_requests
WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	cr, err := scanContactRequest(rows)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *ContactRequestRepository) Create(ctx context.Context, cr *domain.ContactRequest) (int64, error) {
	query := `
INSERT INTO contact_requests (name, email, company, project, newsletter, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, '', NOW(), NOW())
RETURNING id`

	rows, err := r.db.QueryContext(ctx, query,
		cr.Name, cr.Email, cr.Company, cr.Project, cr.Newsletter, cr.Status,
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

func (r *ContactRequestRepository) UpdateWorkflow(ctx context.Context, id int64, status, notes string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE contact_requests
SET status = $1, notes = $2, updated_at = NOW()
WHERE id = $3`,
		status, notes, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ContactRequestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contact_requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ContactRequestRepository) NewsletterEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT email
FROM contact_requests
WHERE newsletter = TRUE
ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return emails, nil
}
