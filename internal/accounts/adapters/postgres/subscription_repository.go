package postgres

import (
	"context"
	"database/sql"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

type SubscriptionRepository struct {
	db DB
}

func NewSubscriptionRepository(db DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

var _ ports.SubscriptionRepositoryPort = (*SubscriptionRepository)(nil)

const subscriptionSelect = `
SELECT
    cp.id, cp.client_id, cp.product_id, p.name, p.product_type,
    cp.status, cp.start_date, cp.end_date, cp.monthly_cost, cp.notes
FROM client_products cp
JOIN products p ON p.id = cp.product_id`

func scanSubscription(rows RowScanner) (domain.Subscription, error) {
	var (
		s       domain.Subscription
		endDate sql.NullTime
		cost    sql.NullFloat64
	)
	err := rows.Scan(
		&s.ID, &s.ClientID, &s.ProductID, &s.ProductName, &s.ProductType,
		&s.Status, &s.StartDate, &endDate, &cost, &s.Notes,
	)
	if err != nil {
		return s, err
	}
	if endDate.Valid {
		t := endDate.Time
		s.EndDate = &t
	}
	if cost.Valid {
		v := cost.Float64
		s.MonthlyCost = &v
	}
	return s, nil
}

func (r *SubscriptionRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	query := subscriptionSelect + `
WHERE cp.client_id = $1
ORDER BY cp.start_date DESC`
	return r.list(ctx, query, clientID)
}

func (r *SubscriptionRepository) ListActiveByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	query := subscriptionSelect + `
WHERE cp.client_id = $1 AND cp.status = 'active'
ORDER BY cp.start_date DESC`
	return r.list(ctx, query, clientID)
}

func (r *SubscriptionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

const assignSQL = `
INSERT INTO client_products (
    client_id, product_id, status, start_date, monthly_cost, notes
) VALUES (
    $1, $2, $3, NOW(), $4, $5
)
ON CONFLICT (client_id, product_id) DO NOTHING;
`

func (r *SubscriptionRepository) Assign(ctx context.Context, sub *domain.Subscription) (bool, error) {
	var cost any
	if sub.MonthlyCost != nil {
		cost = *sub.MonthlyCost
	}

	res, err := r.db.ExecContext(ctx, assignSQL,
		sub.ClientID, sub.ProductID, sub.Status, cost, sub.Notes,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1 -> assigned
	// rows == 0 -> pair already exists (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, clientID, productID int64, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE client_products
SET status = $1
WHERE client_id = $2 AND product_id = $3`,
		status, clientID, productID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SubscriptionRepository) Remove(ctx context.Context, clientID, productID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM client_products
WHERE client_id = $1 AND product_id = $2`,
		clientID, productID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SubscriptionRepository) HasActiveChatbot(ctx context.Context, clientID int64) (bool, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT EXISTS (
    SELECT 1
    FROM client_products cp
    JOIN products p ON p.id = cp.product_id
    WHERE cp.client_id = $1
      AND cp.status = 'active'
      AND p.product_type = 'chatbot'
)`, clientID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var ok bool
	if rows.Next() {
		if err := rows.Scan(&ok); err != nil {
			return false, err
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return ok, nil
}
