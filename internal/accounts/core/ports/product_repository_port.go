package ports

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
)

type ProductRepositoryPort interface {
	// List returns products ordered by name. A non-empty search matches
	// name, description or type.
	List(ctx context.Context, search string) ([]domain.Product, error)

	// Get returns (nil, nil) when no product has the id.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	Create(ctx context.Context, p *domain.Product) (int64, error)
	Update(ctx context.Context, p *domain.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context) (total, active int64, err error)
}
