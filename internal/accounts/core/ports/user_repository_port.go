package ports

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
)

type UserRepositoryPort interface {
	// ListClients returns client users, newest first. A non-empty search
	// matches username, email or company name.
	ListClients(ctx context.Context, search string) ([]domain.User, error)

	// GetClient returns (nil, nil) when no client user has the id.
	GetClient(ctx context.Context, id int64) (*domain.User, error)

	CreateClient(ctx context.Context, u *domain.User) (int64, error)
	UpdateClient(ctx context.Context, u *domain.User) (bool, error)
	DeleteClient(ctx context.Context, id int64) (bool, error)

	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)

	CountClients(ctx context.Context) (total, active int64, err error)
	RecentClients(ctx context.Context, limit int) ([]domain.User, error)
}
