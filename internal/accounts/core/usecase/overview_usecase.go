package usecase

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

const recentClientsLimit = 5

type GetOverviewUseCase struct {
	users    ports.UserRepositoryPort
	products ports.ProductRepositoryPort
}

func NewGetOverviewUseCase(users ports.UserRepositoryPort, products ports.ProductRepositoryPort) *GetOverviewUseCase {
	return &GetOverviewUseCase{users: users, products: products}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*domain.Overview, error) {
	totalClients, activeClients, err := uc.users.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.users.RecentClients(ctx, recentClientsLimit)
	if err != nil {
		return nil, err
	}

	totalProducts, activeProducts, err := uc.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Overview{
		TotalClients:   totalClients,
		ActiveClients:  activeClients,
		RecentClients:  recent,
		TotalProducts:  totalProducts,
		ActiveProducts: activeProducts,
	}, nil
}
