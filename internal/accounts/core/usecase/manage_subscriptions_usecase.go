package usecase

import (
	"context"
	"errors"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

var (
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrAlreadySubscribed    = errors.New("client already has this product")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type ManageSubscriptionsUseCase struct {
	subs     ports.SubscriptionRepositoryPort
	users    ports.UserRepositoryPort
	products ports.ProductRepositoryPort
}

func NewManageSubscriptionsUseCase(
	subs ports.SubscriptionRepositoryPort,
	users ports.UserRepositoryPort,
	products ports.ProductRepositoryPort,
) *ManageSubscriptionsUseCase {
	return &ManageSubscriptionsUseCase{subs: subs, users: users, products: products}
}

func (uc *ManageSubscriptionsUseCase) ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	u, err := uc.users.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return uc.subs.ListByClient(ctx, clientID)
}

// ClientDashboard lists the caller's active services.
func (uc *ManageSubscriptionsUseCase) ClientDashboard(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	return uc.subs.ListActiveByClient(ctx, clientID)
}

type AssignProductInput struct {
	ClientID    int64
	ProductID   int64
	Status      string
	MonthlyCost *float64
	Notes       string
}

func (uc *ManageSubscriptionsUseCase) Assign(ctx context.Context, in AssignProductInput) error {
	if in.ClientID <= 0 || in.ProductID <= 0 {
		return ErrInvalidSubscription
	}
	status := in.Status
	if status == "" {
		status = domain.SubscriptionActive
	}
	if !domain.ValidSubscriptionStatus(status) {
		return ErrInvalidSubscription
	}

	u, err := uc.users.GetClient(ctx, in.ClientID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	p, err := uc.products.Get(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	created, err := uc.subs.Assign(ctx, &domain.Subscription{
		ClientID:    in.ClientID,
		ProductID:   in.ProductID,
		Status:      status,
		MonthlyCost: in.MonthlyCost,
		Notes:       in.Notes,
	})
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadySubscribed
	}
	return nil
}

func (uc *ManageSubscriptionsUseCase) UpdateStatus(ctx context.Context, clientID, productID int64, status string) error {
	if !domain.ValidSubscriptionStatus(status) {
		return ErrInvalidSubscription
	}

	found, err := uc.subs.UpdateStatus(ctx, clientID, productID, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (uc *ManageSubscriptionsUseCase) Remove(ctx context.Context, clientID, productID int64) error {
	found, err := uc.subs.Remove(ctx, clientID, productID)
	if err != nil {
		return err
	}
	if !found {
		return ErrSubscriptionNotFound
	}
	return nil
}
