package ports

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
)

type SubscriptionRepositoryPort interface {
	// ListByClient joins the product catalog; all statuses included.
	ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)

	// ListActiveByClient returns only active subscriptions, for the client
	// dashboard.
	ListActiveByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)

	// Assign inserts a subscription; created=false when the (client,
	// product) pair already exists.
	Assign(ctx context.Context, sub *domain.Subscription) (created bool, err error)

	UpdateStatus(ctx context.Context, clientID, productID int64, status string) (bool, error)
	Remove(ctx context.Context, clientID, productID int64) (bool, error)

	// HasActiveChatbot reports whether the client holds an active
	// subscription to a chatbot-type product.
	HasActiveChatbot(ctx context.Context, clientID int64) (bool, error)
}
