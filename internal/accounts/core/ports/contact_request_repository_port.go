package ports

import (
	"context"

	"client-portal-service/internal/accounts/core/domain"
)

type ContactRequestRepositoryPort interface {
	// List returns contact requests, newest first. A non-empty status
	// restricts the listing to that workflow state.
	List(ctx context.Context, status string) ([]domain.ContactRequest, error)

	// Get returns (nil, nil) when no request has the id.
	Get(ctx context.Context, id int64) (*domain.ContactRequest, error)

	Create(ctx context.Context, cr *domain.ContactRequest) (int64, error)

	// UpdateWorkflow sets status and internal notes.
	UpdateWorkflow(ctx context.Context, id int64, status, notes string) (bool, error)

	Delete(ctx context.Context, id int64) (bool, error)

	// NewsletterEmails returns the addresses of senders who opted in,
	// for campaign mailings.
	NewsletterEmails(ctx context.Context) ([]string, error)
}
