package ports

import (
	"context"
	"errors"

	"client-portal-service/internal/chatbot/core/domain"
)

// ErrStoreUnavailable is the single failure kind for any connectivity
// problem against the document store (timeout, auth, network). Adapters
// wrap their errors with it; callers test with errors.Is.
var ErrStoreUnavailable = errors.New("chatbot store unavailable")

// ChatbotStorePort hands out a per-request session against the external
// document store. A session must be closed on every exit path; no retries
// are performed behind it.
type ChatbotStorePort interface {
	Connect(ctx context.Context) (ChatbotSession, error)
}

// ChatbotSession is one scoped connection to the chatbot collections.
type ChatbotSession interface {
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	ListInteractions(ctx context.Context) ([]domain.Interaction, error)

	// FindAnswer returns (nil, nil) when no answer document has the id.
	FindAnswer(ctx context.Context, id string) (*domain.Answer, error)

	// UpdateAnswer sets the answer text and returns the number of documents
	// modified (0 or 1; the id is expected to be unique).
	UpdateAnswer(ctx context.Context, id, text string) (int64, error)

	Close(ctx context.Context) error
}
