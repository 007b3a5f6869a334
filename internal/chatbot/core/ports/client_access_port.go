package ports

import "context"

// ClientAccessPort answers whether a client may use the chatbot views.
// Backed by the accounts subscription repository; wired in main.
type ClientAccessPort interface {
	HasActiveChatbot(ctx context.Context, clientID int64) (bool, error)
}

// ClientDirectoryPort lets the operator-facing report validate its target.
// Backed by the accounts user repository; wired in main.
type ClientDirectoryPort interface {
	ClientExists(ctx context.Context, clientID int64) (bool, error)
}
