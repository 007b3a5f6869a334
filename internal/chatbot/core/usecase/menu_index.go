package usecase

import (
	"context"

	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
)

// MenuIndex maps menu id to its full definition while preserving the fetch
// order, so that first-match resolution stays deterministic.
type MenuIndex struct {
	byID  map[string]domain.Menu
	order []domain.Menu
}

// BuildMenuIndex loads every menu definition through the session. No
// filtering; a connectivity error propagates to the caller.
func BuildMenuIndex(ctx context.Context, s ports.ChatbotSession) (*MenuIndex, error) {
	menus, err := s.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	idx := &MenuIndex{
		byID:  make(map[string]domain.Menu, len(menus)),
		order: menus,
	}
	for _, m := range menus {
		idx.byID[m.ID] = m
	}
	return idx, nil
}

func (i *MenuIndex) Get(id string) (domain.Menu, bool) {
	m, ok := i.byID[id]
	return m, ok
}

// Menus returns the definitions in the order they were fetched.
func (i *MenuIndex) Menus() []domain.Menu {
	return i.order
}

func (i *MenuIndex) Len() int {
	return len(i.byID)
}
