package usecase

import (
	"context"
	"errors"
	"testing"

	"client-portal-service/internal/chatbot/core/domain"
)

type stubMenuSession struct {
	menus []domain.Menu
	err   error
}

func (s *stubMenuSession) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	return s.menus, s.err
}

func (s *stubMenuSession) ListInteractions(ctx context.Context) ([]domain.Interaction, error) {
	return nil, nil
}

func (s *stubMenuSession) FindAnswer(ctx context.Context, id string) (*domain.Answer, error) {
	return nil, nil
}

func (s *stubMenuSession) UpdateAnswer(ctx context.Context, id, text string) (int64, error) {
	return 0, nil
}

func (s *stubMenuSession) Close(ctx context.Context) error { return nil }

func TestBuildMenuIndex_PreservesFetchOrder(t *testing.T) {
	menus := []domain.Menu{
		{ID: "2", Submenu: "a"},
		{ID: "1", Submenu: "b"},
		{ID: "3", Submenu: domain.SubmenuDirect},
	}

	idx, err := BuildMenuIndex(context.Background(), &stubMenuSession{menus: menus})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if idx.Len() != 3 {
		t.Fatalf("expected 3 menus, got %d", idx.Len())
	}
	for i, m := range idx.Menus() {
		if m.ID != menus[i].ID {
			t.Fatalf("order lost at %d: got %q want %q", i, m.ID, menus[i].ID)
		}
	}

	got, ok := idx.Get("1")
	if !ok || got.Submenu != "b" {
		t.Fatalf("lookup by id failed: %+v ok=%v", got, ok)
	}
	if _, ok := idx.Get("missing"); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
}

func TestBuildMenuIndex_PropagatesError(t *testing.T) {
	wantErr := errors.New("no reachable servers")

	_, err := BuildMenuIndex(context.Background(), &stubMenuSession{err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
