package usecase_test

import (
	"context"
	"errors"
	"testing"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/usecase"
)

func TestOverview_AggregatesCounters(t *testing.T) {
	var recentLimit int

	users := &fakeUserRepo{
		CountClientsFn: func(ctx context.Context) (int64, int64, error) {
			return 12, 9, nil
		},
		RecentClientsFn: func(ctx context.Context, limit int) ([]domain.User, error) {
			recentLimit = limit
			return []domain.User{{ID: 12, Username: "newest"}}, nil
		},
	}
	products := &fakeProductRepo{
		CountFn: func(ctx context.Context) (int64, int64, error) {
			return 6, 5, nil
		},
	}

	uc := usecase.NewGetOverviewUseCase(users, products)

	ov, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ov.TotalClients != 12 || ov.ActiveClients != 9 {
		t.Errorf("unexpected client counters: %+v", ov)
	}
	if ov.TotalProducts != 6 || ov.ActiveProducts != 5 {
		t.Errorf("unexpected product counters: %+v", ov)
	}
	if len(ov.RecentClients) != 1 || ov.RecentClients[0].Username != "newest" {
		t.Errorf("unexpected recent clients: %+v", ov.RecentClients)
	}
	if recentLimit != 5 {
		t.Errorf("expected recent clients limit 5, got %d", recentLimit)
	}
}

func TestOverview_PropagatesRepositoryErrors(t *testing.T) {
	wantErr := errors.New("connection refused")

	users := &fakeUserRepo{
		CountClientsFn: func(ctx context.Context) (int64, int64, error) {
			return 0, 0, wantErr
		},
	}

	uc := usecase.NewGetOverviewUseCase(users, &fakeProductRepo{})

	if _, err := uc.Execute(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
