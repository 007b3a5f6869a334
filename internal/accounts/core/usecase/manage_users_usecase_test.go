package usecase_test

import (
	"context"
	"errors"
	"testing"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/usecase"
)

// Fake repository implementing UserRepositoryPort
type fakeUserRepo struct {
	ListClientsFn   func(ctx context.Context, search string) ([]domain.User, error)
	GetClientFn     func(ctx context.Context, id int64) (*domain.User, error)
	CreateClientFn  func(ctx context.Context, u *domain.User) (int64, error)
	UpdateClientFn  func(ctx context.Context, u *domain.User) (bool, error)
	DeleteClientFn  func(ctx context.Context, id int64) (bool, error)
	UsernameTakenFn func(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTakenFn    func(ctx context.Context, email string, excludeID int64) (bool, error)
	CountClientsFn  func(ctx context.Context) (int64, int64, error)
	RecentClientsFn func(ctx context.Context, limit int) ([]domain.User, error)
}

func (f *fakeUserRepo) ListClients(ctx context.Context, search string) ([]domain.User, error) {
	if f.ListClientsFn != nil {
		return f.ListClientsFn(ctx, search)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetClient(ctx context.Context, id int64) (*domain.User, error) {
	if f.GetClientFn != nil {
		return f.GetClientFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateClient(ctx context.Context, u *domain.User) (int64, error) {
	if f.CreateClientFn != nil {
		return f.CreateClientFn(ctx, u)
	}
	return 1, nil
}

func (f *fakeUserRepo) UpdateClient(ctx context.Context, u *domain.User) (bool, error) {
	if f.UpdateClientFn != nil {
		return f.UpdateClientFn(ctx, u)
	}
	return true, nil
}

func (f *fakeUserRepo) DeleteClient(ctx context.Context, id int64) (bool, error) {
	if f.DeleteClientFn != nil {
		return f.DeleteClientFn(ctx, id)
	}
	return true, nil
}

func (f *fakeUserRepo) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	if f.UsernameTakenFn != nil {
		return f.UsernameTakenFn(ctx, username, excludeID)
	}
	return false, nil
}

func (f *fakeUserRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	if f.EmailTakenFn != nil {
		return f.EmailTakenFn(ctx, email, excludeID)
	}
	return false, nil
}

func (f *fakeUserRepo) CountClients(ctx context.Context) (int64, int64, error) {
	if f.CountClientsFn != nil {
		return f.CountClientsFn(ctx)
	}
	return 0, 0, nil
}

func (f *fakeUserRepo) RecentClients(ctx context.Context, limit int) ([]domain.User, error) {
	if f.RecentClientsFn != nil {
		return f.RecentClientsFn(ctx, limit)
	}
	return nil, nil
}

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

func TestCreateUser_Success(t *testing.T) {
	var stored *domain.User

	repo := &fakeUserRepo{
		CreateClientFn: func(ctx context.Context, u *domain.User) (int64, error) {
			stored = u
			return 7, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	u, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Username:    "acme",
		Email:       "ops@acme.test",
		CompanyName: "ACME SRL",
		Phone:       "+5491100000001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.ID != 7 {
		t.Errorf("expected id 7, got %d", u.ID)
	}
	if stored == nil {
		t.Fatalf("repository CreateClient was not called")
	}
	if !stored.IsClient || !stored.IsActive {
		t.Errorf("new clients must be active client accounts: %+v", stored)
	}
	if stored.TenantID == "" {
		t.Errorf("expected a generated tenant id")
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo := &fakeUserRepo{
		UsernameTakenFn: func(ctx context.Context, username string, excludeID int64) (bool, error) {
			return true, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Username: "acme",
		Email:    "ops@acme.test",
	})
	if !errors.Is(err, usecase.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo := &fakeUserRepo{
		EmailTakenFn: func(ctx context.Context, email string, excludeID int64) (bool, error) {
			return true, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{
		Username: "acme",
		Email:    "ops@acme.test",
	})
	if !errors.Is(err, usecase.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	uc := usecase.NewManageUsersUseCase(&fakeUserRepo{})

	_, err := uc.Create(context.Background(), usecase.CreateUserInput{Username: "acme"})
	if !errors.Is(err, usecase.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

// ------------------------------------------------------------
// UPDATE / DELETE / GET
// ------------------------------------------------------------

func TestUpdateUser_ExcludesSelfFromUniqueness(t *testing.T) {
	var usernameExclude, emailExclude int64

	repo := &fakeUserRepo{
		UsernameTakenFn: func(ctx context.Context, username string, excludeID int64) (bool, error) {
			usernameExclude = excludeID
			return false, nil
		},
		EmailTakenFn: func(ctx context.Context, email string, excludeID int64) (bool, error) {
			emailExclude = excludeID
			return false, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	err := uc.Update(context.Background(), usecase.UpdateUserInput{
		ID:       9,
		Username: "acme",
		Email:    "ops@acme.test",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usernameExclude != 9 || emailExclude != 9 {
		t.Errorf("uniqueness checks must exclude the user itself, got %d/%d", usernameExclude, emailExclude)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		UpdateClientFn: func(ctx context.Context, u *domain.User) (bool, error) {
			return false, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	err := uc.Update(context.Background(), usecase.UpdateUserInput{
		ID:       9,
		Username: "acme",
		Email:    "ops@acme.test",
	})
	if !errors.Is(err, usecase.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		DeleteClientFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}

	uc := usecase.NewManageUsersUseCase(repo)

	if err := uc.Delete(context.Background(), 99); !errors.Is(err, usecase.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	uc := usecase.NewManageUsersUseCase(&fakeUserRepo{})

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, usecase.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
