package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

var (
	ErrInvalidUser   = errors.New("invalid user")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
)

type ManageUsersUseCase struct {
	repo ports.UserRepositoryPort

	newTenantID func() string
}

func NewManageUsersUseCase(repo ports.UserRepositoryPort) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		repo:        repo,
		newTenantID: uuid.NewString,
	}
}

func (uc *ManageUsersUseCase) List(ctx context.Context, search string) ([]domain.User, error) {
	return uc.repo.ListClients(ctx, search)
}

func (uc *ManageUsersUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type CreateUserInput struct {
	Username    string
	Email       string
	CompanyName string
	Phone       string
}

func (uc *ManageUsersUseCase) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" {
		return nil, ErrInvalidUser
	}

	taken, err := uc.repo.UsernameTaken(ctx, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = uc.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	u := &domain.User{
		Username:    in.Username,
		Email:       in.Email,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		TenantID:    uc.newTenantID(),
		IsClient:    true,
		IsActive:    true,
	}

	id, err := uc.repo.CreateClient(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

type UpdateUserInput struct {
	ID          int64
	Username    string
	Email       string
	CompanyName string
	Phone       string
	IsActive    bool
	WebsiteURL  string
	Notes       string
}

func (uc *ManageUsersUseCase) Update(ctx context.Context, in UpdateUserInput) error {
	if in.ID <= 0 || in.Username == "" || in.Email == "" {
		return ErrInvalidUser
	}

	taken, err := uc.repo.UsernameTaken(ctx, in.Username, in.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = uc.repo.EmailTaken(ctx, in.Email, in.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	found, err := uc.repo.UpdateClient(ctx, &domain.User{
		ID:          in.ID,
		Username:    in.Username,
		Email:       in.Email,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		IsActive:    in.IsActive,
		WebsiteURL:  in.WebsiteURL,
		Notes:       in.Notes,
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

func (uc *ManageUsersUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.DeleteClient(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}
