package usecase

import (
	"context"
	"errors"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrProductNameTaken = errors.New("a product with that name already exists")
	ErrProductNotFound  = errors.New("product not found")
)

type ManageProductsUseCase struct {
	repo ports.ProductRepositoryPort
}

func NewManageProductsUseCase(repo ports.ProductRepositoryPort) *ManageProductsUseCase {
	return &ManageProductsUseCase{repo: repo}
}

func (uc *ManageProductsUseCase) List(ctx context.Context, search string) ([]domain.Product, error) {
	return uc.repo.List(ctx, search)
}

type ProductInput struct {
	ID          int64 // ignored on create
	Name        string
	Type        string
	Description string
	Status      string
}

func (uc *ManageProductsUseCase) validate(in ProductInput) error {
	if in.Name == "" || !domain.ValidProductType(in.Type) {
		return ErrInvalidProduct
	}
	if in.Status != "" && !domain.ValidProductStatus(in.Status) {
		return ErrInvalidProduct
	}
	return nil
}

func (uc *ManageProductsUseCase) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrProductNameTaken
	}

	status := in.Status
	if status == "" {
		status = domain.ProductStatusActive
	}

	p := &domain.Product{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Status:      status,
	}
	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (uc *ManageProductsUseCase) Update(ctx context.Context, in ProductInput) error {
	if in.ID <= 0 {
		return ErrInvalidProduct
	}
	if err := uc.validate(in); err != nil {
		return err
	}

	taken, err := uc.repo.NameTaken(ctx, in.Name, in.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrProductNameTaken
	}

	status := in.Status
	if status == "" {
		status = domain.ProductStatusActive
	}

	found, err := uc.repo.Update(ctx, &domain.Product{
		ID:          in.ID,
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Status:      status,
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}

func (uc *ManageProductsUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}
