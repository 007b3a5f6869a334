package usecase

import (
	"context"
	"errors"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/ports"
)

var (
	ErrInvalidContact  = errors.New("invalid contact request")
	ErrContactNotFound = errors.New("contact request not found")
)

type ManageContactsUseCase struct {
	repo ports.ContactRequestRepositoryPort
}

func NewManageContactsUseCase(repo ports.ContactRequestRepositoryPort) *ManageContactsUseCase {
	return &ManageContactsUseCase{repo: repo}
}

type SubmitContactInput struct {
	Name       string
	Email      string
	Company    string
	Project    string
	Newsletter bool
}

// Submit records an inquiry from the public contact form. New requests
// always enter the workflow as pending.
func (uc *ManageContactsUseCase) Submit(ctx context.Context, in SubmitContactInput) (*domain.ContactRequest, error) {
	if in.Name == "" || in.Email == "" || in.Project == "" {
		return nil, ErrInvalidContact
	}

	cr := &domain.ContactRequest{
		Name:       in.Name,
		Email:      in.Email,
		Company:    in.Company,
		Project:    in.Project,
		Newsletter: in.Newsletter,
		Status:     domain.ContactPending,
	}
	id, err := uc.repo.Create(ctx, cr)
	if err != nil {
		return nil, err
	}
	cr.ID = id
	return cr, nil
}

func (uc *ManageContactsUseCase) List(ctx context.Context, status string) ([]domain.ContactRequest, error) {
	if status != "" && !domain.ValidContactStatus(status) {
		return nil, ErrInvalidContact
	}
	return uc.repo.List(ctx, status)
}

func (uc *ManageContactsUseCase) Get(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	cr, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, ErrContactNotFound
	}
	return cr, nil
}

type UpdateContactInput struct {
	ID     int64
	Status string
	Notes  string
}

func (uc *ManageContactsUseCase) Update(ctx context.Context, in UpdateContactInput) error {
	if in.ID <= 0 || !domain.ValidContactStatus(in.Status) {
		return ErrInvalidContact
	}

	found, err := uc.repo.UpdateWorkflow(ctx, in.ID, in.Status, in.Notes)
	if err != nil {
		return err
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}

func (uc *ManageContactsUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}

// NewsletterRecipients lists the opted-in addresses for a campaign send.
func (uc *ManageContactsUseCase) NewsletterRecipients(ctx context.Context) ([]string, error) {
	return uc.repo.NewsletterEmails(ctx)
}
