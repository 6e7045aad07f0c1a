package service

import (
	"context"
	"errors"
	"fmt"

	"school_portal/internal/model"
	"school_portal/internal/repository"
	"school_portal/internal/utils"
)

var roleMessages = map[string]string{"oneof": "Role must be ученик, админ or учитель"}

// ContactService defines operations for the contact directory
type ContactService interface {
	ListContacts(ctx context.Context) ([]model.Contact, error)
	CreateContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error)
	UpdateContact(ctx context.Context, req model.UpdateContactRequest) error
	DeleteContact(ctx context.Context, id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts from repo: %w", err)
	}
	return contacts, nil
}

func (s *contactService) CreateContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error) {
	utils.TrimAll(&req.Name, &req.Phone, &req.Role)
	if err := validate(&req, "Name, phone and role required", roleMessages); err != nil {
		return nil, err
	}

	contact := &model.Contact{Name: req.Name, Phone: req.Phone, Role: req.Role}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}
	return contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, req model.UpdateContactRequest) error {
	utils.TrimAll(&req.Name, &req.Phone, &req.Role)
	if err := validate(&req, "ID, name, phone and role required", roleMessages); err != nil {
		return err
	}

	contact := &model.Contact{ID: req.ID, Name: req.Name, Phone: req.Phone, Role: req.Role}
	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to update contact in repo: %w", err)
	}
	return nil
}

func (s *contactService) DeleteContact(ctx context.Context, id int64) error {
	if id == 0 {
		return invalid("ID required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact in repo: %w", err)
	}
	return nil
}
