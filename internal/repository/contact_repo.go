package repository

import (
	"context"
	"fmt"

	"school_portal/internal/model"
)

// ContactRepository defines operations for the contact directory
type ContactRepository interface {
	FindAll(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	db DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DB) ContactRepository {
	return &contactRepository{db: db}
}

// FindAll returns every contact, newest first
func (r *contactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	sql := `SELECT id, name, phone, role, created_at FROM contacts ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Role, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

// Create inserts a new contact
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (name, phone, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	if err := r.db.QueryRow(ctx, sql, c.Name, c.Phone, c.Role).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update modifies an existing contact
func (r *contactRepository) Update(ctx context.Context, c *model.Contact) error {
	sql := `UPDATE contacts SET name = $1, phone = $2, role = $3 WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, sql, c.Name, c.Phone, c.Role, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a contact. Deleting a missing id is not an error.
func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
