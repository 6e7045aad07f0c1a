package repository

import (
	"context"
	"errors"
	"fmt"

	"school_portal/internal/model"

	"github.com/jackc/pgx/v5"
)

// MessageRepository defines operations for chat messages and the admin set
type MessageRepository interface {
	FindRecent(ctx context.Context, limit int) ([]model.Message, error)
	FindByID(ctx context.Context, id int64) (*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
	GrantAdmin(ctx context.Context, userID int64, username string) error
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindRecent returns up to limit messages, newest first
func (r *messageRepository) FindRecent(ctx context.Context, limit int) ([]model.Message, error) {
	sql := `SELECT m.id, m.user_id, m.username, m.message, m.created_at, a.user_id IS NOT NULL AS is_admin
            FROM messages m
            LEFT JOIN admins a ON a.user_id = m.user_id
            ORDER BY m.created_at DESC, m.id DESC
            LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0, limit)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Username, &m.Message, &m.CreatedAt, &m.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}

// FindByID retrieves a message by its ID
func (r *messageRepository) FindByID(ctx context.Context, id int64) (*model.Message, error) {
	m := &model.Message{}
	sql := `SELECT id, user_id, username, message, created_at FROM messages WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&m.ID, &m.UserID, &m.Username, &m.Message, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find message by ID: %w", err)
	}
	return m, nil
}

// Create inserts a message and fills in the server assigned fields
func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	sql := `INSERT INTO messages (user_id, username, message) VALUES ($1, $2, $3)
            RETURNING id, created_at, EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`
	err := r.db.QueryRow(ctx, sql, m.UserID, m.Username, m.Message).Scan(&m.ID, &m.CreatedAt, &m.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// UpdateText overwrites the text of a message
func (r *messageRepository) UpdateText(ctx context.Context, id int64, text string) error {
	sql := `UPDATE messages SET message = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, text, id)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a message
func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM messages WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// GrantAdmin adds the user to the admin set. Granting twice is a no-op.
func (r *messageRepository) GrantAdmin(ctx context.Context, userID int64, username string) error {
	sql := `INSERT INTO admins (user_id, username) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, userID, username); err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}
	return nil
}
