package repository

import (
	"context"
	"fmt"

	"school_portal/internal/model"
)

// NewsRepository defines operations for news posts
type NewsRepository interface {
	FindAll(ctx context.Context) ([]model.News, error)
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, news *model.News) error
	Delete(ctx context.Context, id int64) error
}

type newsRepository struct {
	db DB
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) FindAll(ctx context.Context) ([]model.News, error) {
	sql := `SELECT id, title, content, created_at, updated_at FROM news ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	items := []model.News{}
	for rows.Next() {
		var n model.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}
	return items, nil
}

func (r *newsRepository) Create(ctx context.Context, n *model.News) error {
	sql := `INSERT INTO news (title, content) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	if err := r.db.QueryRow(ctx, sql, n.Title, n.Content).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

// Update rewrites title and content and always bumps updated_at
func (r *newsRepository) Update(ctx context.Context, n *model.News) error {
	sql := `UPDATE news SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, sql, n.Title, n.Content, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}
	return nil
}
