package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by repositories.
// Each call acquires a pooled connection and releases it before returning.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles every repository backed by the same pool.
type Repositories struct {
	Messages MessageRepository
	Contacts ContactRepository
	News     NewsRepository
	Likes    LikeRepository
}

func NewRepositories(db DB) *Repositories {
	return &Repositories{
		Messages: NewMessageRepository(db),
		Contacts: NewContactRepository(db),
		News:     NewNewsRepository(db),
		Likes:    NewLikeRepository(db),
	}
}
