package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"poemsite-backend/internal/domains/poem"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) poem.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByAuthorAndSlug(ctx context.Context, authorID uuid.UUID, slug string) (*poem.Poem, error) {
	query := `
        SELECT id, title, slug, content, author_id, created_at
        FROM poems
        WHERE author_id = $1 AND slug = $2
    `

	var p poem.Poem
	err := r.pool.QueryRow(ctx, query, authorID, slug).Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.AuthorID,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, poem.ErrPoemNotFound
		}
		return nil, fmt.Errorf("failed to get poem by slug: %w", err)
	}

	return &p, nil
}
