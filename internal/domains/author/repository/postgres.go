package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"poemsite-backend/internal/domains/author"
)

// postgresRepository implements author.Repository trên pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, slug, bio, created_at, updated_at
        FROM authors
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	query := `
        SELECT id, name, slug, bio, created_at, updated_at
        FROM authors
        WHERE slug = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	return &a, nil
}

// PoemSummaries query bảng poems trực tiếp, mới nhất trước.
// NULLS LAST giữ đúng quy tắc "không rõ thời gian nằm cuối" ngay tại SQL.
func (r *postgresRepository) PoemSummaries(ctx context.Context, authorID uuid.UUID, limit int) ([]author.PoemSummary, error) {
	query := `
        SELECT title, slug, created_at
        FROM poems
        WHERE author_id = $1
        ORDER BY created_at DESC NULLS LAST
    `

	args := []interface{}{authorID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query poems of author: %w", err)
	}
	defer rows.Close()

	var poems []author.PoemSummary
	for rows.Next() {
		var p author.PoemSummary
		if err := rows.Scan(&p.Title, &p.Slug, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poem summary: %w", err)
		}
		poems = append(poems, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poem summaries: %w", err)
	}

	return poems, nil
}
