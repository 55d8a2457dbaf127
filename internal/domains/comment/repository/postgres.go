package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"poemsite-backend/internal/domains/comment"
	"poemsite-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

// Insert dùng một write transaction ngắn cho mỗi bình luận.
func (r *postgresRepository) Insert(ctx context.Context, name, content string) (*comment.Comment, error) {
	query := `
        INSERT INTO comments (name, content)
        VALUES ($1, $2)
        RETURNING id, name, content, created_at
    `

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*comment.Comment, error) {
		var c comment.Comment
		err := tx.QueryRow(ctx, query, name, content).Scan(
			&c.ID,
			&c.Name,
			&c.Content,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert comment: %w", err)
		}
		return &c, nil
	})
}

func (r *postgresRepository) List(ctx context.Context) ([]comment.Comment, error) {
	query := `
        SELECT id, name, content, created_at
        FROM comments
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
