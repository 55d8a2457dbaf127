package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository là data access cho tác giả trong database.
// Poem summaries của một tác giả được query trực tiếp từ bảng poems
// tại đây để tránh phụ thuộc chéo giữa domain.
type Repository interface {
	// List trả về toàn bộ tác giả trong DB.
	List(ctx context.Context) ([]Author, error)

	// GetBySlug trả về ErrAuthorNotFound khi không có row.
	GetBySlug(ctx context.Context, slug string) (*Author, error)

	// PoemSummaries trả về bài thơ của tác giả, mới nhất trước,
	// limit <= 0 nghĩa là không giới hạn.
	PoemSummaries(ctx context.Context, authorID uuid.UUID, limit int) ([]PoemSummary, error)
}
