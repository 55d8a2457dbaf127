package poem

import (
	"context"

	"github.com/google/uuid"
)

// Repository là data access cho bài thơ trong database.
type Repository interface {
	// GetByAuthorAndSlug trả về ErrPoemNotFound khi không có row.
	GetByAuthorAndSlug(ctx context.Context, authorID uuid.UUID, slug string) (*Poem, error)
}
