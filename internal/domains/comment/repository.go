package comment

import "context"

// Repository là data access cho bình luận.
type Repository interface {
	// Insert ghi một bình luận mới trong một write transaction.
	Insert(ctx context.Context, name, content string) (*Comment, error)

	// List trả về toàn bộ bình luận, mới nhất trước.
	List(ctx context.Context) ([]Comment, error)
}
