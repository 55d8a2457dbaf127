package comment

import "context"

// Service xử lý nghiệp vụ bình luận: trim, truncate, default name.
type Service interface {
	// Create ghi bình luận. Content rỗng sau khi trim bị bỏ qua
	// trong im lặng: không row, không error (validation-light).
	Create(ctx context.Context, name, content string) error

	// List trả về bình luận mới nhất trước.
	List(ctx context.Context) ([]Comment, error)
}
