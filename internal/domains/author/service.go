package author

import "context"

// Service là merge layer cho tác giả: hợp nhất record database với
// thư mục phát hiện trên filesystem thành một danh sách duy nhất.
type Service interface {
	// MergedList: DB authors ∪ folder authors, dedupe theo slug
	// (DB thắng), sort ascending theo display name.
	MergedList(ctx context.Context) ([]Ref, error)

	// Summaries backs GET /api/authors: mỗi tác giả kèm tối đa 3 bài thơ,
	// bio và image_url từ thư mục tiểu sử.
	Summaries(ctx context.Context) ([]Summary, error)

	// Page trả về dữ liệu trang tác giả. ErrAuthorNotFound khi union
	// poems rỗng VÀ không có DB row.
	Page(ctx context.Context, slug string) (*PageView, error)
}
