package poem

import "context"

// Service là merge layer cho trang bài thơ.
type Service interface {
	// Page gộp DB row (nếu có) với file trên disk.
	// lang ngoài {vi, en} bị ép về "vi". ErrPoemNotFound khi không có
	// nội dung ở bất kỳ ngôn ngữ nào từ bất kỳ nguồn nào.
	Page(ctx context.Context, authorSlug, poemSlug, lang string) (*PageView, error)
}
