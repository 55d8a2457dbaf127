package author

import "errors"

var (
	// ErrAuthorNotFound: không có dữ liệu từ bất kỳ nguồn nào (DB lẫn folder).
	// Thiếu file lẻ (bio, ảnh) không bao giờ là lỗi, chỉ degrade về nil.
	ErrAuthorNotFound = errors.New("author not found")
)
