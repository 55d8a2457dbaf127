package poem

import "errors"

var (
	// ErrPoemNotFound: hoàn toàn không có nội dung ở cả DB lẫn filesystem.
	ErrPoemNotFound = errors.New("poem not found")
)
