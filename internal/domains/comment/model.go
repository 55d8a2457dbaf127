package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Giới hạn độ dài. Input dài hơn bị cắt chứ không bị từ chối.
const (
	MaxNameLength    = 60
	MaxContentLength = 2000

	// DefaultName dùng khi khách không nhập tên.
	DefaultName = "Ẩn danh"
)

// Comment là bình luận của khách, append-only.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateRequest là form POST /comment sau khi đã trim + truncate.
type CreateRequest struct {
	Name    string
	Content string
}

// Validate là invariant guard cuối trước khi insert: sau truncation các
// rule này luôn thoả, fail nghĩa là bug ở tầng trên.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, MaxContentLength)),
	)
}
