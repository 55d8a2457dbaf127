package author

import (
	"time"

	"github.com/google/uuid"
)

// Author là bản ghi trong database. Tác giả cũng có thể tồn tại chỉ trên
// filesystem; khi đó không có Author entity mà chỉ có view tổng hợp.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Bio       string    `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Nguồn của một poem summary trong trang tác giả.
const (
	SourceDB   = "db"
	SourceFile = "file"
)

// Ref là một entry trong danh sách tác giả đã merge (database ∪ folder).
type Ref struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PoemSummary chuẩn hoá một bài thơ về cùng một shape bất kể nguồn.
type PoemSummary struct {
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	CreatedAt *time.Time `json:"created_at"`
	Source    string     `json:"source,omitempty"`
}

// Summary là một entry của GET /api/authors.
type Summary struct {
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Poems    []PoemSummary `json:"poems"`
	Bio      *string       `json:"bio"`
	ImageURL *string       `json:"image_url"`
}

// PageView là dữ liệu trang tác giả: record type cố định thay cho
// object gắn field động.
type PageView struct {
	Name     string
	Slug     string
	Bio      *string
	ImageURL *string
	Poems    []PoemSummary
}
