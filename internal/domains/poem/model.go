package poem

import (
	"time"

	"github.com/google/uuid"
)

// Poem là bản ghi trong database. Giống Author, một bài thơ cũng có thể
// chỉ tồn tại trên filesystem.
type Poem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Slug      string     `json:"slug" db:"slug"`
	Content   string     `json:"content" db:"content"`
	AuthorID  uuid.UUID  `json:"author_id" db:"author_id"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// SidebarItem là một entry trong danh sách "bài khác" của trang bài thơ.
type SidebarItem struct {
	Slug  string
	Title string
}

// PageView là dữ liệu trang bài thơ, shape cố định cho template.
type PageView struct {
	AuthorName     string
	AuthorSlug     string
	Slug           string
	Title          string
	Lang           string
	CreatedAt      *time.Time
	Content        string
	AvailableLangs []string
	OtherPoems     []SidebarItem
}

// HasLang báo template biết ngôn ngữ nào thật sự có nội dung.
func (v *PageView) HasLang(lang string) bool {
	for _, l := range v.AvailableLangs {
		if l == lang {
			return true
		}
	}
	return false
}
