// Package content là Content Resolver: đọc cây thư mục
// poem/<author-slug>/<poem-slug>/ để tìm tiểu sử tác giả và file bài thơ.
//
// Toàn bộ package là read-only và không bao giờ trả error cho trường hợp
// thiếu file/thư mục: "không có" là một giá trị bình thường (nil / chuỗi rỗng),
// không phải một lỗi.
package content

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"poemsite-backend/internal/shared/utils"
)

// Ngôn ngữ được hỗ trợ cho nội dung bài thơ.
const (
	LangVI = "vi"
	LangEN = "en"
)

// Languages liệt kê theo thứ tự ưu tiên hiển thị.
var Languages = []string{LangVI, LangEN}

// NormalizeLang ép mọi giá trị lạ về ngôn ngữ mặc định "vi".
func NormalizeLang(lang string) string {
	lang = strings.ToLower(lang)
	if lang != LangVI && lang != LangEN {
		return LangVI
	}
	return lang
}

const bioFileName = "tieu_su.txt"

// Các cách viết được chấp nhận cho thư mục tiểu sử (so khớp case-insensitive).
var profileDirNames = map[string]struct{}{
	"tiểu sử": {},
	"tieu su": {},
	"tieu_su": {},
	"tieu-su": {},
}

// <base>_vi.txt / <base>_en.txt, suffix case-insensitive.
var langFileRe = regexp.MustCompile(`(?i)^(.+)_(vi|en)\.txt$`)

var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// Profile là kết quả đọc thư mục tiểu sử của một tác giả.
// ImageRel là đường dẫn tương đối so với poems root, dùng dấu "/".
type Profile struct {
	Bio      *string
	ImageRel *string
}

// PoemFiles là kết quả nhận diện file trong folder một bài thơ.
// Paths/Titles chỉ chứa key cho ngôn ngữ thật sự tìm thấy; file fallback
// vi.txt/en.txt có path nhưng không có title.
type PoemFiles struct {
	Paths     map[string]string
	Titles    map[string]string
	CreatedAt *time.Time
}

// FolderPoem là một bài thơ phát hiện từ filesystem (một subfolder).
type FolderPoem struct {
	Slug      string
	Title     string
	CreatedAt *time.Time
}

// Resolver scan cây thư mục thơ, root cố định lúc khởi tạo.
type Resolver struct {
	root string
}

func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Root trả về poems root, dùng cho route phục vụ file tĩnh.
func (r *Resolver) Root() string {
	return r.root
}

// IsProfileDir kiểm tra tên thư mục có phải thư mục tiểu sử không.
func IsProfileDir(name string) bool {
	_, ok := profileDirNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// AuthorDirs liệt kê các thư mục cấp một dưới poems root. Mỗi thư mục
// là một author slug tiềm năng cho merge layer.
func (r *Resolver) AuthorDirs() []string {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs
}

// AuthorProfile đọc tiểu sử (tieu_su.txt) và ảnh đầu tiên trong thư mục
// tiểu sử tại <root>/<authorSlug>/. Trả về nil cho phần không tìm thấy.
func (r *Resolver) AuthorProfile(authorSlug string) Profile {
	dir := filepath.Join(r.root, authorSlug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Profile{}
	}

	for _, e := range entries {
		if !e.IsDir() || !IsProfileDir(e.Name()) {
			continue
		}

		var profile Profile

		if bio := ReadLanguageContent(filepath.Join(dir, e.Name(), bioFileName)); bio != "" {
			profile.Bio = &bio
		}

		// Ảnh đầu tiên hợp lệ theo thứ tự liệt kê của filesystem.
		if subEntries, err := os.ReadDir(filepath.Join(dir, e.Name())); err == nil {
			for _, img := range subEntries {
				if img.IsDir() {
					continue
				}
				if _, ok := imageExts[strings.ToLower(filepath.Ext(img.Name()))]; ok {
					rel := path.Join(authorSlug, e.Name(), img.Name())
					profile.ImageRel = &rel
					break
				}
			}
		}

		return profile
	}

	return Profile{}
}

// PoemFiles nhận diện file trong folder <root>/<authorSlug>/<poemSlug>/:
//
//   - <base>_vi.txt / <base>_en.txt: path + title lấy từ base
//     (base được phép khác nhau giữa hai ngôn ngữ)
//   - fallback vi.txt / en.txt khi không có file pattern-matched: chỉ có path
//
// CreatedAt = mtime mới nhất trong các file tìm thấy; nếu không có file nào
// thì lấy mtime của chính folder; folder không tồn tại → nil.
func (r *Resolver) PoemFiles(authorSlug, poemSlug string) PoemFiles {
	out := PoemFiles{
		Paths:  map[string]string{},
		Titles: map[string]string{},
	}

	dir := filepath.Join(r.root, authorSlug, poemSlug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return out
	}

	var mtimes []time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := langFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}

		lang := strings.ToLower(m[2])
		base := strings.TrimSpace(m[1])

		out.Paths[lang] = filepath.Join(dir, e.Name())
		out.Titles[lang] = utils.TitleFromFileBase(base)

		if info, err := e.Info(); err == nil {
			mtimes = append(mtimes, info.ModTime())
		}
	}

	for _, lang := range Languages {
		if _, ok := out.Paths[lang]; ok {
			continue
		}
		fallback := filepath.Join(dir, lang+".txt")
		if info, err := os.Stat(fallback); err == nil && !info.IsDir() {
			out.Paths[lang] = fallback
			mtimes = append(mtimes, info.ModTime())
		}
	}

	if len(mtimes) > 0 {
		latest := mtimes[0]
		for _, t := range mtimes[1:] {
			if t.After(latest) {
				latest = t
			}
		}
		out.CreatedAt = &latest
	} else if info, err := os.Stat(dir); err == nil {
		t := info.ModTime()
		out.CreatedAt = &t
	}

	return out
}

// ListPoemFolders đọc danh sách bài thơ của một tác giả: mỗi bài là một
// subfolder (trừ thư mục tiểu sử). Title ưu tiên vi → en → derive từ slug,
// nên folder rỗng vẫn được liệt kê. Kết quả sort mới nhất trước,
// entry không có thời gian nằm cuối.
func (r *Resolver) ListPoemFolders(authorSlug string) []FolderPoem {
	entries, err := os.ReadDir(filepath.Join(r.root, authorSlug))
	if err != nil {
		return nil
	}

	var poems []FolderPoem
	for _, e := range entries {
		if !e.IsDir() || IsProfileDir(e.Name()) {
			continue
		}

		files := r.PoemFiles(authorSlug, e.Name())
		title := files.Titles[LangVI]
		if title == "" {
			title = files.Titles[LangEN]
		}
		if title == "" {
			title = utils.DisplayNameFromSlug(e.Name())
		}

		poems = append(poems, FolderPoem{
			Slug:      e.Name(),
			Title:     title,
			CreatedAt: files.CreatedAt,
		})
	}

	utils.SortNewestFirst(poems, func(p FolderPoem) *time.Time { return p.CreatedAt })
	return poems
}

// PoemContent đọc nội dung bài thơ theo ngôn ngữ. File không tồn tại
// hoặc rỗng → "" để tầng trên tự quyết định hiển thị gì.
func (r *Resolver) PoemContent(authorSlug, poemSlug, lang string) string {
	files := r.PoemFiles(authorSlug, poemSlug)
	return ReadLanguageContent(files.Paths[lang])
}

// ReadLanguageContent đọc một file text UTF-8: loại BOM nếu có, trim
// whitespace đầu/cuối. Path rỗng, file thiếu hay file rỗng đều trả "".
func ReadLanguageContent(path string) string {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	return strings.TrimSpace(text)
}
