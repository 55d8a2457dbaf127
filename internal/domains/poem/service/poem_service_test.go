package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemsite-backend/internal/content"
	"poemsite-backend/internal/domains/author"
	"poemsite-backend/internal/domains/poem"
	"poemsite-backend/internal/domains/poem/service"
)

type fakeAuthorRepo struct {
	authors []author.Author
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]author.Author, error) {
	return f.authors, nil
}

func (f *fakeAuthorRepo) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	for i := range f.authors {
		if f.authors[i].Slug == slug {
			return &f.authors[i], nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) PoemSummaries(ctx context.Context, authorID uuid.UUID, limit int) ([]author.PoemSummary, error) {
	return nil, nil
}

type fakePoemRepo struct {
	poems []poem.Poem
}

func (f *fakePoemRepo) GetByAuthorAndSlug(ctx context.Context, authorID uuid.UUID, slug string) (*poem.Poem, error) {
	for i := range f.poems {
		if f.poems[i].AuthorID == authorID && f.poems[i].Slug == slug {
			return &f.poems[i], nil
		}
	}
	return nil, poem.ErrPoemNotFound
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func newService(authors *fakeAuthorRepo, poems *fakePoemRepo, root string) poem.Service {
	return service.NewPoemService(authors, poems, content.NewResolver(root))
}

func TestPageFileOnlyPoem(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "xuan-dieu", "mua-thu", "Mua_Thu_vi.txt"), "Lá vàng rơi")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "xuan-dieu", "mua-thu", "vi")
	require.NoError(t, err)

	assert.Equal(t, "Mua Thu", page.Title)
	assert.Equal(t, "Lá vàng rơi", page.Content)
	assert.Equal(t, "Xuan Dieu", page.AuthorName)
	assert.Equal(t, "vi", page.Lang)
	assert.Equal(t, []string{"vi"}, page.AvailableLangs)
}

func TestPageDBTitleWinsOverFileTitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "xuan-dieu", "mua-thu", "Khac_Han_vi.txt"), "nội dung")

	authorID := uuid.New()
	authors := &fakeAuthorRepo{authors: []author.Author{
		{ID: authorID, Name: "Xuân Diệu", Slug: "xuan-dieu"},
	}}
	poems := &fakePoemRepo{poems: []poem.Poem{
		{ID: uuid.New(), AuthorID: authorID, Slug: "mua-thu", Title: "Mùa Thu Tới", CreatedAt: ts("2021-05-01T00:00:00Z")},
	}}

	svc := newService(authors, poems, root)

	page, err := svc.Page(context.Background(), "xuan-dieu", "mua-thu", "vi")
	require.NoError(t, err)

	assert.Equal(t, "Mùa Thu Tới", page.Title)
	assert.Equal(t, "Xuân Diệu", page.AuthorName)
	// CreatedAt lấy từ DB khi có.
	assert.Equal(t, ts("2021-05-01T00:00:00Z"), page.CreatedAt)
	// Content luôn từ file.
	assert.Equal(t, "nội dung", page.Content)
}

func TestPageTitleFallsBackToSlug(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "bai-khong-ten", "vi.txt"), "x")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "a", "bai-khong-ten", "vi")
	require.NoError(t, err)

	assert.Equal(t, "Bai Khong Ten", page.Title)
}

func TestPageUnknownLangCoercedToVI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "Tho_vi.txt"), "tiếng Việt")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "a", "b", "fr")
	require.NoError(t, err)

	assert.Equal(t, "vi", page.Lang)
	assert.Equal(t, "tiếng Việt", page.Content)
}

func TestPageBilingual(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	writeFile(t, filepath.Join(dir, "Mua Thu_vi.txt"), "A")
	writeFile(t, filepath.Join(dir, "Autumn_en.txt"), "B")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	vi, err := svc.Page(context.Background(), "a", "b", "vi")
	require.NoError(t, err)
	assert.Equal(t, "A", vi.Content)
	assert.Equal(t, "Mua Thu", vi.Title)
	assert.Equal(t, []string{"vi", "en"}, vi.AvailableLangs)
	assert.True(t, vi.HasLang("en"))

	en, err := svc.Page(context.Background(), "a", "b", "en")
	require.NoError(t, err)
	assert.Equal(t, "B", en.Content)
	assert.Equal(t, "Autumn", en.Title)
}

func TestPageRequestedLangMissingStillRenders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "Tho_vi.txt"), "chỉ tiếng Việt")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "a", "b", "en")
	require.NoError(t, err)

	assert.Equal(t, "en", page.Lang)
	assert.Equal(t, "", page.Content)
	assert.Equal(t, []string{"vi"}, page.AvailableLangs)
	assert.False(t, page.HasLang("en"))
}

func TestPageEmptyFileNotCountedAsAvailable(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	writeFile(t, filepath.Join(dir, "Tho_vi.txt"), "nội dung")
	writeFile(t, filepath.Join(dir, "Empty_en.txt"), "   \n")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "a", "b", "vi")
	require.NoError(t, err)

	assert.Equal(t, []string{"vi"}, page.AvailableLangs)
}

func TestPageNotFoundWhenNoContentAnywhere(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "trong"), 0o755))

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	_, err := svc.Page(context.Background(), "a", "trong", "vi")
	assert.ErrorIs(t, err, poem.ErrPoemNotFound)
}

func TestPageDBContentAloneSatisfiesExistence(t *testing.T) {
	root := t.TempDir()

	authorID := uuid.New()
	authors := &fakeAuthorRepo{authors: []author.Author{
		{ID: authorID, Name: "A", Slug: "a"},
	}}
	poems := &fakePoemRepo{poems: []poem.Poem{
		{ID: uuid.New(), AuthorID: authorID, Slug: "chi-db", Title: "Chỉ DB", Content: "trong database"},
	}}

	svc := newService(authors, poems, root)

	page, err := svc.Page(context.Background(), "a", "chi-db", "vi")
	require.NoError(t, err)

	assert.Equal(t, "Chỉ DB", page.Title)
	// File không có nên content trang rỗng, template tự hiển thị fallback.
	assert.Equal(t, "", page.Content)
	assert.Empty(t, page.AvailableLangs)
}

func TestPageSidebarExcludesCurrentSortedByTitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "hien-tai", "vi.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "z-bai", "Zz_vi.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "a-bai", "Aa_vi.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "tieu_su", "tieu_su.txt"), "bio")

	svc := newService(&fakeAuthorRepo{}, &fakePoemRepo{}, root)

	page, err := svc.Page(context.Background(), "a", "hien-tai", "vi")
	require.NoError(t, err)

	require.Len(t, page.OtherPoems, 2)
	assert.Equal(t, "Aa", page.OtherPoems[0].Title)
	assert.Equal(t, "Zz", page.OtherPoems[1].Title)
}
