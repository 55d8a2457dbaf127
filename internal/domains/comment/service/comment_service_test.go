package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemsite-backend/internal/domains/comment"
	"poemsite-backend/internal/domains/comment/service"
)

type fakeRepository struct {
	inserted []comment.Comment
}

func (f *fakeRepository) Insert(ctx context.Context, name, content string) (*comment.Comment, error) {
	c := comment.Comment{
		ID:        int64(len(f.inserted) + 1),
		Name:      name,
		Content:   content,
		CreatedAt: time.Now(),
	}
	f.inserted = append(f.inserted, c)
	return &c, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]comment.Comment, error) {
	return f.inserted, nil
}

func TestCreateBasic(t *testing.T) {
	repo := &fakeRepository{}
	svc := service.NewCommentService(repo)

	err := svc.Create(context.Background(), "Lan", "Bài thơ hay quá")
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Lan", repo.inserted[0].Name)
	assert.Equal(t, "Bài thơ hay quá", repo.inserted[0].Content)
}

func TestCreateEmptyNameBecomesAnonymous(t *testing.T) {
	repo := &fakeRepository{}
	svc := service.NewCommentService(repo)

	require.NoError(t, svc.Create(context.Background(), "   ", "nội dung"))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Ẩn danh", repo.inserted[0].Name)
}

func TestCreateWhitespaceContentDroppedSilently(t *testing.T) {
	repo := &fakeRepository{}
	svc := service.NewCommentService(repo)

	require.NoError(t, svc.Create(context.Background(), "Lan", "   \n\t  "))
	require.NoError(t, svc.Create(context.Background(), "Lan", ""))

	assert.Empty(t, repo.inserted)
}

func TestCreateTruncatesByRune(t *testing.T) {
	repo := &fakeRepository{}
	svc := service.NewCommentService(repo)

	longName := strings.Repeat("ẩ", comment.MaxNameLength+10)
	longContent := strings.Repeat("ộ", comment.MaxContentLength+50)

	require.NoError(t, svc.Create(context.Background(), longName, longContent))

	require.Len(t, repo.inserted, 1)
	assert.Len(t, []rune(repo.inserted[0].Name), comment.MaxNameLength)
	assert.Len(t, []rune(repo.inserted[0].Content), comment.MaxContentLength)
}

func TestCreateTrimsWhitespace(t *testing.T) {
	repo := &fakeRepository{}
	svc := service.NewCommentService(repo)

	require.NoError(t, svc.Create(context.Background(), "  Lan  ", "  nội dung  "))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Lan", repo.inserted[0].Name)
	assert.Equal(t, "nội dung", repo.inserted[0].Content)
}

func TestCreateRequestValidation(t *testing.T) {
	ok := comment.CreateRequest{Name: "Lan", Content: "hay"}
	assert.NoError(t, ok.Validate())

	tooLong := comment.CreateRequest{
		Name:    "Lan",
		Content: strings.Repeat("a", comment.MaxContentLength+1),
	}
	assert.Error(t, tooLong.Validate())

	empty := comment.CreateRequest{Name: "Lan", Content: ""}
	assert.Error(t, empty.Validate())
}
