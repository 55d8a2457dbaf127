package service

import (
	"context"
	"fmt"
	"strings"

	"poemsite-backend/internal/domains/comment"
	"poemsite-backend/internal/shared/utils"
)

type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

// Create trim + truncate theo rune, tên rỗng thành "Ẩn danh".
// Content rỗng sau trim → drop im lặng, caller vẫn redirect như thành công.
func (s *commentService) Create(ctx context.Context, name, content string) error {
	name = utils.TruncateRunes(strings.TrimSpace(name), comment.MaxNameLength)
	if name == "" {
		name = comment.DefaultName
	}

	content = utils.TruncateRunes(strings.TrimSpace(content), comment.MaxContentLength)
	if content == "" {
		return nil
	}

	req := comment.CreateRequest{Name: name, Content: content}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid comment after normalization: %w", err)
	}

	if _, err := s.repo.Insert(ctx, req.Name, req.Content); err != nil {
		return err
	}

	return nil
}

func (s *commentService) List(ctx context.Context) ([]comment.Comment, error) {
	return s.repo.List(ctx)
}
