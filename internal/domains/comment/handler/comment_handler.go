package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"poemsite-backend/internal/domains/author"
	"poemsite-backend/internal/domains/comment"
	"poemsite-backend/internal/shared/response"
)

// CommentHandler phục vụ trang chủ (bình luận + danh sách tác giả đã merge)
// và form gửi bình luận.
type CommentHandler struct {
	comments comment.Service
	authors  author.Service
}

func NewCommentHandler(comments comment.Service, authors author.Service) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		authors:  authors,
	}
}

// Index - GET /
func (h *CommentHandler) Index(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	authors, err := h.authors.MergedList(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"comments": comments,
		"authors":  authors,
	})
}

// Create - POST /comment
// Content rỗng bị bỏ qua nhưng vẫn redirect y hệt thành công,
// khách không bao giờ thấy lỗi validation.
func (h *CommentHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	content := c.PostForm("content")

	if err := h.comments.Create(c.Request.Context(), name, content); err != nil {
		log.Error().Err(err).Msg("Failed to create comment")
		response.InternalServerError(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/#binhluan")
}
