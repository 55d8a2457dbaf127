package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"poemsite-backend/internal/domains/author"
	"poemsite-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Summaries - GET /api/authors
// Trả về mảng JSON thuần (không envelope) theo shape đã công bố:
// [{name, slug, poems, bio, image_url}].
func (h *AuthorHandler) Summaries(c *gin.Context) {
	summaries, err := h.service.Summaries(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Page - GET /authors/:author_slug
func (h *AuthorHandler) Page(c *gin.Context) {
	slug := c.Param("author_slug")

	view, err := h.service.Page(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.HTML(http.StatusOK, "author.html", gin.H{
		"author": view,
		"poems":  view.Poems,
	})
}
