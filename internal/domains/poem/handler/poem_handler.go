package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"poemsite-backend/internal/domains/poem"
	"poemsite-backend/internal/shared/response"
)

type PoemHandler struct {
	service poem.Service
}

func NewPoemHandler(svc poem.Service) *PoemHandler {
	return &PoemHandler{service: svc}
}

// Page - GET /authors/:author_slug/:poem_slug?lang=vi|en
// lang mặc định "vi", giá trị lạ bị ép về "vi" trong service.
func (h *PoemHandler) Page(c *gin.Context) {
	authorSlug := c.Param("author_slug")
	poemSlug := c.Param("poem_slug")
	lang := c.DefaultQuery("lang", "vi")

	view, err := h.service.Page(c.Request.Context(), authorSlug, poemSlug, lang)
	if err != nil {
		if errors.Is(err, poem.ErrPoemNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.HTML(http.StatusOK, "poem.html", gin.H{
		"poem":        view,
		"content":     view.Content,
		"other_poems": view.OtherPoems,
	})
}
