package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"poemsite-backend/internal/shared/middleware"
	"poemsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.LoadHTMLGlob("web/templates/*")

	// File tĩnh (ảnh tác giả, v.v.) từ poems root. gin.Static tự chặn
	// path traversal ra ngoài root.
	router.Static("/poem-files", c.Resolver.Root())

	router.GET("/", c.CommentHandler.Index)
	router.POST("/comment", c.CommentHandler.Create)

	router.GET("/api/authors", c.AuthorHandler.Summaries)

	authors := router.Group("/authors")
	{
		authors.GET("/:author_slug", c.AuthorHandler.Page)
		authors.GET("/:author_slug/:poem_slug", c.PoemHandler.Page)
	}

	router.GET("/healthz", healthCheckHandler(c))

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
