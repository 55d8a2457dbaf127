package container

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"poemsite-backend/internal/config"
	"poemsite-backend/internal/content"
	"poemsite-backend/internal/infrastructure/database"

	"poemsite-backend/internal/domains/author"
	authorHandler "poemsite-backend/internal/domains/author/handler"
	authorRepo "poemsite-backend/internal/domains/author/repository"
	authorService "poemsite-backend/internal/domains/author/service"

	"poemsite-backend/internal/domains/poem"
	poemHandler "poemsite-backend/internal/domains/poem/handler"
	poemRepo "poemsite-backend/internal/domains/poem/repository"
	poemService "poemsite-backend/internal/domains/poem/service"

	"poemsite-backend/internal/domains/comment"
	commentHandler "poemsite-backend/internal/domains/comment/handler"
	commentRepo "poemsite-backend/internal/domains/comment/repository"
	commentService "poemsite-backend/internal/domains/comment/service"
)

// Container chứa toàn bộ dependencies của application.
// Thứ tự initialize: Config → Infrastructure → Repositories → Services
// → Handlers. Mọi thành phần là singleton trong app lifetime.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Resolver *content.Resolver

	AuthorRepo  author.Repository
	PoemRepo    poem.Repository
	CommentRepo comment.Repository

	AuthorService  author.Service
	PoemService    poem.Service
	CommentService comment.Service

	AuthorHandler  *authorHandler.AuthorHandler
	PoemHandler    *poemHandler.PoemHandler
	CommentHandler *commentHandler.CommentHandler
}

// NewContainer build dependency graph. Lỗi ở bất kỳ bước nào →
// application không start.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	c.DB = db

	// 3. Content tree. Tạo root nếu chưa có (giống lần chạy đầu tiên
	// trên máy mới); resolver tự nó không bao giờ ghi.
	if err := os.MkdirAll(cfg.Content.PoemsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create poems dir: %w", err)
	}
	c.Resolver = content.NewResolver(cfg.Content.PoemsDir)

	// 4. Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.PoemRepo = poemRepo.NewPostgresRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)

	// 5. Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Resolver)
	c.PoemService = poemService.NewPoemService(c.AuthorRepo, c.PoemRepo, c.Resolver)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)

	// 6. Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PoemHandler = poemHandler.NewPoemHandler(c.PoemService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService, c.AuthorService)

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("poems_dir", cfg.Content.PoemsDir).
		Msg("Container initialized")

	return c, nil
}

// Cleanup giải phóng resources lúc shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
