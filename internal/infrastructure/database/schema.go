package database

import (
	"context"
	"fmt"
)

// Schema bootstrap chạy lúc khởi động, idempotent. Authors và poems được
// tạo bởi quy trình quản trị bên ngoài; service này chỉ ghi vào comments.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS authors (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL UNIQUE,
	bio TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS poems (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	slug TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	author_id UUID NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (author_id, slug)
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(60) NOT NULL DEFAULT 'Ẩn danh',
	content VARCHAR(2000) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema tạo các bảng nếu chưa tồn tại.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
