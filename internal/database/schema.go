package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables are created at startup, mirroring the service's bootstrap step.
// There is no migration machinery; the DDL is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		status TEXT NOT NULL,
		total_price NUMERIC(12, 2) NOT NULL CHECK (total_price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders (id),
		product_id BIGINT NOT NULL REFERENCES products (id),
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	)`,
}

// EnsureSchema creates the four entity tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *service) EnsureSchema(ctx context.Context) error {
	return EnsureSchema(ctx, s.db)
}
