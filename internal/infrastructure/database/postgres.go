package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	appconfig "loja_merch/internal/infrastructure/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	contact_email   TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	total_price     NUMERIC NOT NULL DEFAULT 0,
	items           JSONB NOT NULL,
	address         JSONB NOT NULL,
	proof           JSONB,
	tracking_text   TEXT NOT NULL DEFAULT '',
	tracking_images TEXT[] NOT NULL DEFAULT '{}',
	tracking_videos TEXT[] NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS orders_status_created_at_idx ON orders (status, created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS orders_user_created_at_idx ON orders (user_id, created_at DESC, id DESC);
ALTER TABLE orders ALTER COLUMN total_price TYPE NUMERIC;
`

// InitDB opens the Postgres order store and makes sure the orders table exists.
func InitDB(ctx context.Context, cfg appconfig.PostgresConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))
	return db, nil
}

// Migrate creates the orders table and its listing indexes. Totals are
// stored unscaled; rounding happens only when they are displayed.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ordersSchema); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}
	return nil
}
