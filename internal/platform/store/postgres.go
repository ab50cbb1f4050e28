package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/shivsegv/campussetu/internal/platform/config"
)

// Postgres keeps the whole-collection write-through contract over SQL: a single
// table maps each collection key to its serialized payload.
type Postgres struct {
	db *sql.DB
}

const createCollectionsTable = `
CREATE TABLE IF NOT EXISTS collections (
    key        TEXT PRIMARY KEY,
    data       BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func NewPostgres(ctx context.Context) (*Postgres, error) {
	db, err := sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		return nil, fmt.Errorf("store.NewPostgres open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("store.NewPostgres ping: %w", err)
	}
	if _, err = db.ExecContext(ctx, createCollectionsTable); err != nil {
		return nil, fmt.Errorf("store.NewPostgres migrate: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := p.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store.Postgres.Get %q: %w", key, err)
	}
	return data, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO collections (key, data, updated_at) VALUES ($1, $2, now())
	          ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := p.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("store.Postgres.Set %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
