package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaguilard28/cv-areli/internal/config"
)

func NewPostgresPool(cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot create Postgres pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot connect Postgres: %w", err)
	}

	return pool, nil
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const appStateSchema = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	-- TEXT, not JSONB: current_version_id and current_theme are stored as
	-- bare strings, matching the exported snapshot layout.
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS audit_log (
	id          UUID PRIMARY KEY,
	topic       TEXT NOT NULL,
	event_type  TEXT NOT NULL,
	payload     JSONB NOT NULL DEFAULT '{}',
	occurred_at TIMESTAMPTZ NOT NULL
);
`

type postgresKV struct {
	db *pgxpool.Pool
}

// NewPostgresKV returns a KVStore over a single app_state table, one row per
// logical key, value stored as JSONB. The table is created on first use.
func NewPostgresKV(ctx context.Context, db *pgxpool.Pool) (KVStore, error) {
	if _, err := db.Exec(ctx, appStateSchema); err != nil {
		return nil, fmt.Errorf("cannot ensure app_state schema: %w", err)
	}
	return &postgresKV{db: db}, nil
}

func (s *postgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build app_state select: %w", err)
	}

	var value []byte
	err = s.db.QueryRow(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return value, nil
}

func (s *postgresKV) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert("app_state").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build app_state upsert: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres set %q: %w", key, err)
	}
	return nil
}

func (s *postgresKV) Delete(ctx context.Context, key string) error {
	query, args, err := psql.
		Delete("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build app_state delete: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres delete %q: %w", key, err)
	}
	return nil
}
