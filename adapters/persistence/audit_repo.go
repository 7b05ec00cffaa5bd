package persistence

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaguilard28/cv-areli/internal/domain/audit"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type postgresAuditRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAuditRepo(db *pgxpool.Pool, log logger.Logger) audit.Repository {
	return &postgresAuditRepo{db: db, logger: log}
}

func (r *postgresAuditRepo) Save(ctx context.Context, entry *audit.Entry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return apperror.NewInternal("failed to marshal audit payload", err)
	}

	query, args, err := psql.
		Insert("audit_log").
		Columns("id", "topic", "event_type", "payload", "occurred_at").
		Values(entry.ID, entry.Topic, entry.EventType, payload, entry.OccurredAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build audit insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to insert audit entry", err)
	}
	return nil
}

func (r *postgresAuditRepo) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	query, args, err := psql.
		Select("id", "topic", "event_type", "payload", "occurred_at").
		From("audit_log").
		OrderBy("occurred_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build audit query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query audit log", err)
	}
	defer rows.Close()

	entries := make([]audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		var payload []byte
		if err := rows.Scan(&e.ID, &e.Topic, &e.EventType, &payload, &e.OccurredAt); err != nil {
			return nil, apperror.NewInternal("failed to scan audit entry", err)
		}
		if err := json.Unmarshal(payload, &e.Payload); err != nil {
			r.logger.Warn("Unparsable audit payload, leaving empty")
			e.Payload = map[string]any{}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating audit entries", err)
	}
	return entries, nil
}
