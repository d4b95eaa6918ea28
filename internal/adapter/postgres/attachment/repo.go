// Package attachment implements event attachment persistence using PostgreSQL.
package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides attachment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const attachmentColumns = `id, event_id, object_key, mime_type, created_at`

const createSQL = `
INSERT INTO event_attachments (id, event_id, object_key, mime_type, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING ` + attachmentColumns

const listByEventSQL = `
SELECT ` + attachmentColumns + `
FROM event_attachments
WHERE event_id = $1
ORDER BY created_at, id`

const deleteByEventsSQL = `
DELETE FROM event_attachments WHERE event_id = ANY($1)`

// Create persists a new attachment.
func (r *Repo) Create(ctx context.Context, a *domain.EventAttachment) (*domain.EventAttachment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAttachment(querier.QueryRow(ctx, createSQL,
		a.ID, a.EventID, a.ObjectKey, a.MimeType))
	if err != nil {
		return nil, postgres.MapError(err, "event_attachment", a.ID)
	}
	return created, nil
}

// ListByEvent returns an event's attachments, oldest first.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.EventAttachment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByEventSQL, eventID)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}
	defer rows.Close()

	var out []*domain.EventAttachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteByEvents removes every attachment of the given events.
func (r *Repo) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByEventsSQL, eventIDs)
	if err != nil {
		return 0, fmt.Errorf("delete attachments: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttachment(row rowScanner) (*domain.EventAttachment, error) {
	var a domain.EventAttachment
	err := row.Scan(&a.ID, &a.EventID, &a.ObjectKey, &a.MimeType, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
