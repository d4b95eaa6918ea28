// Package exception implements the sparse exception overlay store. One row
// per modified occurrence, keyed by the template and the occurrence's
// original start time; unmodified occurrences have no row at all.
package exception

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides exception persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exception repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const exceptionColumns = `id, recurring_event_id, instance_start_time, organization_id,
       exception_data, creator_id, updater_id, created_at, updated_at`

// Repeated writes against the same occurrence merge field-by-field: jsonb
// concatenation keeps earlier overrides and lets the new write win on
// overlapping keys.
const upsertSQL = `
INSERT INTO event_exceptions (id, recurring_event_id, instance_start_time, organization_id, exception_data, creator_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (recurring_event_id, instance_start_time) DO UPDATE
SET exception_data = event_exceptions.exception_data || EXCLUDED.exception_data,
    updater_id = EXCLUDED.creator_id,
    updated_at = now()
RETURNING ` + exceptionColumns

const getByKeySQL = `
SELECT ` + exceptionColumns + `
FROM event_exceptions
WHERE recurring_event_id = $1 AND instance_start_time = $2`

const listByTemplatesSQL = `
SELECT ` + exceptionColumns + `
FROM event_exceptions
WHERE recurring_event_id = ANY($1)`

const deleteByKeySQL = `
DELETE FROM event_exceptions
WHERE recurring_event_id = $1 AND instance_start_time = $2`

const deleteForTemplatesFromSQL = `
DELETE FROM event_exceptions
WHERE recurring_event_id = ANY($1) AND instance_start_time >= $2`

const deleteByTemplatesSQL = `
DELETE FROM event_exceptions WHERE recurring_event_id = ANY($1)`

// Upsert writes an exception for one occurrence, merging with any override
// already stored for it, and returns the row as persisted.
func (r *Repo) Upsert(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	exc, err := scanException(querier.QueryRow(ctx, upsertSQL,
		uuid.New(), templateID, instanceStart, orgID, data, creatorID))
	if err != nil {
		return nil, postgres.MapError(err, "event_exception", templateID)
	}
	return exc, nil
}

// GetByKey returns the exception for one occurrence, if any.
func (r *Repo) GetByKey(ctx context.Context, templateID uuid.UUID, instanceStart time.Time) (*domain.EventException, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	exc, err := scanException(querier.QueryRow(ctx, getByKeySQL, templateID, instanceStart))
	if err != nil {
		return nil, postgres.MapError(err, "event_exception", templateID)
	}
	return exc, nil
}

// ListByTemplates returns every exception of the given templates keyed by
// (template, original start) for overlay lookups.
func (r *Repo) ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
	if len(templateIDs) == 0 {
		return map[string]*domain.EventException{}, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByTemplatesSQL, templateIDs)
	if err != nil {
		return nil, fmt.Errorf("query exceptions by templates: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*domain.EventException)
	for rows.Next() {
		exc, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exception: %w", err)
		}
		out[domain.ExceptionKey(exc.RecurringEventID, exc.InstanceStartTime)] = exc
	}
	return out, rows.Err()
}

// Delete removes the exception for one occurrence. Missing rows are not an
// error: deleting a never-modified occurrence's exception is a no-op.
func (r *Repo) Delete(ctx context.Context, templateID uuid.UUID, instanceStart time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByKeySQL, templateID, instanceStart); err != nil {
		return fmt.Errorf("delete exception: %w", err)
	}
	return nil
}

// DeleteForTemplatesFrom removes exceptions at or after the cut point for
// the given templates.
func (r *Repo) DeleteForTemplatesFrom(ctx context.Context, templateIDs []uuid.UUID, cut time.Time) (int64, error) {
	if len(templateIDs) == 0 {
		return 0, nil
	}
	return r.execCount(ctx, deleteForTemplatesFromSQL, templateIDs, cut)
}

// DeleteByTemplates removes every exception of the given templates.
func (r *Repo) DeleteByTemplates(ctx context.Context, templateIDs []uuid.UUID) (int64, error) {
	if len(templateIDs) == 0 {
		return 0, nil
	}
	return r.execCount(ctx, deleteByTemplatesSQL, templateIDs)
}

func (r *Repo) execCount(ctx context.Context, sql string, args ...any) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete exceptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanException(row rowScanner) (*domain.EventException, error) {
	var exc domain.EventException
	err := row.Scan(
		&exc.ID, &exc.RecurringEventID, &exc.InstanceStartTime, &exc.OrganizationID,
		&exc.Data, &exc.CreatorID, &exc.UpdaterID, &exc.CreatedAt, &exc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &exc, nil
}
