// Package volunteer implements volunteer binding persistence using PostgreSQL.
package volunteer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides volunteer binding persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new volunteer binding repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const bindingColumns = `id, user_id, event_id, recurring_event_instance_id, is_template, has_accepted, created_at`

const createSQL = `
INSERT INTO event_volunteers (id, user_id, event_id, recurring_event_instance_id, is_template, has_accepted, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING ` + bindingColumns

const listByUserSQL = `
SELECT ` + bindingColumns + `
FROM event_volunteers
WHERE user_id = $1
ORDER BY created_at, id`

const listByInstancesSQL = `
SELECT ` + bindingColumns + `
FROM event_volunteers
WHERE recurring_event_instance_id = ANY($1)
ORDER BY created_at, id`

const listByEventsSQL = `
SELECT ` + bindingColumns + `
FROM event_volunteers
WHERE event_id = ANY($1)
ORDER BY created_at, id`

const setAcceptedSQL = `
UPDATE event_volunteers SET has_accepted = $2 WHERE id = $1`

const deleteByInstancesOfSeriesSQL = `
DELETE FROM event_volunteers
WHERE recurring_event_instance_id IN (
    SELECT id FROM recurring_event_instances WHERE original_series_id = $1
)`

const deleteByInstancesOfSeriesFromSQL = `
DELETE FROM event_volunteers
WHERE recurring_event_instance_id IN (
    SELECT id FROM recurring_event_instances
    WHERE original_series_id = $1 AND original_instance_start_time >= $2
)`

const deleteByEventsSQL = `
DELETE FROM event_volunteers WHERE event_id = ANY($1)`

// Create persists a new volunteer binding.
func (r *Repo) Create(ctx context.Context, b *domain.VolunteerBinding) (*domain.VolunteerBinding, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanBinding(querier.QueryRow(ctx, createSQL,
		b.ID, b.UserID, b.EventID, b.InstanceID, b.IsTemplate, b.HasAccepted))
	if err != nil {
		return nil, postgres.MapError(err, "volunteer_binding", b.ID)
	}
	return created, nil
}

// ListByUser returns every binding of one user, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VolunteerBinding, error) {
	return r.list(ctx, listByUserSQL, userID)
}

// ListByInstanceIDs returns the bindings attached to any of the given
// occurrences, batched for loader use.
func (r *Repo) ListByInstanceIDs(ctx context.Context, instanceIDs []uuid.UUID) ([]*domain.VolunteerBinding, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, listByInstancesSQL, instanceIDs)
}

// ListByEventIDs returns the bindings attached directly to any of the given
// events, template-level bindings included.
func (r *Repo) ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.VolunteerBinding, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, listByEventsSQL, eventIDs)
}

// SetAccepted toggles a binding's acceptance flag.
func (r *Repo) SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setAcceptedSQL, id, accepted)
	if err != nil {
		return postgres.MapError(err, "volunteer_binding", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer_binding %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByInstancesOfSeries removes bindings attached to any occurrence of
// the series.
func (r *Repo) DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	return r.execCount(ctx, deleteByInstancesOfSeriesSQL, seriesID)
}

// DeleteByInstancesOfSeriesFrom removes bindings attached to occurrences of
// the series at or after the cut point.
func (r *Repo) DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	return r.execCount(ctx, deleteByInstancesOfSeriesFromSQL, seriesID, cut)
}

// DeleteByEvents removes bindings attached directly to the given events,
// template-level bindings included.
func (r *Repo) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	return r.execCount(ctx, deleteByEventsSQL, eventIDs)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]*domain.VolunteerBinding, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query volunteer bindings: %w", err)
	}
	defer rows.Close()

	var out []*domain.VolunteerBinding
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan volunteer binding: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) execCount(ctx context.Context, sql string, args ...any) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete volunteer bindings: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBinding(row rowScanner) (*domain.VolunteerBinding, error) {
	var b domain.VolunteerBinding
	err := row.Scan(&b.ID, &b.UserID, &b.EventID, &b.InstanceID, &b.IsTemplate, &b.HasAccepted, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
