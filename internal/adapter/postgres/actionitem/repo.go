// Package actionitem implements action item persistence using PostgreSQL.
package actionitem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides action item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new action item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, organization_id, title, event_id, recurring_event_instance_id,
       assigned_to, is_completed, created_at, updated_at`

const createSQL = `
INSERT INTO action_items (id, organization_id, title, event_id, recurring_event_instance_id, assigned_to, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING ` + itemColumns

const listForInstanceSQL = `
SELECT ` + itemColumns + `
FROM action_items
WHERE recurring_event_instance_id = $1
ORDER BY created_at, id`

const listForEventSQL = `
SELECT ` + itemColumns + `
FROM action_items
WHERE event_id = $1
ORDER BY created_at, id`

const listByInstancesSQL = `
SELECT ` + itemColumns + `
FROM action_items
WHERE recurring_event_instance_id = ANY($1)
ORDER BY created_at, id`

const listByEventsSQL = `
SELECT ` + itemColumns + `
FROM action_items
WHERE event_id = ANY($1)
ORDER BY created_at, id`

const setCompletedSQL = `
UPDATE action_items
SET is_completed = $2, updated_at = now()
WHERE id = $1`

// Deletes follow the instance table rather than taking instance ids, so a
// series teardown needs no preparatory id fetch.
const deleteByInstancesOfSeriesSQL = `
DELETE FROM action_items
WHERE recurring_event_instance_id IN (
    SELECT id FROM recurring_event_instances WHERE original_series_id = $1
)`

const deleteByInstancesOfSeriesFromSQL = `
DELETE FROM action_items
WHERE recurring_event_instance_id IN (
    SELECT id FROM recurring_event_instances
    WHERE original_series_id = $1 AND original_instance_start_time >= $2
)`

const deleteByEventsSQL = `
DELETE FROM action_items WHERE event_id = ANY($1)`

// Create persists a new action item.
func (r *Repo) Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(querier.QueryRow(ctx, createSQL,
		item.ID, item.OrganizationID, item.Title, item.EventID, item.RecurringEventInstanceID, item.AssignedTo))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", item.ID)
	}
	return created, nil
}

// ListForInstance returns the action items attached to one occurrence.
func (r *Repo) ListForInstance(ctx context.Context, instanceID uuid.UUID) ([]*domain.ActionItem, error) {
	return r.list(ctx, listForInstanceSQL, instanceID)
}

// ListForEvent returns the action items attached to one standalone event.
func (r *Repo) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.ActionItem, error) {
	return r.list(ctx, listForEventSQL, eventID)
}

// ListByInstanceIDs returns the items attached to any of the given
// occurrences, batched for loader use.
func (r *Repo) ListByInstanceIDs(ctx context.Context, instanceIDs []uuid.UUID) ([]*domain.ActionItem, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, listByInstancesSQL, instanceIDs)
}

// ListByEventIDs returns the items attached directly to any of the given
// events, batched for loader use.
func (r *Repo) ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.ActionItem, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, listByEventsSQL, eventIDs)
}

// SetCompleted toggles an item's completion flag.
func (r *Repo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setCompletedSQL, id, completed)
	if err != nil {
		return postgres.MapError(err, "action_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("action_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByInstancesOfSeries removes items attached to any occurrence of the
// series.
func (r *Repo) DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	return r.execCount(ctx, deleteByInstancesOfSeriesSQL, seriesID)
}

// DeleteByInstancesOfSeriesFrom removes items attached to occurrences of the
// series at or after the cut point.
func (r *Repo) DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	return r.execCount(ctx, deleteByInstancesOfSeriesFromSQL, seriesID, cut)
}

// DeleteByEvents removes items attached directly to the given events.
func (r *Repo) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	return r.execCount(ctx, deleteByEventsSQL, eventIDs)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]*domain.ActionItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query action items: %w", err)
	}
	defer rows.Close()

	var out []*domain.ActionItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *Repo) execCount(ctx context.Context, sql string, args ...any) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete action items: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.ActionItem, error) {
	var item domain.ActionItem
	err := row.Scan(
		&item.ID, &item.OrganizationID, &item.Title, &item.EventID, &item.RecurringEventInstanceID,
		&item.AssignedTo, &item.IsCompleted, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
