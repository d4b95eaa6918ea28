// Package event implements the event repository using PostgreSQL.
// It stores both standalone events and recurring templates; the
// is_recurring_template flag tells them apart.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, organization_id, name, description, location, start_at, end_at,
       all_day, is_public, is_registerable, is_recurring_template,
       creator_id, updater_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = ANY($1)`

const listStandaloneInRangeSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE organization_id = $1
  AND NOT is_recurring_template
  AND start_at >= $2
  AND start_at < $3
ORDER BY start_at, id`

const createSQL = `
INSERT INTO events (id, organization_id, name, description, location, start_at, end_at,
                    all_day, is_public, is_registerable, is_recurring_template,
                    creator_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const updateSQL = `
UPDATE events
SET name = $2, description = $3, location = $4, start_at = $5, end_at = $6,
    all_day = $7, is_public = $8, is_registerable = $9,
    updater_id = $10, updated_at = now()
WHERE id = $1`

const markTemplateSQL = `
UPDATE events
SET is_recurring_template = true, updater_id = $2, updated_at = now()
WHERE id = $1 AND NOT is_recurring_template`

const deleteByIDsSQL = `
DELETE FROM events WHERE id = ANY($1)`

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ev, err := scanEvent(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return ev, nil
}

// GetTemplate returns an event that must be a recurring template.
// Returns domain.ErrValidation if the event exists but is not a template.
func (r *Repo) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	ev, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ev.IsRecurringTemplate {
		return nil, domain.NewValidationError("eventId", "Event is not a recurring template")
	}
	return ev, nil
}

// GetByIDs returns the events for the given ids, keyed by id. Missing ids
// are simply absent from the map.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.Event{}, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("query events by ids: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*domain.Event, len(ids))
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out[ev.ID] = ev
	}
	return out, rows.Err()
}

// ListStandaloneInRange returns non-template events of an organization whose
// start falls within [from, to), ordered by start time.
func (r *Repo) ListStandaloneInRange(ctx context.Context, orgID uuid.UUID, from, to time.Time) ([]*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listStandaloneInRangeSQL, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query standalone events: %w", err)
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		ev.ID, ev.OrganizationID, ev.Name, ev.Description, ev.Location, ev.StartAt, ev.EndAt,
		ev.AllDay, ev.IsPublic, ev.IsRegisterable, ev.IsRecurringTemplate,
		ev.CreatorID, ev.CreatedAt,
	)
	return postgres.MapError(err, "event", ev.ID)
}

// Update persists the mutable content fields of an event.
func (r *Repo) Update(ctx context.Context, ev *domain.Event) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL,
		ev.ID, ev.Name, ev.Description, ev.Location, ev.StartAt, ev.EndAt,
		ev.AllDay, ev.IsPublic, ev.IsRegisterable, ev.UpdaterID,
	)
	if err != nil {
		return postgres.MapError(err, "event", ev.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", ev.ID, domain.ErrNotFound)
	}
	return nil
}

// MarkTemplate flips a standalone event into a recurring template.
// Returns domain.ErrConflict if the event is already a template.
func (r *Repo) MarkTemplate(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markTemplateSQL, id, updaterID)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already a template; GetByID disambiguates.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return fmt.Errorf("event %s is already a recurring template: %w", id, domain.ErrConflict)
	}
	return nil
}

// DeleteByIDs removes the given events and returns how many rows went away.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByIDsSQL, ids)
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var ev domain.Event
	err := row.Scan(
		&ev.ID, &ev.OrganizationID, &ev.Name, &ev.Description, &ev.Location, &ev.StartAt, &ev.EndAt,
		&ev.AllDay, &ev.IsPublic, &ev.IsRegisterable, &ev.IsRecurringTemplate,
		&ev.CreatorID, &ev.UpdaterID, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
