// Package window implements generation window persistence using PostgreSQL.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides generation window persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new generation window repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const windowColumns = `id, organization_id, hot_window_months_ahead, current_window_end_date,
       last_processed_at, processing_priority, is_enabled, created_at, updated_at`

const getByOrganizationSQL = `
SELECT ` + windowColumns + `
FROM event_generation_windows
WHERE organization_id = $1`

// EnsureDefault races are resolved by the organization_id unique constraint;
// the losing insert reads back the winner's row.
const ensureDefaultSQL = `
INSERT INTO event_generation_windows (id, organization_id, hot_window_months_ahead, current_window_end_date, last_processed_at, created_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (organization_id) DO NOTHING
RETURNING ` + windowColumns

const listDueSQL = `
SELECT ` + windowColumns + `
FROM event_generation_windows
WHERE is_enabled
  AND current_window_end_date <= $1
  AND last_processed_at < $2
ORDER BY processing_priority DESC, last_processed_at
LIMIT $3`

const markProcessedSQL = `
UPDATE event_generation_windows
SET current_window_end_date = GREATEST(current_window_end_date, $2),
    last_processed_at = $3, updated_at = now()
WHERE id = $1`

const setEnabledSQL = `
UPDATE event_generation_windows
SET is_enabled = $2, updated_at = now()
WHERE organization_id = $1`

// GetByOrganization returns the organization's window row.
func (r *Repo) GetByOrganization(ctx context.Context, orgID uuid.UUID) (*domain.GenerationWindow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWindow(querier.QueryRow(ctx, getByOrganizationSQL, orgID))
	if err != nil {
		return nil, postgres.MapError(err, "generation_window", orgID)
	}
	return w, nil
}

// EnsureDefault creates the organization's window row if it does not exist
// yet and returns it either way. monthsAhead sizes the initial horizon.
func (r *Repo) EnsureDefault(ctx context.Context, orgID uuid.UUID, monthsAhead int, now time.Time) (*domain.GenerationWindow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWindow(querier.QueryRow(ctx, ensureDefaultSQL,
		uuid.New(), orgID, monthsAhead, now.AddDate(0, monthsAhead, 0), now))
	if err == nil {
		return w, nil
	}
	// DO NOTHING returns no row when another writer got there first.
	return r.GetByOrganization(ctx, orgID)
}

// ListDue returns enabled windows whose horizon has fallen inside the
// look-ahead and whose cooldown has elapsed, highest priority first.
func (r *Repo) ListDue(ctx context.Context, now time.Time, lookAhead, cooldown time.Duration, limit int) ([]*domain.GenerationWindow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDueSQL, now.Add(lookAhead), now.Add(-cooldown), limit)
	if err != nil {
		return nil, fmt.Errorf("query due windows: %w", err)
	}
	defer rows.Close()

	var out []*domain.GenerationWindow
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generation window: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// MarkProcessed advances the window's horizon and records the processing
// time. The horizon only moves forward.
func (r *Repo) MarkProcessed(ctx context.Context, id uuid.UUID, windowEnd, processedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markProcessedSQL, id, windowEnd, processedAt)
	if err != nil {
		return postgres.MapError(err, "generation_window", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("generation_window %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetEnabled toggles background processing for an organization.
func (r *Repo) SetEnabled(ctx context.Context, orgID uuid.UUID, enabled bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setEnabledSQL, orgID, enabled)
	if err != nil {
		return postgres.MapError(err, "generation_window", orgID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("generation_window for organization %s: %w", orgID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWindow(row rowScanner) (*domain.GenerationWindow, error) {
	var w domain.GenerationWindow
	err := row.Scan(
		&w.ID, &w.OrganizationID, &w.HotWindowMonthsAhead, &w.CurrentWindowEndDate,
		&w.LastProcessedAt, &w.ProcessingPriority, &w.IsEnabled, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
