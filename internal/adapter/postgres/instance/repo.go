// Package instance implements the materialized occurrence repository using
// PostgreSQL. Inserts are idempotent: the (template, original start) unique
// pair absorbs duplicate generation runs via ON CONFLICT DO NOTHING.
package instance

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides instance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new instance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const instanceColumns = `id, base_recurring_event_id, recurrence_rule_id, original_series_id,
       organization_id, original_instance_start_time, actual_start_time, actual_end_time,
       is_cancelled, sequence_number, total_count, version, generated_at, last_updated_at`

const getByIDSQL = `
SELECT ` + instanceColumns + `
FROM recurring_event_instances
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + instanceColumns + `
FROM recurring_event_instances
WHERE id = ANY($1)`

const listByTemplatesSQL = `
SELECT ` + instanceColumns + `
FROM recurring_event_instances
WHERE base_recurring_event_id = ANY($1)
ORDER BY actual_start_time, id`

const listOriginalStartsSQL = `
SELECT original_instance_start_time
FROM recurring_event_instances
WHERE base_recurring_event_id = $1
  AND original_instance_start_time >= $2
  AND original_instance_start_time < $3`

const insertSQL = `
INSERT INTO recurring_event_instances (id, base_recurring_event_id, recurrence_rule_id,
        original_series_id, organization_id, original_instance_start_time,
        actual_start_time, actual_end_time, is_cancelled, sequence_number, total_count,
        version, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (base_recurring_event_id, original_instance_start_time) DO NOTHING`

const updateActualSQL = `
UPDATE recurring_event_instances
SET actual_start_time = $2, actual_end_time = $3, is_cancelled = $4,
    version = version + 1, last_updated_at = now()
WHERE id = $1`

const deleteBySeriesFromSQL = `
DELETE FROM recurring_event_instances
WHERE original_series_id = $1 AND original_instance_start_time >= $2`

const deleteBySeriesSQL = `
DELETE FROM recurring_event_instances WHERE original_series_id = $1`

// GetByID returns an instance by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	inst, err := scanInstance(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recurring_event_instance", id)
	}
	return inst, nil
}

// GetByIDs returns instances keyed by id; missing ids are absent.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.EventInstance{}, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("query instances by ids: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*domain.EventInstance, len(ids))
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan instance: %w", err)
		}
		out[inst.ID] = inst
	}
	return out, rows.Err()
}

// ListByTemplates returns every instance of the given templates ordered by
// actual start time.
func (r *Repo) ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) ([]*domain.EventInstance, error) {
	if len(templateIDs) == 0 {
		return nil, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByTemplatesSQL, templateIDs)
	if err != nil {
		return nil, fmt.Errorf("query instances by templates: %w", err)
	}
	defer rows.Close()
	return collectInstances(rows)
}

// ListRange returns instances matching the filter, ordered by actual start.
func (r *Repo) ListRange(ctx context.Context, f domain.InstanceFilter) ([]*domain.EventInstance, error) {
	b := r.sb.Select(instanceColumns).
		From("recurring_event_instances").
		Where(sq.Eq{"organization_id": f.OrganizationID}).
		Where(sq.GtOrEq{"actual_start_time": f.From}).
		Where(sq.Lt{"actual_start_time": f.To}).
		OrderBy("actual_start_time", "id")
	if len(f.TemplateIDs) > 0 {
		b = b.Where(sq.Eq{"base_recurring_event_id": f.TemplateIDs})
	}
	if f.SeriesID != nil {
		b = b.Where(sq.Eq{"original_series_id": *f.SeriesID})
	}
	if len(f.ExcludeIDs) > 0 {
		b = b.Where(sq.NotEq{"id": f.ExcludeIDs})
	}
	if !f.WithCancelled {
		b = b.Where(sq.Eq{"is_cancelled": false})
	}
	if f.Limit > 0 {
		b = b.Limit(f.Limit).Offset(f.Offset)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build instance range query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query instance range: %w", err)
	}
	defer rows.Close()
	return collectInstances(rows)
}

// ListOriginalStarts returns the original start times already materialized
// for a template within [from, to).
func (r *Repo) ListOriginalStarts(ctx context.Context, templateID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listOriginalStartsSQL, templateID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query original starts: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan original start: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateBatch inserts instances in one round trip and reports how many rows
// were actually inserted; rows already present are silently skipped.
func (r *Repo) CreateBatch(ctx context.Context, instances []*domain.EventInstance) (int64, error) {
	if len(instances) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, inst := range instances {
		batch.Queue(insertSQL,
			inst.ID, inst.BaseRecurringEventID, inst.RecurrenceRuleID,
			inst.OriginalSeriesID, inst.OrganizationID, inst.OriginalInstanceStartTime,
			inst.ActualStartTime, inst.ActualEndTime, inst.IsCancelled, inst.SequenceNumber, inst.TotalCount,
			inst.Version, inst.GeneratedAt,
		)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range instances {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch insert instance: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// UpdateActual moves an instance's concrete times and cancellation flag,
// bumping its version.
func (r *Repo) UpdateActual(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateActualSQL, id, start, end, cancelled)
	if err != nil {
		return postgres.MapError(err, "recurring_event_instance", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recurring_event_instance %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySeriesFrom removes every instance of a series at or after the cut
// point (compared on original start, which exceptions also key on).
func (r *Repo) DeleteBySeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	return r.execCount(ctx, deleteBySeriesFromSQL, seriesID, cut)
}

// DeleteBySeries removes every instance of a series.
func (r *Repo) DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	return r.execCount(ctx, deleteBySeriesSQL, seriesID)
}

func (r *Repo) execCount(ctx context.Context, sql string, args ...any) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete instances: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func collectInstances(rows pgx.Rows) ([]*domain.EventInstance, error) {
	var out []*domain.EventInstance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan instance: %w", err)
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func scanInstance(row rowScanner) (*domain.EventInstance, error) {
	var inst domain.EventInstance
	err := row.Scan(
		&inst.ID, &inst.BaseRecurringEventID, &inst.RecurrenceRuleID, &inst.OriginalSeriesID,
		&inst.OrganizationID, &inst.OriginalInstanceStartTime, &inst.ActualStartTime, &inst.ActualEndTime,
		&inst.IsCancelled, &inst.SequenceNumber, &inst.TotalCount, &inst.Version, &inst.GeneratedAt, &inst.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
