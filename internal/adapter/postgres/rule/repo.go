// Package rule implements the recurrence rule repository using PostgreSQL.
// One rule exists per template; latest_instance_date is the materialization
// watermark and must only move forward through AdvanceWatermark.
package rule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Repo provides recurrence rule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recurrence rule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ruleColumns = `id, base_recurring_event_id, original_series_id, organization_id,
       frequency, recur_interval, by_day, by_month, by_month_day, occurrence_count,
       recurrence_start_date, recurrence_end_date, rule_string, latest_instance_date,
       creator_id, updater_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + ruleColumns + `
FROM recurrence_rules
WHERE id = $1`

const getByTemplateIDSQL = `
SELECT ` + ruleColumns + `
FROM recurrence_rules
WHERE base_recurring_event_id = $1`

const listBySeriesSQL = `
SELECT ` + ruleColumns + `
FROM recurrence_rules
WHERE original_series_id = $1
ORDER BY recurrence_start_date`

const listByOrganizationSQL = `
SELECT ` + ruleColumns + `
FROM recurrence_rules
WHERE organization_id = $1
ORDER BY recurrence_start_date`

const createSQL = `
INSERT INTO recurrence_rules (id, base_recurring_event_id, original_series_id, organization_id,
        frequency, recur_interval, by_day, by_month, by_month_day, occurrence_count,
        recurrence_start_date, recurrence_end_date, rule_string, creator_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const setEndDateSQL = `
UPDATE recurrence_rules
SET recurrence_end_date = $2,
    occurrence_count = NULL,
    latest_instance_date = CASE WHEN latest_instance_date IS NULL THEN NULL
                                ELSE LEAST(latest_instance_date, $2) END,
    updater_id = $3, updated_at = now()
WHERE id = $1`

const advanceWatermarkSQL = `
UPDATE recurrence_rules
SET latest_instance_date = GREATEST(COALESCE(latest_instance_date, $2), $2)
WHERE id = $1`

const deleteBySeriesSQL = `
DELETE FROM recurrence_rules WHERE original_series_id = $1`

// GetByID returns a rule by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurrenceRule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rule, err := scanRule(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", id)
	}
	return rule, nil
}

// GetByTemplateID returns the rule owned by a recurring template.
func (r *Repo) GetByTemplateID(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rule, err := scanRule(querier.QueryRow(ctx, getByTemplateIDSQL, templateID))
	if err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", templateID)
	}
	return rule, nil
}

// ListBySeries returns every rule belonging to a logical series, oldest
// segment first. A series accumulates rules through "this and following"
// splits.
func (r *Repo) ListBySeries(ctx context.Context, seriesID uuid.UUID) ([]*domain.RecurrenceRule, error) {
	return r.list(ctx, listBySeriesSQL, seriesID)
}

// ListByOrganization returns every rule of an organization, used by the
// background worker to decide what needs materializing.
func (r *Repo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.RecurrenceRule, error) {
	return r.list(ctx, listByOrganizationSQL, orgID)
}

func (r *Repo) list(ctx context.Context, sql string, arg any) ([]*domain.RecurrenceRule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("query recurrence_rules: %w", err)
	}
	defer rows.Close()

	var out []*domain.RecurrenceRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurrence_rule: %w", err)
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}

// Create inserts a new rule.
func (r *Repo) Create(ctx context.Context, rule *domain.RecurrenceRule) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		rule.ID, rule.BaseRecurringEventID, rule.OriginalSeriesID, rule.OrganizationID,
		string(rule.Frequency), rule.Interval, rule.ByDay, rule.ByMonth, rule.ByMonthDay, rule.Count,
		rule.RecurrenceStartDate, rule.RecurrenceEndDate, rule.RuleString, rule.CreatorID, rule.CreatedAt,
	)
	return postgres.MapError(err, "recurrence_rule", rule.ID)
}

// SetEndDate shortens a rule to the given end date, clearing any stored
// count and pulling the watermark back if it points past the new end.
func (r *Repo) SetEndDate(ctx context.Context, id uuid.UUID, end time.Time, updaterID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setEndDateSQL, id, end, updaterID)
	if err != nil {
		return postgres.MapError(err, "recurrence_rule", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recurrence_rule %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AdvanceWatermark moves latest_instance_date forward to ts. A ts behind the
// current watermark leaves it untouched, so concurrent materialization runs
// can only extend coverage, never shrink it.
func (r *Repo) AdvanceWatermark(ctx context.Context, id uuid.UUID, ts time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, advanceWatermarkSQL, id, ts)
	if err != nil {
		return postgres.MapError(err, "recurrence_rule", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recurrence_rule %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySeries removes every rule of a series and returns the count.
func (r *Repo) DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteBySeriesSQL, seriesID)
	if err != nil {
		return 0, fmt.Errorf("delete recurrence_rules: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (*domain.RecurrenceRule, error) {
	var (
		rule domain.RecurrenceRule
		freq string
	)
	err := row.Scan(
		&rule.ID, &rule.BaseRecurringEventID, &rule.OriginalSeriesID, &rule.OrganizationID,
		&freq, &rule.Interval, &rule.ByDay, &rule.ByMonth, &rule.ByMonthDay, &rule.Count,
		&rule.RecurrenceStartDate, &rule.RecurrenceEndDate, &rule.RuleString, &rule.LatestInstanceDate,
		&rule.CreatorID, &rule.UpdaterID, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rule.Frequency = domain.Frequency(freq)
	return &rule, nil
}
