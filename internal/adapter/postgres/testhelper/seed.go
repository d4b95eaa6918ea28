package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      domain.UserRoleMember,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}
	return user
}

// SeedOrganization creates an organization row and returns it.
func SeedOrganization(t *testing.T, pool *pgxpool.Pool) domain.Organization {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	org := domain.Organization{
		ID:        uuid.New(),
		Name:      "Test Org " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO organizations (id, name, created_at) VALUES ($1, $2, $3)`,
		org.ID, org.Name, org.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganization insert: %v", err)
	}
	return org
}

// SeedEvent creates a standalone (non-template) event one hour long.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, orgID, creatorID uuid.UUID, startAt time.Time) domain.Event {
	t.Helper()
	return seedEvent(t, pool, orgID, creatorID, startAt, false)
}

// SeedTemplate creates a recurring template event anchored at startAt.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, orgID, creatorID uuid.UUID, startAt time.Time) domain.Event {
	t.Helper()
	return seedEvent(t, pool, orgID, creatorID, startAt, true)
}

func seedEvent(t *testing.T, pool *pgxpool.Pool, orgID, creatorID uuid.UUID, startAt time.Time, template bool) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.Event{
		ID:                  uuid.New(),
		OrganizationID:      orgID,
		Name:                "Test Event " + suffix,
		StartAt:             startAt.UTC(),
		EndAt:               startAt.UTC().Add(time.Hour),
		IsPublic:            true,
		IsRecurringTemplate: template,
		CreatorID:           creatorID,
		CreatedAt:           now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, organization_id, name, start_at, end_at, all_day, is_public,
		                     is_registerable, is_recurring_template, creator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		ev.ID, ev.OrganizationID, ev.Name, ev.StartAt, ev.EndAt, ev.AllDay, ev.IsPublic,
		ev.IsRegisterable, ev.IsRecurringTemplate, ev.CreatorID, ev.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedEvent insert: %v", err)
	}
	return ev
}

// SeedRule creates a recurrence rule for a template. The rule is weekly,
// never-ending, anchored at the template's start; tweak the returned struct
// and re-save through the repo when a test needs something else.
func SeedRule(t *testing.T, pool *pgxpool.Pool, template domain.Event) domain.RecurrenceRule {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rule := domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: template.ID,
		OrganizationID:       template.OrganizationID,
		Frequency:            domain.FrequencyWeekly,
		Interval:             1,
		ByDay:                []string{},
		ByMonth:              []int{},
		ByMonthDay:           []int{},
		RecurrenceStartDate:  template.StartAt,
		RuleString:           "RRULE:FREQ=WEEKLY;INTERVAL=1",
		CreatorID:            template.CreatorID,
		CreatedAt:            now,
	}
	rule.OriginalSeriesID = rule.ID

	_, err := pool.Exec(ctx,
		`INSERT INTO recurrence_rules (id, base_recurring_event_id, original_series_id, organization_id,
		                               frequency, recur_interval, by_day, by_month, by_month_day,
		                               recurrence_start_date, rule_string, creator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rule.ID, rule.BaseRecurringEventID, rule.OriginalSeriesID, rule.OrganizationID,
		string(rule.Frequency), rule.Interval, rule.ByDay, rule.ByMonth, rule.ByMonthDay,
		rule.RecurrenceStartDate, rule.RuleString, rule.CreatorID, rule.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRule insert: %v", err)
	}
	return rule
}

// SeedInstance creates one materialized instance of a template at the given
// original start, one hour long, with the given sequence number.
func SeedInstance(t *testing.T, pool *pgxpool.Pool, template domain.Event, rule domain.RecurrenceRule, start time.Time, seq int) domain.EventInstance {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	inst := domain.EventInstance{
		ID:                        uuid.New(),
		BaseRecurringEventID:      template.ID,
		RecurrenceRuleID:          rule.ID,
		OriginalSeriesID:          rule.OriginalSeriesID,
		OrganizationID:            template.OrganizationID,
		OriginalInstanceStartTime: start.UTC(),
		ActualStartTime:           start.UTC(),
		ActualEndTime:             start.UTC().Add(time.Hour),
		SequenceNumber:            seq,
		Version:                   1,
		GeneratedAt:               now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recurring_event_instances (id, base_recurring_event_id, recurrence_rule_id,
		        original_series_id, organization_id, original_instance_start_time,
		        actual_start_time, actual_end_time, is_cancelled, sequence_number, version, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inst.ID, inst.BaseRecurringEventID, inst.RecurrenceRuleID,
		inst.OriginalSeriesID, inst.OrganizationID, inst.OriginalInstanceStartTime,
		inst.ActualStartTime, inst.ActualEndTime, inst.IsCancelled, inst.SequenceNumber, inst.Version, inst.GeneratedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInstance insert: %v", err)
	}
	return inst
}
