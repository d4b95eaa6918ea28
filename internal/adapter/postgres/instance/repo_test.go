package instance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/instance"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/testhelper"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

func newRepo(t *testing.T) (*instance.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return instance.New(pool), pool
}

// seedSeries creates an org, a user, a weekly template and its rule.
func seedSeries(t *testing.T, pool *pgxpool.Pool, anchor time.Time) (domain.Event, domain.RecurrenceRule) {
	t.Helper()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, anchor)
	rule := testhelper.SeedRule(t, pool, tmpl)
	return tmpl, rule
}

func buildInstance(tmpl domain.Event, rule domain.RecurrenceRule, start time.Time, seq int) *domain.EventInstance {
	return &domain.EventInstance{
		ID:                        uuid.New(),
		BaseRecurringEventID:      tmpl.ID,
		RecurrenceRuleID:          rule.ID,
		OriginalSeriesID:          rule.OriginalSeriesID,
		OrganizationID:            tmpl.OrganizationID,
		OriginalInstanceStartTime: start.UTC(),
		ActualStartTime:           start.UTC(),
		ActualEndTime:             start.UTC().Add(time.Hour),
		SequenceNumber:            seq,
		Version:                   1,
		GeneratedAt:               time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestRepo_CreateBatch_CountsInserted(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	batch := []*domain.EventInstance{
		buildInstance(tmpl, rule, anchor, 1),
		buildInstance(tmpl, rule, anchor.AddDate(0, 0, 7), 2),
		buildInstance(tmpl, rule, anchor.AddDate(0, 0, 14), 3),
	}

	n, err := repo.CreateBatch(ctx, batch)
	if err != nil {
		t.Fatalf("CreateBatch: unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("inserted count: got %d, want 3", n)
	}
}

func TestRepo_CreateBatch_DuplicatesSkipped(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	existing := testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)

	batch := []*domain.EventInstance{
		// Same (template, original start) as the seeded row, fresh id.
		buildInstance(tmpl, rule, anchor, 1),
		buildInstance(tmpl, rule, anchor.AddDate(0, 0, 7), 2),
	}

	n, err := repo.CreateBatch(ctx, batch)
	if err != nil {
		t.Fatalf("CreateBatch: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("inserted count: got %d, want 1 (duplicate skipped)", n)
	}

	// The original row is untouched.
	got, err := repo.GetByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("GetByID existing: %v", err)
	}
	if got.ID != existing.ID {
		t.Errorf("existing instance replaced: got %s, want %s", got.ID, existing.ID)
	}
}

func TestRepo_CreateBatch_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	n, err := repo.CreateBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("CreateBatch(nil): unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("inserted count: got %d, want 0", n)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_ListOriginalStarts(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7), 2)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 14), 3)

	// Half-open window covering only the middle occurrence.
	starts, err := repo.ListOriginalStarts(ctx, tmpl.ID,
		anchor.AddDate(0, 0, 7), anchor.AddDate(0, 0, 14))
	if err != nil {
		t.Fatalf("ListOriginalStarts: unexpected error: %v", err)
	}
	if len(starts) != 1 {
		t.Fatalf("expected 1 start, got %d", len(starts))
	}
	if !starts[0].Equal(anchor.AddDate(0, 0, 7)) {
		t.Errorf("start mismatch: got %s, want %s", starts[0], anchor.AddDate(0, 0, 7))
	}
}

func TestRepo_ListRange_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	first := testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)
	second := testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7), 2)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 2, 0), 9)

	got, err := repo.ListRange(ctx, domain.InstanceFilter{
		OrganizationID: tmpl.OrganizationID,
		From:           anchor,
		To:             anchor.AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("ListRange: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 instances in range, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("instances not ordered by actual start: got [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestRepo_ListRange_ExcludesCancelledByDefault(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	kept := testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)
	cancelled := testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7), 2)
	if err := repo.UpdateActual(ctx, cancelled.ID, cancelled.ActualStartTime, cancelled.ActualEndTime, true); err != nil {
		t.Fatalf("UpdateActual: %v", err)
	}

	f := domain.InstanceFilter{
		OrganizationID: tmpl.OrganizationID,
		From:           anchor,
		To:             anchor.AddDate(0, 1, 0),
	}

	got, err := repo.ListRange(ctx, f)
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(got) != 1 || got[0].ID != kept.ID {
		t.Fatalf("expected only the live instance, got %d rows", len(got))
	}

	f.WithCancelled = true
	got, err = repo.ListRange(ctx, f)
	if err != nil {
		t.Fatalf("ListRange with cancelled: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 instances including cancelled, got %d", len(got))
	}
}

func TestRepo_ListRange_TemplateFilterAndPagination(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	// A second series in the same organization.
	user := testhelper.SeedUser(t, pool)
	other := testhelper.SeedTemplate(t, pool, tmpl.OrganizationID, user.ID, anchor.Add(time.Hour))
	otherRule := testhelper.SeedRule(t, pool, other)
	testhelper.SeedInstance(t, pool, other, otherRule, anchor.Add(time.Hour), 1)

	for i := range 4 {
		testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7*i), i+1)
	}

	f := domain.InstanceFilter{
		OrganizationID: tmpl.OrganizationID,
		From:           anchor,
		To:             anchor.AddDate(0, 6, 0),
		TemplateIDs:    []uuid.UUID{tmpl.ID},
		Limit:          3,
	}

	page1, err := repo.ListRange(ctx, f)
	if err != nil {
		t.Fatalf("ListRange page1: %v", err)
	}
	if len(page1) != 3 {
		t.Fatalf("page1: expected 3 instances, got %d", len(page1))
	}
	for _, inst := range page1 {
		if inst.BaseRecurringEventID != tmpl.ID {
			t.Errorf("template filter leaked instance of %s", inst.BaseRecurringEventID)
		}
	}

	f.Offset = 3
	page2, err := repo.ListRange(ctx, f)
	if err != nil {
		t.Fatalf("ListRange page2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("page2: expected 1 instance, got %d", len(page2))
	}
}

func TestRepo_UpdateActual_BumpsVersion(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	inst := testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)

	moved := anchor.Add(90 * time.Minute)
	if err := repo.UpdateActual(ctx, inst.ID, moved, moved.Add(time.Hour), false); err != nil {
		t.Fatalf("UpdateActual: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, inst.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.ActualStartTime.Equal(moved) {
		t.Errorf("ActualStartTime mismatch: got %s, want %s", got.ActualStartTime, moved)
	}
	// The original position never moves.
	if !got.OriginalInstanceStartTime.Equal(inst.OriginalInstanceStartTime) {
		t.Errorf("OriginalInstanceStartTime changed: got %s", got.OriginalInstanceStartTime)
	}
	if got.Version != inst.Version+1 {
		t.Errorf("Version: got %d, want %d", got.Version, inst.Version+1)
	}
	if got.LastUpdatedAt == nil {
		t.Error("LastUpdatedAt should be set after update")
	}
}

func TestRepo_UpdateActual_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	err := repo.UpdateActual(ctx, uuid.New(), now, now.Add(time.Hour), false)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_DeleteBySeriesFrom(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	kept := testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7), 2)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 14), 3)

	cut := anchor.AddDate(0, 0, 7)
	n, err := repo.DeleteBySeriesFrom(ctx, rule.OriginalSeriesID, cut)
	if err != nil {
		t.Fatalf("DeleteBySeriesFrom: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted count: got %d, want 2", n)
	}

	remaining, err := repo.ListByTemplates(ctx, []uuid.UUID{tmpl.ID})
	if err != nil {
		t.Fatalf("ListByTemplates: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Fatalf("expected only the pre-cut instance to survive, got %d rows", len(remaining))
	}
}

func TestRepo_DeleteBySeries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tmpl, rule := seedSeries(t, pool, anchor)

	testhelper.SeedInstance(t, pool, tmpl, rule, anchor, 1)
	testhelper.SeedInstance(t, pool, tmpl, rule, anchor.AddDate(0, 0, 7), 2)

	n, err := repo.DeleteBySeries(ctx, rule.OriginalSeriesID)
	if err != nil {
		t.Fatalf("DeleteBySeries: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted count: got %d, want 2", n)
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
