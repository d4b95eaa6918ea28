package rule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/rule"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/testhelper"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

func newRepo(t *testing.T) (*rule.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return rule.New(pool), pool
}

func TestRepo_Create_ThenGetByTemplateID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))

	count := 10
	input := &domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: tmpl.ID,
		OrganizationID:       org.ID,
		Frequency:            domain.FrequencyWeekly,
		Interval:             2,
		ByDay:                []string{"MO", "WE"},
		ByMonth:              []int{},
		ByMonthDay:           []int{},
		Count:                &count,
		RecurrenceStartDate:  tmpl.StartAt,
		RuleString:           "RRULE:FREQ=WEEKLY;INTERVAL=2;COUNT=10;BYDAY=MO,WE",
		CreatorID:            user.ID,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}
	input.OriginalSeriesID = input.ID

	if err := repo.Create(ctx, input); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByTemplateID(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("GetByTemplateID: unexpected error: %v", err)
	}
	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
	if got.Frequency != domain.FrequencyWeekly {
		t.Errorf("Frequency mismatch: got %s", got.Frequency)
	}
	if got.Interval != 2 {
		t.Errorf("Interval mismatch: got %d, want 2", got.Interval)
	}
	if len(got.ByDay) != 2 || got.ByDay[0] != "MO" || got.ByDay[1] != "WE" {
		t.Errorf("ByDay mismatch: got %v", got.ByDay)
	}
	if got.Count == nil || *got.Count != 10 {
		t.Errorf("Count mismatch: got %v", got.Count)
	}
	if got.LatestInstanceDate != nil {
		t.Errorf("fresh rule should have no watermark, got %v", got.LatestInstanceDate)
	}
	if got.RuleString != input.RuleString {
		t.Errorf("RuleString mismatch: got %q", got.RuleString)
	}
}

func TestRepo_Create_SecondRuleForTemplate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	existing := testhelper.SeedRule(t, pool, tmpl)

	dup := &domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: tmpl.ID,
		OriginalSeriesID:     existing.OriginalSeriesID,
		OrganizationID:       org.ID,
		Frequency:            domain.FrequencyDaily,
		Interval:             1,
		ByDay:                []string{},
		ByMonth:              []int{},
		ByMonthDay:           []int{},
		RecurrenceStartDate:  tmpl.StartAt,
		RuleString:           "RRULE:FREQ=DAILY;INTERVAL=1",
		CreatorID:            user.ID,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}

	// One rule per template is enforced by the schema.
	err := repo.Create(ctx, dup)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_GetByTemplateID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByTemplateID(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_ListBySeries_OrderedByStart(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)

	tmpl1 := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	first := testhelper.SeedRule(t, pool, tmpl1)

	// Second segment of the same logical series, shifted two months out.
	tmpl2 := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))
	second := &domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: tmpl2.ID,
		OriginalSeriesID:     first.OriginalSeriesID,
		OrganizationID:       org.ID,
		Frequency:            domain.FrequencyWeekly,
		Interval:             1,
		ByDay:                []string{},
		ByMonth:              []int{},
		ByMonthDay:           []int{},
		RecurrenceStartDate:  tmpl2.StartAt,
		RuleString:           "RRULE:FREQ=WEEKLY;INTERVAL=1",
		CreatorID:            user.ID,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second segment: %v", err)
	}

	got, err := repo.ListBySeries(ctx, first.OriginalSeriesID)
	if err != nil {
		t.Fatalf("ListBySeries: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rules in series, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("rules not ordered by start date: got [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestRepo_SetEndDate_ClearsCountAndCapsWatermark(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	seeded := testhelper.SeedRule(t, pool, tmpl)

	// Advance watermark past the end date we are about to set.
	beyond := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := repo.AdvanceWatermark(ctx, seeded.ID, beyond); err != nil {
		t.Fatalf("AdvanceWatermark: %v", err)
	}

	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.SetEndDate(ctx, seeded.ID, end, user.ID); err != nil {
		t.Fatalf("SetEndDate: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Count != nil {
		t.Errorf("Count should be cleared, got %v", got.Count)
	}
	if got.RecurrenceEndDate == nil || !got.RecurrenceEndDate.Equal(end) {
		t.Errorf("RecurrenceEndDate mismatch: got %v, want %s", got.RecurrenceEndDate, end)
	}
	if got.LatestInstanceDate == nil || !got.LatestInstanceDate.Equal(end) {
		t.Errorf("watermark should be pulled back to the end date, got %v", got.LatestInstanceDate)
	}
}

func TestRepo_SetEndDate_NilWatermarkStaysNil(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	seeded := testhelper.SeedRule(t, pool, tmpl)

	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.SetEndDate(ctx, seeded.ID, end, user.ID); err != nil {
		t.Fatalf("SetEndDate: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LatestInstanceDate != nil {
		t.Errorf("never-materialized rule should keep a nil watermark, got %v", got.LatestInstanceDate)
	}
}

func TestRepo_AdvanceWatermark_OnlyMovesForward(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	seeded := testhelper.SeedRule(t, pool, tmpl)

	far := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	near := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	if err := repo.AdvanceWatermark(ctx, seeded.ID, far); err != nil {
		t.Fatalf("AdvanceWatermark far: %v", err)
	}
	// A stale run reporting an earlier timestamp must not pull it back.
	if err := repo.AdvanceWatermark(ctx, seeded.ID, near); err != nil {
		t.Fatalf("AdvanceWatermark near: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LatestInstanceDate == nil || !got.LatestInstanceDate.Equal(far) {
		t.Errorf("watermark regressed: got %v, want %s", got.LatestInstanceDate, far)
	}
}

func TestRepo_DeleteBySeries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	org := testhelper.SeedOrganization(t, pool)
	user := testhelper.SeedUser(t, pool)
	tmpl := testhelper.SeedTemplate(t, pool, org.ID, user.ID, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	seeded := testhelper.SeedRule(t, pool, tmpl)

	n, err := repo.DeleteBySeries(ctx, seeded.OriginalSeriesID)
	if err != nil {
		t.Fatalf("DeleteBySeries: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	_, err = repo.GetByID(ctx, seeded.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
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
