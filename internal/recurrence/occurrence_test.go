package recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

func testRule(freq domain.Frequency, interval int, anchor time.Time) *domain.RecurrenceRule {
	return &domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: uuid.New(),
		OriginalSeriesID:     uuid.New(),
		OrganizationID:       uuid.New(),
		Frequency:            freq,
		Interval:             interval,
		RecurrenceStartDate:  anchor,
	}
}

func wideWindow(anchor time.Time) Options {
	return Options{WindowStart: anchor.AddDate(-1, 0, 0), WindowEnd: anchor.AddDate(5, 0, 0)}
}

func starts(exp Expansion) []time.Time {
	out := make([]time.Time, len(exp.Occurrences))
	for i, o := range exp.Occurrences {
		out[i] = o.Start
	}
	return out
}

func wantStarts(t *testing.T, exp Expansion, want []time.Time) {
	t.Helper()
	got := starts(exp)
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandDailyWithCount(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyDaily, 1, anchor)
	rule.Count = intPtr(5)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		anchor,
		anchor.AddDate(0, 0, 1),
		anchor.AddDate(0, 0, 2),
		anchor.AddDate(0, 0, 3),
		anchor.AddDate(0, 0, 4),
	})
	for i, o := range exp.Occurrences {
		if o.SequenceNumber != i+1 {
			t.Errorf("sequence[%d] = %d, want %d", i, o.SequenceNumber, i+1)
		}
	}
	if exp.TotalCount == nil || *exp.TotalCount != 5 {
		t.Errorf("TotalCount = %v, want 5", exp.TotalCount)
	}
}

func TestExpandWeeklyByDayWithEndDate(t *testing.T) {
	t.Parallel()

	// Mondays and Wednesdays for four weeks, anchored on a Monday.
	anchor := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyWeekly, 1, anchor)
	rule.ByDay = []string{"MO", "WE"}
	end := time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)
	rule.RecurrenceEndDate = &end

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	day := func(d int) time.Time { return time.Date(2024, 6, d, 10, 0, 0, 0, time.UTC) }
	wantStarts(t, exp, []time.Time{
		day(3), day(5), day(10), day(12), day(17), day(19), day(24), day(26),
	})
	if exp.TotalCount == nil || *exp.TotalCount != 8 {
		t.Errorf("TotalCount = %v, want 8", exp.TotalCount)
	}
}

func TestExpandWeeklyIntervalSkipsOffWeeks(t *testing.T) {
	t.Parallel()

	// Every second Monday.
	anchor := time.Date(2025, 1, 6, 18, 30, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyWeekly, 2, anchor)
	rule.ByDay = []string{"MO"}
	rule.Count = intPtr(3)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		anchor,
		time.Date(2025, 1, 20, 18, 30, 0, 0, time.UTC),
		time.Date(2025, 2, 3, 18, 30, 0, 0, time.UTC),
	})
}

func TestExpandMonthlySecondWednesday(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyMonthly, 1, anchor)
	rule.ByDay = []string{"2WE"}
	rule.Count = intPtr(3)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC),
	})
}

func TestExpandMonthlyLastSunday(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 28, 11, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyMonthly, 1, anchor)
	rule.ByDay = []string{"-1SU"}
	rule.Count = intPtr(3)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 1, 28, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 25, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 11, 0, 0, 0, time.UTC),
	})
}

func TestExpandMonthlyDay31SkipsShortMonths(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyMonthly, 1, anchor)
	rule.ByMonthDay = []int{31}
	rule.Count = intPtr(4)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 31, 8, 0, 0, 0, time.UTC),
	})
}

func TestExpandYearlyByMonthAndDay(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyYearly, 1, anchor)
	rule.ByMonth = []int{3}
	rule.ByMonthDay = []int{15}
	rule.Count = intPtr(3)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	})
}

func TestExpandYearlyLeapDay(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyYearly, 1, anchor)
	rule.Count = intPtr(2)

	exp, err := Expand(rule, Options{
		WindowStart: anchor,
		WindowEnd:   anchor.AddDate(10, 0, 0),
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC),
	})
}

func TestExpandSequenceNumbersStableAcrossWindows(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyDaily, 1, anchor)
	rule.Count = intPtr(20)

	second, err := Expand(rule, Options{
		WindowStart: anchor.AddDate(0, 0, 10),
		WindowEnd:   anchor.AddDate(0, 0, 15),
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(second.Occurrences) != 5 {
		t.Fatalf("got %d occurrences, want 5", len(second.Occurrences))
	}
	if got := second.Occurrences[0].SequenceNumber; got != 11 {
		t.Errorf("first sequence in later window = %d, want 11", got)
	}
}

func TestExpandNeverEndingStopsAtWindow(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyDaily, 1, anchor)

	exp, err := Expand(rule, Options{
		WindowStart: anchor,
		WindowEnd:   anchor.AddDate(0, 0, 30),
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(exp.Occurrences) != 30 {
		t.Errorf("got %d occurrences, want 30", len(exp.Occurrences))
	}
	if exp.TotalCount != nil {
		t.Errorf("TotalCount = %v, want nil for never-ending rule", *exp.TotalCount)
	}
}

func TestExpandPerRunCap(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyDaily, 1, anchor)

	exp, err := Expand(rule, Options{
		WindowStart: anchor,
		WindowEnd:   anchor.AddDate(20, 0, 0),
		MaxPerRun:   50,
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(exp.Occurrences) != 50 {
		t.Errorf("got %d occurrences, want 50", len(exp.Occurrences))
	}
	if !exp.Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestExpandRejectsInvertedWindow(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyDaily, 1, anchor)

	_, err := Expand(rule, Options{WindowStart: anchor, WindowEnd: anchor.AddDate(0, 0, -1)})
	if err == nil {
		t.Fatal("Expand() expected error for inverted window")
	}
}

func TestExpandCountCappedByEndDateWalk(t *testing.T) {
	t.Parallel()

	// End-date rule whose window ends long before the series does: the
	// total is still the full series length.
	anchor := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyWeekly, 1, anchor)
	end := anchor.AddDate(0, 0, 7*9)
	rule.RecurrenceEndDate = &end

	exp, err := Expand(rule, Options{
		WindowStart: anchor,
		WindowEnd:   anchor.AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(exp.Occurrences) != 2 {
		t.Errorf("got %d occurrences, want 2", len(exp.Occurrences))
	}
	if exp.TotalCount == nil || *exp.TotalCount != 10 {
		t.Errorf("TotalCount = %v, want 10", exp.TotalCount)
	}
}

func TestExpandNeverMatchingRuleTerminates(t *testing.T) {
	t.Parallel()

	// Every 12 months from February, on day 30: no period ever contains the
	// requested day. The walk must stop instead of hunting forever.
	anchor := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyMonthly, 12, anchor)
	rule.ByMonthDay = []int{30}

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(exp.Occurrences) != 0 {
		t.Errorf("got %d occurrences, want 0", len(exp.Occurrences))
	}
}

func TestExpandYearlyOrdinalByDay(t *testing.T) {
	t.Parallel()

	// First Monday of September, every year.
	anchor := time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)
	rule := testRule(domain.FrequencyYearly, 1, anchor)
	rule.ByMonth = []int{9}
	rule.ByDay = []string{"1MO"}
	rule.Count = intPtr(3)

	exp, err := Expand(rule, wideWindow(anchor))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	wantStarts(t, exp, []time.Time{
		time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
	})
}
