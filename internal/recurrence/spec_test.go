package recurrence

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestCompileCanonicalString(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "weekly with days and count",
			spec: Spec{
				Frequency: domain.FrequencyWeekly,
				Interval:  2,
				ByDay:     []string{"MO", "WE"},
				Count:     intPtr(10),
			},
			want: "RRULE:FREQ=WEEKLY;INTERVAL=2;COUNT=10;BYDAY=MO,WE",
		},
		{
			name: "daily never ending defaults interval",
			spec: Spec{
				Frequency: domain.FrequencyDaily,
				Never:     true,
			},
			want: "RRULE:FREQ=DAILY;INTERVAL=1",
		},
		{
			name: "monthly ordinal day with end date",
			spec: Spec{
				Frequency: domain.FrequencyMonthly,
				Interval:  1,
				ByDay:     []string{"2WE"},
				EndDate:   timePtr(time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)),
			},
			want: "RRULE:FREQ=MONTHLY;INTERVAL=1;UNTIL=20250603T100000Z;BYDAY=2WE",
		},
		{
			name: "yearly with month and month day",
			spec: Spec{
				Frequency:  domain.FrequencyYearly,
				Interval:   1,
				ByMonth:    []int{3},
				ByMonthDay: []int{15},
				Count:      intPtr(5),
			},
			want: "RRULE:FREQ=YEARLY;INTERVAL=1;COUNT=5;BYMONTH=3;BYMONTHDAY=15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compile(tt.spec, anchor)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got.Canonical != tt.want {
				t.Errorf("Compile() canonical = %q, want %q", got.Canonical, tt.want)
			}
		})
	}
}

func TestCompileValidation(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		spec        Spec
		wantField   string
		wantMessage string
	}{
		{
			name: "end date before start",
			spec: Spec{
				Frequency: domain.FrequencyWeekly,
				EndDate:   timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			},
			wantField:   "endDate",
			wantMessage: "Recurrence end date must be after event start date",
		},
		{
			name: "bad day code",
			spec: Spec{
				Frequency: domain.FrequencyWeekly,
				ByDay:     []string{"MO", "XX"},
				Never:     true,
			},
			wantField:   "byDay",
			wantMessage: "Invalid day code: XX",
		},
		{
			name: "yearly never ending",
			spec: Spec{
				Frequency: domain.FrequencyYearly,
				Never:     true,
			},
			wantField: "never",
		},
		{
			name: "no termination",
			spec: Spec{
				Frequency: domain.FrequencyDaily,
			},
			wantField: "recurrence",
		},
		{
			name: "both count and end date",
			spec: Spec{
				Frequency: domain.FrequencyDaily,
				Count:     intPtr(3),
				EndDate:   timePtr(anchor.AddDate(0, 1, 0)),
			},
			wantField: "recurrence",
		},
		{
			name: "negative interval",
			spec: Spec{
				Frequency: domain.FrequencyDaily,
				Interval:  -2,
				Never:     true,
			},
			wantField: "interval",
		},
		{
			name: "ordinal day code on weekly",
			spec: Spec{
				Frequency: domain.FrequencyWeekly,
				ByDay:     []string{"2WE"},
				Never:     true,
			},
			wantField: "byDay",
		},
		{
			name: "month out of range",
			spec: Spec{
				Frequency: domain.FrequencyYearly,
				ByMonth:   []int{13},
				Count:     intPtr(1),
			},
			wantField: "byMonth",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compile(tt.spec, anchor)
			if err == nil {
				t.Fatal("Compile() expected error, got nil")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Compile() error = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Compile() error type = %T, want *ValidationError", err)
			}
			found := false
			for _, fe := range verr.Errors {
				if fe.Field != tt.wantField {
					continue
				}
				found = true
				if tt.wantMessage != "" && fe.Message != tt.wantMessage {
					t.Errorf("field %s message = %q, want %q", fe.Field, fe.Message, tt.wantMessage)
				}
			}
			if !found {
				t.Errorf("Compile() errors = %v, want field %q", verr.Errors, tt.wantField)
			}
		})
	}
}

func TestCompileCollectsAllErrors(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Frequency:  domain.FrequencyWeekly,
		Interval:   -1,
		ByDay:      []string{"ZZ"},
		ByMonthDay: []int{40},
	}
	_, err := Compile(spec, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Compile() error = %v, want *ValidationError", err)
	}
	if len(verr.Errors) < 4 {
		t.Errorf("Compile() collected %d errors, want at least 4: %v", len(verr.Errors), verr.Errors)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	in := Spec{
		Frequency: domain.FrequencyWeekly,
		Interval:  2,
		ByDay:     []string{"MO", "WE"},
		Count:     intPtr(8),
	}
	compiled, err := Compile(in, anchor)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	out, err := Parse(compiled.Canonical)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out.Frequency != in.Frequency || out.Interval != in.Interval {
		t.Errorf("Parse() = %+v, want frequency %s interval %d", out, in.Frequency, in.Interval)
	}
	if out.Count == nil || *out.Count != 8 {
		t.Errorf("Parse() count = %v, want 8", out.Count)
	}
	if strings.Join(out.ByDay, ",") != "MO,WE" {
		t.Errorf("Parse() byDay = %v, want [MO WE]", out.ByDay)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Parse("RRULE:FREQ=SOMETIMES"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Parse() error = %v, want ErrValidation", err)
	}
}
