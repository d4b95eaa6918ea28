// Package recurrence compiles user-supplied recurrence input into canonical
// RFC 5545 rule strings and expands stored rules into concrete occurrence
// times. It is pure computation: no storage, no clocks beyond the inputs.
package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// untilLayout renders UNTIL values the way the rest of the system stores
// them: UTC, second precision.
const untilLayout = "20060102T150405Z"

// Spec is the validated-input form of a recurrence rule, as supplied by a
// caller creating or editing a series. Exactly one of Count, EndDate, or
// Never must be set.
type Spec struct {
	Frequency  domain.Frequency
	Interval   int // 0 is treated as 1
	ByDay      []string
	ByMonth    []int
	ByMonthDay []int
	Count      *int
	EndDate    *time.Time
	Never      bool
}

// Compiled is the result of validating a Spec against a series anchor.
type Compiled struct {
	Spec      Spec
	Canonical string
}

// Compile validates spec against the series anchor (the template's start
// time) and produces the canonical rule string. All field problems are
// collected into a single ValidationError rather than failing on the first.
func Compile(spec Spec, anchor time.Time) (Compiled, error) {
	var errs []domain.FieldError

	if spec.Interval == 0 {
		spec.Interval = 1
	}
	if spec.Interval < 1 {
		errs = append(errs, domain.FieldError{Field: "interval", Message: "Interval must be a positive integer"})
	}

	if !spec.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: fmt.Sprintf("Invalid frequency: %s", spec.Frequency)})
	}

	bounds := 0
	if spec.Count != nil {
		bounds++
		if *spec.Count < 1 {
			errs = append(errs, domain.FieldError{Field: "count", Message: "Count must be a positive integer"})
		}
	}
	if spec.EndDate != nil {
		bounds++
		if !spec.EndDate.After(anchor) {
			errs = append(errs, domain.FieldError{Field: "endDate", Message: "Recurrence end date must be after event start date"})
		}
	}
	if spec.Never {
		bounds++
	}
	if bounds != 1 {
		errs = append(errs, domain.FieldError{Field: "recurrence", Message: "Exactly one of count, endDate, or never must be specified"})
	}
	if spec.Never && spec.Frequency == domain.FrequencyYearly {
		errs = append(errs, domain.FieldError{Field: "never", Message: "Yearly events cannot be never-ending; specify a count or an end date"})
	}

	for _, code := range spec.ByDay {
		ord, _, ok := parseDayCode(code)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "byDay", Message: fmt.Sprintf("Invalid day code: %s", code)})
			continue
		}
		if ord != 0 && spec.Frequency != domain.FrequencyMonthly && spec.Frequency != domain.FrequencyYearly {
			errs = append(errs, domain.FieldError{Field: "byDay", Message: fmt.Sprintf("Ordinal day code %s is only valid for monthly or yearly recurrence", code)})
		}
	}
	for _, m := range spec.ByMonth {
		if m < 1 || m > 12 {
			errs = append(errs, domain.FieldError{Field: "byMonth", Message: fmt.Sprintf("Invalid month: %d", m)})
		}
	}
	for _, d := range spec.ByMonthDay {
		if d < 1 || d > 31 {
			errs = append(errs, domain.FieldError{Field: "byMonthDay", Message: fmt.Sprintf("Invalid month day: %d", d)})
		}
	}

	if len(errs) > 0 {
		return Compiled{}, domain.NewValidationErrors(errs)
	}

	canonical, err := canonicalString(spec)
	if err != nil {
		return Compiled{}, err
	}
	if err := checkExpandable(spec, anchor); err != nil {
		return Compiled{}, err
	}

	return Compiled{Spec: spec, Canonical: canonical}, nil
}

// canonicalString renders the spec as an RFC 5545 rule string with a fixed
// field order, so equal specs always produce byte-identical strings.
func canonicalString(spec Spec) (string, error) {
	parts := []string{
		"FREQ=" + spec.Frequency.String(),
		"INTERVAL=" + strconv.Itoa(spec.Interval),
	}
	if spec.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*spec.Count))
	}
	if spec.EndDate != nil {
		parts = append(parts, "UNTIL="+spec.EndDate.UTC().Format(untilLayout))
	}
	if len(spec.ByDay) > 0 {
		parts = append(parts, "BYDAY="+strings.Join(spec.ByDay, ","))
	}
	if len(spec.ByMonth) > 0 {
		parts = append(parts, "BYMONTH="+joinInts(spec.ByMonth))
	}
	if len(spec.ByMonthDay) > 0 {
		parts = append(parts, "BYMONTHDAY="+joinInts(spec.ByMonthDay))
	}
	return "RRULE:" + strings.Join(parts, ";"), nil
}

// checkExpandable round-trips the spec through rrule-go so a rule that the
// wider ecosystem cannot evaluate is rejected at compile time instead of
// failing later inside the materializer.
func checkExpandable(spec Spec, anchor time.Time) error {
	opt := rrule.ROption{
		Freq:     rruleFreq(spec.Frequency),
		Interval: spec.Interval,
		Dtstart:  anchor.UTC(),
	}
	if spec.Count != nil {
		opt.Count = *spec.Count
	}
	if spec.EndDate != nil {
		opt.Until = spec.EndDate.UTC()
	}
	for _, code := range spec.ByDay {
		wd, ok := rruleWeekday(code)
		if !ok {
			return domain.NewValidationError("byDay", fmt.Sprintf("Invalid day code: %s", code))
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	opt.Bymonth = spec.ByMonth
	opt.Bymonthday = spec.ByMonthDay

	if _, err := rrule.NewRRule(opt); err != nil {
		return domain.NewValidationError("recurrence", err.Error())
	}
	return nil
}

func rruleFreq(f domain.Frequency) rrule.Frequency {
	switch f {
	case domain.FrequencyDaily:
		return rrule.DAILY
	case domain.FrequencyWeekly:
		return rrule.WEEKLY
	case domain.FrequencyMonthly:
		return rrule.MONTHLY
	default:
		return rrule.YEARLY
	}
}

// Parse rebuilds a Spec from a stored canonical rule string. It accepts any
// RFC 5545 rule string rrule-go can read, not only ones this package wrote.
func Parse(ruleString string) (Spec, error) {
	trimmed := strings.TrimPrefix(ruleString, "RRULE:")
	opt, err := rrule.StrToROption(trimmed)
	if err != nil {
		return Spec{}, domain.NewValidationError("ruleString", fmt.Sprintf("Invalid rule string: %v", err))
	}

	spec := Spec{Interval: opt.Interval}
	if spec.Interval == 0 {
		spec.Interval = 1
	}
	switch opt.Freq {
	case rrule.DAILY:
		spec.Frequency = domain.FrequencyDaily
	case rrule.WEEKLY:
		spec.Frequency = domain.FrequencyWeekly
	case rrule.MONTHLY:
		spec.Frequency = domain.FrequencyMonthly
	case rrule.YEARLY:
		spec.Frequency = domain.FrequencyYearly
	default:
		return Spec{}, domain.NewValidationError("ruleString", fmt.Sprintf("Unsupported frequency in rule string: %s", ruleString))
	}
	if opt.Count > 0 {
		c := opt.Count
		spec.Count = &c
	}
	if !opt.Until.IsZero() {
		u := opt.Until.UTC()
		spec.EndDate = &u
	}
	spec.Never = spec.Count == nil && spec.EndDate == nil
	for _, wd := range opt.Byweekday {
		spec.ByDay = append(spec.ByDay, dayCodeOf(wd))
	}
	spec.ByMonth = opt.Bymonth
	spec.ByMonthDay = opt.Bymonthday
	return spec, nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
