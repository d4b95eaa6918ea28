package recurrence

import (
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// DeriveForNewStart re-anchors a rule at a new series start, used when a
// "this and following" edit splits a series: the tail becomes a fresh series
// whose rule starts at the split occurrence. A count-based rule keeps only
// the occurrences that remain after consumed positions; an end-date rule
// keeps its end date.
func DeriveForNewStart(rule *domain.RecurrenceRule, newStart time.Time, consumed int) (Spec, error) {
	spec := Spec{
		Frequency:  rule.Frequency,
		Interval:   rule.Interval,
		ByDay:      append([]string(nil), rule.ByDay...),
		ByMonth:    append([]int(nil), rule.ByMonth...),
		ByMonthDay: append([]int(nil), rule.ByMonthDay...),
	}
	switch {
	case rule.Count != nil:
		remaining := *rule.Count - consumed
		if remaining < 1 {
			return Spec{}, domain.NewValidationError("count", "No occurrences remain after the split point")
		}
		spec.Count = &remaining
	case rule.RecurrenceEndDate != nil:
		if !rule.RecurrenceEndDate.After(newStart) {
			return Spec{}, domain.NewValidationError("endDate", "Recurrence end date must be after event start date")
		}
		end := *rule.RecurrenceEndDate
		spec.EndDate = &end
	default:
		spec.Never = true
	}
	return spec, nil
}
