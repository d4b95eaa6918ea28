package recurrence

import (
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Normalize resolves a count-based rule into an end-date-based one so the
// expansion walk has a single termination shape to deal with. The returned
// rule is a copy; the stored rule keeps its count for display. Rules without
// a count come back unchanged. A rule carrying both a count and an end date
// keeps whichever bound falls first: the end date caps generation even when
// the count would run past it, and the count is dropped so the series total
// comes from the walk instead.
func Normalize(rule *domain.RecurrenceRule) (*domain.RecurrenceRule, error) {
	if rule.Count == nil {
		return rule, nil
	}
	if *rule.Count < 1 {
		return nil, domain.NewValidationError("count", "Count must be a positive integer")
	}

	end, err := CompletionDate(rule)
	if err != nil {
		return nil, err
	}
	out := *rule
	if rule.RecurrenceEndDate != nil && rule.RecurrenceEndDate.Before(end) {
		out.Count = nil
		return &out, nil
	}
	out.RecurrenceEndDate = &end
	return &out, nil
}

// CompletionDate computes when a count-based rule's last occurrence falls.
// For plain rules this is anchor + (count-1) interval steps; for rules with
// BY* filters it walks the candidate positions.
func CompletionDate(rule *domain.RecurrenceRule) (time.Time, error) {
	if rule.Count == nil {
		return time.Time{}, domain.NewValidationError("count", "Rule has no count to resolve")
	}
	count := *rule.Count
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}
	anchor := rule.RecurrenceStartDate.UTC()

	if len(rule.ByDay) == 0 && len(rule.ByMonth) == 0 && len(rule.ByMonthDay) == 0 {
		steps := (count - 1) * interval
		switch rule.Frequency {
		case domain.FrequencyDaily:
			return anchor.AddDate(0, 0, steps), nil
		case domain.FrequencyWeekly:
			return anchor.AddDate(0, 0, 7*steps), nil
		case domain.FrequencyMonthly:
			return anchor.AddDate(0, steps, 0), nil
		case domain.FrequencyYearly:
			return anchor.AddDate(steps, 0, 0), nil
		default:
			return time.Time{}, domain.NewValidationError("frequency", "Invalid frequency: "+rule.Frequency.String())
		}
	}

	iter, err := newCandidates(rule, anchor, interval)
	if err != nil {
		return time.Time{}, err
	}
	seen := 0
	for i := 0; i < maxIterationsUnbounded; i++ {
		t, ok := iter()
		if !ok {
			break
		}
		if t.Before(anchor) {
			continue
		}
		seen++
		if seen == count {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError("count", "Count is too large to resolve into an end date")
}

// InstancesPerMonth estimates how many occurrences a rule produces in one
// month, used by the worker to budget generation runs.
func InstancesPerMonth(rule *domain.RecurrenceRule) float64 {
	interval := float64(rule.Interval)
	if interval < 1 {
		interval = 1
	}
	switch rule.Frequency {
	case domain.FrequencyDaily:
		return 30 / interval
	case domain.FrequencyWeekly:
		per := 1.0
		if len(rule.ByDay) > 0 {
			per = float64(len(rule.ByDay))
		}
		return per * 4.33 / interval
	case domain.FrequencyMonthly:
		return 1 / interval
	case domain.FrequencyYearly:
		return 1 / (12 * interval)
	default:
		return 0
	}
}

// EstimateCount estimates how many occurrences fall between from and to.
func EstimateCount(rule *domain.RecurrenceRule, from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := to.Sub(from).Hours() / (24 * 30)
	n := int(InstancesPerMonth(rule)*months + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
