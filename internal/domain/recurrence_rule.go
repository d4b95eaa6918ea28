package domain

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the base repetition unit of a recurrence rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// SeriesKind classifies how a recurrence rule terminates.
type SeriesKind string

const (
	SeriesNeverEnding  SeriesKind = "NEVER_ENDING"
	SeriesCountBased   SeriesKind = "COUNT_BASED"
	SeriesEndDateBased SeriesKind = "END_DATE_BASED"
)

func (k SeriesKind) String() string { return string(k) }

// RecurrenceRule describes how a recurring template expands into instances.
// Exactly one rule exists per template. OriginalSeriesID groups the rules of
// a logical series across "this and following" splits; for an unsplit series
// it equals the rule's own ID.
type RecurrenceRule struct {
	ID                   uuid.UUID
	BaseRecurringEventID uuid.UUID
	OriginalSeriesID     uuid.UUID
	OrganizationID       uuid.UUID
	Frequency            Frequency
	Interval             int
	ByDay                []string
	ByMonth              []int
	ByMonthDay           []int
	Count                *int
	RecurrenceStartDate  time.Time
	RecurrenceEndDate    *time.Time
	RuleString           string
	LatestInstanceDate   *time.Time
	CreatorID            uuid.UUID
	UpdaterID            *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// Kind reports how the rule terminates. A rule with both Count and
// RecurrenceEndDate set is treated as count-based; normalization resolves
// the count into a concrete end date before instances are generated.
func (r *RecurrenceRule) Kind() SeriesKind {
	if r.Count != nil {
		return SeriesCountBased
	}
	if r.RecurrenceEndDate != nil {
		return SeriesEndDateBased
	}
	return SeriesNeverEnding
}

// IsNeverEnding returns true if the rule has no count and no end date.
func (r *RecurrenceRule) IsNeverEnding() bool {
	return r.Count == nil && r.RecurrenceEndDate == nil
}
