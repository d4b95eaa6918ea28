package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationWindow tracks how far into the future an organization's recurring
// events have been materialized, and when the background worker last touched
// the organization. One row per organization.
type GenerationWindow struct {
	ID                   uuid.UUID
	OrganizationID       uuid.UUID
	HotWindowMonthsAhead int
	CurrentWindowEndDate time.Time
	LastProcessedAt      time.Time
	ProcessingPriority   int
	IsEnabled            bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// NeedsProcessing reports whether the window has fallen behind its configured
// horizon and has not been processed within the cooldown period.
func (w *GenerationWindow) NeedsProcessing(now time.Time, lookAhead time.Duration, cooldown time.Duration) bool {
	if !w.IsEnabled {
		return false
	}
	if w.CurrentWindowEndDate.After(now.Add(lookAhead)) {
		return false
	}
	return w.LastProcessedAt.Before(now.Add(-cooldown))
}
