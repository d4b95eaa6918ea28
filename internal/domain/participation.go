package domain

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerBinding links a user's volunteering commitment to an event target.
// Exactly one targeting mode applies per row, checked in this order:
//   - InstanceID set: one specific materialized occurrence.
//   - IsTemplate set with EventID: the whole series, every occurrence.
//   - EventID alone: a standalone event.
type VolunteerBinding struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EventID     *uuid.UUID
	InstanceID  *uuid.UUID
	IsTemplate  bool
	HasAccepted bool
	CreatedAt   time.Time
}

// ActionItem is a unit of follow-up work attached to an event or to one
// materialized occurrence of a series.
type ActionItem struct {
	ID                       uuid.UUID
	OrganizationID           uuid.UUID
	Title                    string
	EventID                  *uuid.UUID
	RecurringEventInstanceID *uuid.UUID
	AssignedTo               *uuid.UUID
	IsCompleted              bool
	CreatedAt                time.Time
	UpdatedAt                *time.Time
}
