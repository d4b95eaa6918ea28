package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventException is a sparse per-occurrence override, keyed by the template
// and the occurrence's original start time. Only the fields the user actually
// changed are stored; everything else keeps inheriting from the template, so
// later template edits flow through to untouched fields.
type EventException struct {
	ID                uuid.UUID
	RecurringEventID  uuid.UUID
	InstanceStartTime time.Time
	OrganizationID    uuid.UUID
	Data              ExceptionData
	CreatorID         uuid.UUID
	UpdaterID         *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Key returns the lookup key matching this exception to its occurrence.
func (e *EventException) Key() string {
	return ExceptionKey(e.RecurringEventID, e.InstanceStartTime)
}

// ExceptionKey builds the canonical (template, original start) lookup key.
// The start time is rendered in UTC so the same occurrence always produces
// the same key regardless of the location attached to the time value.
func ExceptionKey(recurringEventID uuid.UUID, instanceStart time.Time) string {
	return recurringEventID.String() + ":" + instanceStart.UTC().Format(time.RFC3339Nano)
}

// ExceptionData holds the overridable occurrence fields. Nil means "not
// overridden, inherit from the template". It round-trips through a jsonb
// column, so absent keys and nil pointers are the same thing.
type ExceptionData struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Location       *string    `json:"location,omitempty"`
	StartAt        *time.Time `json:"startAt,omitempty"`
	EndAt          *time.Time `json:"endAt,omitempty"`
	AllDay         *bool      `json:"allDay,omitempty"`
	IsPublic       *bool      `json:"isPublic,omitempty"`
	IsRegisterable *bool      `json:"isRegisterable,omitempty"`
	IsCancelled    *bool      `json:"isCancelled,omitempty"`
}
