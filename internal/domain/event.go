package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar event owned by an organization. A standalone event has
// IsRecurringTemplate=false and its StartAt/EndAt are the real occurrence
// times. A recurring template has IsRecurringTemplate=true; its StartAt/EndAt
// anchor the series and the real occurrences live in recurring_event_instances.
type Event struct {
	ID                  uuid.UUID
	OrganizationID      uuid.UUID
	Name                string
	Description         *string
	Location            *string
	StartAt             time.Time
	EndAt               time.Time
	AllDay              bool
	IsPublic            bool
	IsRegisterable      bool
	IsRecurringTemplate bool
	CreatorID           uuid.UUID
	UpdaterID           *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// Duration returns the length of a single occurrence.
func (e *Event) Duration() time.Duration {
	return e.EndAt.Sub(e.StartAt)
}

// EventPatch carries optional content updates for an event or an occurrence.
// Nil fields are left untouched.
type EventPatch struct {
	Name           *string
	Description    *string
	Location       *string
	StartAt        *time.Time
	EndAt          *time.Time
	AllDay         *bool
	IsPublic       *bool
	IsRegisterable *bool
}

// IsZero returns true if the patch changes nothing.
func (p EventPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Location == nil &&
		p.StartAt == nil && p.EndAt == nil && p.AllDay == nil &&
		p.IsPublic == nil && p.IsRegisterable == nil
}

// EventAttachment is a file attached to an event (stored out of band; only
// the object key and mime type are tracked here).
type EventAttachment struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	ObjectKey string
	MimeType  string
	CreatedAt time.Time
}
