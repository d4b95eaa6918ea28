package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventInstance is one materialized occurrence of a recurring template.
// OriginalInstanceStartTime is the position the occurrence holds in the
// series and never changes; ActualStartTime/ActualEndTime reflect any
// exception that moved the occurrence. Content fields (name, location, ...)
// are NOT stored here; they are resolved at read time from the template
// plus the exception overlay.
type EventInstance struct {
	ID                        uuid.UUID
	BaseRecurringEventID      uuid.UUID
	RecurrenceRuleID          uuid.UUID
	OriginalSeriesID          uuid.UUID
	OrganizationID            uuid.UUID
	OriginalInstanceStartTime time.Time
	ActualStartTime           time.Time
	ActualEndTime             time.Time
	IsCancelled               bool
	SequenceNumber            int
	TotalCount                *int
	Version                   int
	GeneratedAt               time.Time
	LastUpdatedAt             *time.Time
}

// ResolvedInstance is an EventInstance merged with its template's content and
// any exception overrides. Field precedence: exception > instance > template.
type ResolvedInstance struct {
	ID                        uuid.UUID
	BaseRecurringEventID      uuid.UUID
	RecurrenceRuleID          uuid.UUID
	OriginalSeriesID          uuid.UUID
	OrganizationID            uuid.UUID
	OriginalInstanceStartTime time.Time
	ActualStartTime           time.Time
	ActualEndTime             time.Time
	IsCancelled               bool
	SequenceNumber            int
	TotalCount                *int
	Version                   int
	GeneratedAt               time.Time
	LastUpdatedAt             *time.Time

	// Content inherited from the template, possibly overridden.
	Name           string
	Description    *string
	Location       *string
	AllDay         bool
	IsPublic       bool
	IsRegisterable bool
	CreatorID      uuid.UUID
	UpdaterID      *uuid.UUID

	// Exception metadata, present when an exception was applied.
	HasExceptions      bool
	AppliedException   *ExceptionData
	ExceptionCreatedBy *uuid.UUID
	ExceptionCreatedAt *time.Time
}

// InstanceFilter contains filtering/pagination parameters for instance range
// queries. The time range is half-open: [From, To).
type InstanceFilter struct {
	OrganizationID uuid.UUID
	From           time.Time
	To             time.Time
	TemplateIDs    []uuid.UUID
	SeriesID       *uuid.UUID
	ExcludeIDs     []uuid.UUID
	WithCancelled  bool
	Limit          uint64
	Offset         uint64
}

// ResolvedEvent is the common shape participation queries return for both
// standalone events and resolved recurring instances.
type ResolvedEvent struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Description    *string
	Location       *string
	StartAt        time.Time
	EndAt          time.Time
	AllDay         bool
	IsPublic       bool
	IsRegisterable bool
	IsInstance     bool
	BaseEventID    *uuid.UUID
	SequenceNumber *int
}
