package model

import (
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
)

// RecurrenceSpecInput is the GraphQL input for a recurrence schedule.
type RecurrenceSpecInput struct {
	Frequency  domain.Frequency `json:"frequency"`
	Interval   *int             `json:"interval,omitempty"`
	ByDay      []string         `json:"byDay,omitempty"`
	ByMonth    []int            `json:"byMonth,omitempty"`
	ByMonthDay []int            `json:"byMonthDay,omitempty"`
	Count      *int             `json:"count,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
	Never      *bool            `json:"never,omitempty"`
}

// ToSpec converts the input to the engine's spec type.
func (i RecurrenceSpecInput) ToSpec() recurrence.Spec {
	spec := recurrence.Spec{
		Frequency:  i.Frequency,
		ByDay:      i.ByDay,
		ByMonth:    i.ByMonth,
		ByMonthDay: i.ByMonthDay,
		Count:      i.Count,
		EndDate:    i.EndDate,
	}
	if i.Interval != nil {
		spec.Interval = *i.Interval
	}
	if i.Never != nil {
		spec.Never = *i.Never
	}
	return spec
}

// EventPatchInput is the GraphQL input for partial event updates.
// Nil fields are left untouched.
type EventPatchInput struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Location       *string    `json:"location,omitempty"`
	StartAt        *time.Time `json:"startAt,omitempty"`
	EndAt          *time.Time `json:"endAt,omitempty"`
	AllDay         *bool      `json:"allDay,omitempty"`
	IsPublic       *bool      `json:"isPublic,omitempty"`
	IsRegisterable *bool      `json:"isRegisterable,omitempty"`
}

// ToPatch converts the input to the domain patch type.
func (i EventPatchInput) ToPatch() domain.EventPatch {
	return domain.EventPatch{
		Name:           i.Name,
		Description:    i.Description,
		Location:       i.Location,
		StartAt:        i.StartAt,
		EndAt:          i.EndAt,
		AllDay:         i.AllDay,
		IsPublic:       i.IsPublic,
		IsRegisterable: i.IsRegisterable,
	}
}

// SeriesPayload pairs a series template with its active rule.
type SeriesPayload struct {
	Template *domain.Event          `json:"template"`
	Rule     *domain.RecurrenceRule `json:"rule"`
}

// DeleteSummary reports what a destructive mutation removed.
type DeleteSummary struct {
	Instances   int `json:"instances"`
	Exceptions  int `json:"exceptions"`
	ActionItems int `json:"actionItems"`
	Volunteers  int `json:"volunteers"`
	Rules       int `json:"rules"`
	Templates   int `json:"templates"`
}
