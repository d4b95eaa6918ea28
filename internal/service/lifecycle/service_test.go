package lifecycle

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// deps bundles one mock per dependency. Delete methods default to removing
// nothing; tests override the ones they assert against.
type deps struct {
	events      *eventRepoMock
	rules       *ruleRepoMock
	instances   *instanceRepoMock
	exceptions  *exceptionRepoMock
	actionItems *actionItemRepoMock
	volunteers  *volunteerRepoMock
	attachments *attachmentRepoMock
	mat         *materializerMock
	tx          *txManagerMock
}

func newDeps() *deps {
	return &deps{
		events:      &eventRepoMock{},
		rules:       &ruleRepoMock{},
		instances:   &instanceRepoMock{},
		exceptions:  &exceptionRepoMock{},
		actionItems: &actionItemRepoMock{},
		volunteers:  &volunteerRepoMock{},
		attachments: &attachmentRepoMock{},
		mat:         &materializerMock{},
		tx:          &txManagerMock{},
	}
}

func (d *deps) service() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, d.events, d.rules, d.instances, d.exceptions,
		d.actionItems, d.volunteers, d.attachments, d.mat, d.tx)
}

func ptr[T any](v T) *T { return &v }

// seriesFixture is a weekly count-based series with one instance at the
// third position.
type seriesFixture struct {
	template *domain.Event
	rule     *domain.RecurrenceRule
	inst     *domain.EventInstance
}

func newSeriesFixture() seriesFixture {
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	templateID := uuid.New()
	ruleID := uuid.New()

	template := &domain.Event{
		ID:                  templateID,
		OrganizationID:      uuid.New(),
		Name:                "Weekly Standup",
		StartAt:             anchor,
		EndAt:               anchor.Add(time.Hour),
		IsRecurringTemplate: true,
		CreatorID:           uuid.New(),
		CreatedAt:           anchor.AddDate(0, -1, 0),
	}
	rule := &domain.RecurrenceRule{
		ID:                   ruleID,
		BaseRecurringEventID: templateID,
		OriginalSeriesID:     ruleID,
		OrganizationID:       template.OrganizationID,
		Frequency:            domain.FrequencyWeekly,
		Interval:             1,
		Count:                ptr(10),
		RecurrenceStartDate:  anchor,
		RuleString:           "RRULE:FREQ=WEEKLY;INTERVAL=1;COUNT=10",
		CreatorID:            template.CreatorID,
		CreatedAt:            template.CreatedAt,
	}
	inst := &domain.EventInstance{
		ID:                        uuid.New(),
		BaseRecurringEventID:      templateID,
		RecurrenceRuleID:          ruleID,
		OriginalSeriesID:          ruleID,
		OrganizationID:            template.OrganizationID,
		OriginalInstanceStartTime: anchor.AddDate(0, 0, 14),
		ActualStartTime:           anchor.AddDate(0, 0, 14),
		ActualEndTime:             anchor.AddDate(0, 0, 14).Add(time.Hour),
		SequenceNumber:            3,
		TotalCount:                ptr(10),
		Version:                   1,
		GeneratedAt:               anchor,
	}
	return seriesFixture{template: template, rule: rule, inst: inst}
}
