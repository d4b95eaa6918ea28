package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
)

// ConvertToRecurring turns a standalone event into a recurring template with
// the given recurrence. The event's own start time anchors the series. The
// returned event carries the template flag; instance rows are populated by
// the next materializer run.
func (s *Service) ConvertToRecurring(ctx context.Context, eventID uuid.UUID, spec recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("load event: %w", err)
	}
	if event.IsRecurringTemplate {
		return nil, nil, fmt.Errorf("event %s is already a recurring template: %w", eventID, domain.ErrConflict)
	}

	compiled, err := recurrence.Compile(spec, event.StartAt)
	if err != nil {
		return nil, nil, err
	}

	ruleID := uuid.New()
	rule := &domain.RecurrenceRule{
		ID:                   ruleID,
		BaseRecurringEventID: eventID,
		// The first rule of a series names the series.
		OriginalSeriesID:    ruleID,
		OrganizationID:      event.OrganizationID,
		Frequency:           compiled.Spec.Frequency,
		Interval:            compiled.Spec.Interval,
		ByDay:               compiled.Spec.ByDay,
		ByMonth:             compiled.Spec.ByMonth,
		ByMonthDay:          compiled.Spec.ByMonthDay,
		Count:               compiled.Spec.Count,
		RecurrenceStartDate: event.StartAt,
		RecurrenceEndDate:   compiled.Spec.EndDate,
		RuleString:          compiled.Canonical,
		CreatorID:           actorID,
		CreatedAt:           time.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.events.MarkTemplate(txCtx, eventID, actorID); err != nil {
			return fmt.Errorf("mark template: %w", err)
		}
		if err := s.rules.Create(txCtx, rule); err != nil {
			return fmt.Errorf("create rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	event.IsRecurringTemplate = true
	event.UpdaterID = &actorID

	s.log.InfoContext(ctx, "event converted to recurring series",
		slog.String("event_id", eventID.String()),
		slog.String("rule_id", ruleID.String()),
		slog.String("rule", compiled.Canonical),
	)

	s.materializeEagerly(ctx, eventID)
	return event, rule, nil
}

// materializeEagerly fills the new template's hot window right away so the
// first read does not see an empty series. Failure is not fatal: the worker
// picks the template up on its next sweep.
func (s *Service) materializeEagerly(ctx context.Context, templateID uuid.UUID) {
	if s.mat == nil {
		return
	}
	if _, err := s.mat.MaterializeDefaultWindow(ctx, templateID); err != nil {
		s.log.WarnContext(ctx, "eager materialization failed, deferring to worker",
			slog.String("template_id", templateID.String()),
			slog.String("error", err.Error()),
		)
	}
}
