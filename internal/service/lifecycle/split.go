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

// UpdateThisAndFollowing edits a series from the given occurrence onward.
//
// An edit at the first occurrence that leaves the schedule alone is a plain
// template update: the whole series changes in place. Anything else splits
// the series: the old rule ends just before the occurrence, its rows from
// the occurrence onward are removed, and a forked template plus rule carry
// the edit forward under the same original series id. The fork's window is
// materialized eagerly, best effort.
func (s *Service) UpdateThisAndFollowing(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, newSpec *recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	if patch.IsZero() && newSpec == nil {
		return nil, nil, domain.NewValidationError("patch", "At least one field must be updated")
	}

	inst, err := s.instances.GetByID(ctx, instanceID)
	if err != nil {
		return nil, nil, fmt.Errorf("load instance: %w", err)
	}
	if inst.IsCancelled {
		return nil, nil, domain.NewValidationError("instanceId", "Cannot split a series at a cancelled occurrence")
	}

	oldRule, err := s.rules.GetByID(ctx, inst.RecurrenceRuleID)
	if err != nil {
		return nil, nil, fmt.Errorf("load rule: %w", err)
	}
	template, err := s.events.GetTemplate(ctx, inst.BaseRecurringEventID)
	if err != nil {
		return nil, nil, fmt.Errorf("load template: %w", err)
	}

	scheduleUntouched := newSpec == nil && patch.StartAt == nil && patch.EndAt == nil
	if scheduleUntouched && inst.OriginalInstanceStartTime.Equal(oldRule.RecurrenceStartDate) {
		return s.updateWholeSeries(ctx, template, patch, actorID)
	}
	return s.splitSeries(ctx, inst, oldRule, template, patch, newSpec, actorID)
}

// updateWholeSeries applies a content-only edit to the template itself; all
// occurrences without an overriding exception pick it up at resolve time.
func (s *Service) updateWholeSeries(ctx context.Context, template *domain.Event, patch domain.EventPatch, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	applyPatch(template, patch)
	template.UpdaterID = &actorID

	if err := s.events.Update(ctx, template); err != nil {
		return nil, nil, fmt.Errorf("update template: %w", err)
	}

	rule, err := s.rules.GetByTemplateID(ctx, template.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load rule: %w", err)
	}

	s.log.InfoContext(ctx, "series content updated",
		slog.String("template_id", template.ID.String()),
	)
	return template, rule, nil
}

func (s *Service) splitSeries(ctx context.Context, inst *domain.EventInstance, oldRule *domain.RecurrenceRule, template *domain.Event, patch domain.EventPatch, newSpec *recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	cut := inst.OriginalInstanceStartTime

	newStart := cut
	if patch.StartAt != nil {
		newStart = *patch.StartAt
	}
	duration := template.Duration()
	if patch.EndAt != nil {
		duration = patch.EndAt.Sub(newStart)
	}
	if duration <= 0 {
		return nil, nil, domain.NewValidationError("endAt", "Event end must be after event start")
	}

	spec := recurrence.Spec{}
	if newSpec != nil {
		spec = *newSpec
	} else {
		var err error
		spec, err = recurrence.DeriveForNewStart(oldRule, newStart, inst.SequenceNumber-1)
		if err != nil {
			return nil, nil, err
		}
	}
	compiled, err := recurrence.Compile(spec, newStart)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	fork := &domain.Event{
		ID:                  uuid.New(),
		OrganizationID:      template.OrganizationID,
		Name:                template.Name,
		Description:         template.Description,
		Location:            template.Location,
		StartAt:             newStart,
		EndAt:               newStart.Add(duration),
		AllDay:              template.AllDay,
		IsPublic:            template.IsPublic,
		IsRegisterable:      template.IsRegisterable,
		IsRecurringTemplate: true,
		CreatorID:           actorID,
		CreatedAt:           now,
	}
	applyPatch(fork, patch)
	fork.StartAt = newStart
	fork.EndAt = newStart.Add(duration)

	forkRule := &domain.RecurrenceRule{
		ID:                   uuid.New(),
		BaseRecurringEventID: fork.ID,
		OriginalSeriesID:     oldRule.OriginalSeriesID,
		OrganizationID:       template.OrganizationID,
		Frequency:            compiled.Spec.Frequency,
		Interval:             compiled.Spec.Interval,
		ByDay:                compiled.Spec.ByDay,
		ByMonth:              compiled.Spec.ByMonth,
		ByMonthDay:           compiled.Spec.ByMonthDay,
		Count:                compiled.Spec.Count,
		RecurrenceStartDate:  newStart,
		RecurrenceEndDate:    compiled.Spec.EndDate,
		RuleString:           compiled.Canonical,
		CreatorID:            actorID,
		CreatedAt:            now,
	}

	templateIDs, err := s.seriesTemplateIDs(ctx, oldRule.OriginalSeriesID)
	if err != nil {
		return nil, nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rules.SetEndDate(txCtx, oldRule.ID, cut.Add(-time.Millisecond), actorID); err != nil {
			return fmt.Errorf("shorten old rule: %w", err)
		}
		if _, err := s.actionItems.DeleteByInstancesOfSeriesFrom(txCtx, oldRule.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete action items: %w", err)
		}
		if _, err := s.volunteers.DeleteByInstancesOfSeriesFrom(txCtx, oldRule.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete volunteer bindings: %w", err)
		}
		if _, err := s.exceptions.DeleteForTemplatesFrom(txCtx, templateIDs, cut); err != nil {
			return fmt.Errorf("delete exceptions: %w", err)
		}
		if _, err := s.instances.DeleteBySeriesFrom(txCtx, oldRule.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete instances: %w", err)
		}
		if err := s.events.Create(txCtx, fork); err != nil {
			return fmt.Errorf("create fork template: %w", err)
		}
		if err := s.rules.Create(txCtx, forkRule); err != nil {
			return fmt.Errorf("create fork rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "series split",
		slog.String("series_id", oldRule.OriginalSeriesID.String()),
		slog.String("old_template_id", template.ID.String()),
		slog.String("fork_template_id", fork.ID.String()),
		slog.Time("cut", cut),
	)

	s.materializeEagerly(ctx, fork.ID)
	return fork, forkRule, nil
}

// applyPatch overlays the set fields of a patch onto an event. Schedule
// fields are included; split callers overwrite them afterwards.
func applyPatch(ev *domain.Event, p domain.EventPatch) {
	if p.Name != nil {
		ev.Name = *p.Name
	}
	if p.Description != nil {
		ev.Description = p.Description
	}
	if p.Location != nil {
		ev.Location = p.Location
	}
	if p.StartAt != nil {
		ev.StartAt = *p.StartAt
	}
	if p.EndAt != nil {
		ev.EndAt = *p.EndAt
	}
	if p.AllDay != nil {
		ev.AllDay = *p.AllDay
	}
	if p.IsPublic != nil {
		ev.IsPublic = *p.IsPublic
	}
	if p.IsRegisterable != nil {
		ev.IsRegisterable = *p.IsRegisterable
	}
}
