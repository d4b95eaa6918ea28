package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// DeleteSeries removes a whole series: every instance, exception, rule, and
// template sharing the requested template's original series id, plus the
// dependents hanging off them. Attachments are removed for the requested
// template only; forked templates keep theirs until deleted directly.
func (s *Service) DeleteSeries(ctx context.Context, templateID uuid.UUID, actorID uuid.UUID) (DeletedSummary, error) {
	var summary DeletedSummary

	if _, err := s.events.GetTemplate(ctx, templateID); err != nil {
		return summary, fmt.Errorf("load template: %w", err)
	}
	rule, err := s.rules.GetByTemplateID(ctx, templateID)
	if err != nil {
		return summary, fmt.Errorf("load rule: %w", err)
	}
	seriesID := rule.OriginalSeriesID

	templateIDs, err := s.seriesTemplateIDs(ctx, seriesID)
	if err != nil {
		return summary, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Leaves of the dependency tree first.
		aiInstances, err := s.actionItems.DeleteByInstancesOfSeries(txCtx, seriesID)
		if err != nil {
			return fmt.Errorf("delete instance action items: %w", err)
		}
		aiEvents, err := s.actionItems.DeleteByEvents(txCtx, templateIDs)
		if err != nil {
			return fmt.Errorf("delete event action items: %w", err)
		}
		summary.ActionItems = aiInstances + aiEvents

		volInstances, err := s.volunteers.DeleteByInstancesOfSeries(txCtx, seriesID)
		if err != nil {
			return fmt.Errorf("delete instance volunteer bindings: %w", err)
		}
		volEvents, err := s.volunteers.DeleteByEvents(txCtx, templateIDs)
		if err != nil {
			return fmt.Errorf("delete event volunteer bindings: %w", err)
		}
		summary.Volunteers = volInstances + volEvents

		if summary.Exceptions, err = s.exceptions.DeleteByTemplates(txCtx, templateIDs); err != nil {
			return fmt.Errorf("delete exceptions: %w", err)
		}
		if summary.Instances, err = s.instances.DeleteBySeries(txCtx, seriesID); err != nil {
			return fmt.Errorf("delete instances: %w", err)
		}
		if _, err = s.attachments.DeleteByEvents(txCtx, []uuid.UUID{templateID}); err != nil {
			return fmt.Errorf("delete attachments: %w", err)
		}
		if summary.Rules, err = s.rules.DeleteBySeries(txCtx, seriesID); err != nil {
			return fmt.Errorf("delete rules: %w", err)
		}
		if summary.Templates, err = s.events.DeleteByIDs(txCtx, templateIDs); err != nil {
			return fmt.Errorf("delete templates: %w", err)
		}
		return nil
	})
	if err != nil {
		return DeletedSummary{}, err
	}

	s.log.InfoContext(ctx, "series deleted",
		slog.String("series_id", seriesID.String()),
		slog.String("template_id", templateID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int64("instances_deleted", summary.Instances),
		slog.Int64("templates_deleted", summary.Templates),
	)
	return summary, nil
}

// DeleteStandalone removes a non-recurring event and its dependents.
func (s *Service) DeleteStandalone(ctx context.Context, eventID uuid.UUID) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event: %w", err)
	}
	if event.IsRecurringTemplate {
		return domain.NewValidationError("eventId", "Event is a recurring template; delete the series instead")
	}

	ids := []uuid.UUID{eventID}
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.actionItems.DeleteByEvents(txCtx, ids); err != nil {
			return fmt.Errorf("delete action items: %w", err)
		}
		if _, err := s.volunteers.DeleteByEvents(txCtx, ids); err != nil {
			return fmt.Errorf("delete volunteer bindings: %w", err)
		}
		if _, err := s.attachments.DeleteByEvents(txCtx, ids); err != nil {
			return fmt.Errorf("delete attachments: %w", err)
		}
		if _, err := s.events.DeleteByIDs(txCtx, ids); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}
