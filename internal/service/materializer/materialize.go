package materializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
)

// MaterializeWindow generates the template's instances whose original start
// falls inside [windowStart, windowEnd) and reports how many rows were
// actually inserted. Occurrences already present are skipped; the rule's
// watermark is advanced to the latest original start seen, all in one
// transaction so a crash never leaves a gap below the watermark.
func (s *Service) MaterializeWindow(ctx context.Context, templateID uuid.UUID, windowStart, windowEnd time.Time) (int, error) {
	if !windowEnd.After(windowStart) {
		return 0, domain.NewValidationError("window", "window end must be after window start")
	}

	var inserted int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		template, err := s.events.GetTemplate(txCtx, templateID)
		if err != nil {
			return fmt.Errorf("load template: %w", err)
		}
		rule, err := s.rules.GetByTemplateID(txCtx, templateID)
		if err != nil {
			return fmt.Errorf("load rule: %w", err)
		}
		// The stored canonical string must still round-trip; a row that fails
		// here was mangled outside the API and must not drive generation.
		if _, err := recurrence.Parse(rule.RuleString); err != nil {
			return fmt.Errorf("rule %s has unparseable rule string %q: %w", rule.ID, rule.RuleString, domain.ErrCorrupted)
		}

		normalized, err := recurrence.Normalize(rule)
		if err != nil {
			return fmt.Errorf("normalize rule: %w", err)
		}

		expansion, err := recurrence.Expand(normalized, recurrence.Options{
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			MaxPerRun:   s.cfg.MaxInstancesPerRun,
		})
		if err != nil {
			return fmt.Errorf("expand rule: %w", err)
		}
		if len(expansion.Occurrences) == 0 {
			return nil
		}

		existing, err := s.instances.ListOriginalStarts(txCtx, templateID, windowStart, windowEnd)
		if err != nil {
			return fmt.Errorf("list existing starts: %w", err)
		}
		present := make(map[int64]struct{}, len(existing))
		for _, t := range existing {
			present[t.UnixNano()] = struct{}{}
		}

		exceptions, err := s.exceptions.ListByTemplates(txCtx, []uuid.UUID{templateID})
		if err != nil {
			return fmt.Errorf("load exceptions: %w", err)
		}

		duration := template.Duration()
		now := time.Now().UTC()
		latest := windowStart

		batch := make([]*domain.EventInstance, 0, len(expansion.Occurrences))
		for _, occ := range expansion.Occurrences {
			if occ.Start.After(latest) {
				latest = occ.Start
			}
			if _, ok := present[occ.Start.UnixNano()]; ok {
				continue
			}
			inst := &domain.EventInstance{
				// Time-ordered ids keep the instance index roughly append-only.
				ID:                        uuid.Must(uuid.NewV7()),
				BaseRecurringEventID:      templateID,
				RecurrenceRuleID:          rule.ID,
				OriginalSeriesID:          rule.OriginalSeriesID,
				OrganizationID:            template.OrganizationID,
				OriginalInstanceStartTime: occ.Start,
				ActualStartTime:           occ.Start,
				ActualEndTime:             occ.Start.Add(duration),
				SequenceNumber:            occ.SequenceNumber,
				TotalCount:                expansion.TotalCount,
				Version:                   1,
				GeneratedAt:               now,
			}
			applyException(inst, exceptions[domain.ExceptionKey(templateID, occ.Start)])
			batch = append(batch, inst)
		}

		inserted, err = s.instances.CreateBatch(txCtx, batch)
		if err != nil {
			return fmt.Errorf("insert instances: %w", err)
		}

		if err := s.rules.AdvanceWatermark(txCtx, rule.ID, latest); err != nil {
			return fmt.Errorf("advance watermark: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.log.InfoContext(ctx, "window materialized",
			slog.String("template_id", templateID.String()),
			slog.Time("window_start", windowStart),
			slog.Time("window_end", windowEnd),
			slog.Int64("inserted", inserted),
		)
	}
	return int(inserted), nil
}

// MaterializeDefaultWindow materializes from now to the configured rolling
// horizon.
func (s *Service) MaterializeDefaultWindow(ctx context.Context, templateID uuid.UUID) (int, error) {
	now := time.Now().UTC()
	return s.MaterializeWindow(ctx, templateID, now, now.AddDate(0, s.cfg.HotWindowMonthsAhead, 0))
}

// applyException carries a pre-existing override onto a freshly generated
// instance row. Occurrences regenerated after a truncate-then-extend keep
// their moved times and cancellations.
func applyException(inst *domain.EventInstance, exc *domain.EventException) {
	if exc == nil {
		return
	}
	if exc.Data.StartAt != nil {
		inst.ActualStartTime = exc.Data.StartAt.UTC()
	}
	if exc.Data.EndAt != nil {
		inst.ActualEndTime = exc.Data.EndAt.UTC()
	}
	if exc.Data.IsCancelled != nil {
		inst.IsCancelled = *exc.Data.IsCancelled
	}
}
