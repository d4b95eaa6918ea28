package participation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// ResolveUserCommitments returns every event a user has volunteered for,
// expanded to concrete occurrences, de-duplicated and ordered by start time.
func (s *Service) ResolveUserCommitments(ctx context.Context, userID uuid.UUID) ([]*domain.ResolvedEvent, error) {
	bindings, err := s.volunteers.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bindings: %w", err)
	}
	return s.ResolveTargets(ctx, bindings)
}

// ResolveTargets expands a set of bindings into resolved events. Each
// binding is interpreted by the first targeting mode that applies:
// a set instance id wins over the template flag, which wins over a bare
// event id. Template-scoped bindings expand to the series' non-cancelled
// occurrences; a series with nothing materialized yet falls back to its
// template row so the commitment stays visible. Duplicates (the same
// occurrence reached through different bindings) collapse to one entry.
func (s *Service) ResolveTargets(ctx context.Context, bindings []*domain.VolunteerBinding) ([]*domain.ResolvedEvent, error) {
	var (
		instanceIDs []uuid.UUID
		templateIDs []uuid.UUID
		eventIDs    []uuid.UUID
	)
	for _, b := range bindings {
		switch {
		case b.InstanceID != nil:
			instanceIDs = append(instanceIDs, *b.InstanceID)
		case b.IsTemplate && b.EventID != nil:
			templateIDs = append(templateIDs, *b.EventID)
		case b.EventID != nil:
			eventIDs = append(eventIDs, *b.EventID)
		}
	}

	out := make([]*domain.ResolvedEvent, 0, len(bindings))
	seen := make(map[uuid.UUID]struct{})
	add := func(ev *domain.ResolvedEvent) {
		if _, ok := seen[ev.ID]; ok {
			return
		}
		seen[ev.ID] = struct{}{}
		out = append(out, ev)
	}

	if len(instanceIDs) > 0 {
		resolved, err := s.resolver.ResolveByIDs(ctx, dedupe(instanceIDs))
		if err != nil {
			return nil, fmt.Errorf("resolve bound instances: %w", err)
		}
		for _, r := range resolved {
			add(fromInstance(r))
		}
	}

	if len(templateIDs) > 0 {
		templateIDs = dedupe(templateIDs)
		grouped, err := s.resolver.ResolveByTemplateIDs(ctx, templateIDs, false)
		if err != nil {
			return nil, fmt.Errorf("resolve bound series: %w", err)
		}
		var unmaterialized []uuid.UUID
		for _, id := range templateIDs {
			if len(grouped[id]) == 0 {
				unmaterialized = append(unmaterialized, id)
				continue
			}
			for _, r := range grouped[id] {
				add(fromInstance(r))
			}
		}
		if err := s.addEventRows(ctx, unmaterialized, add); err != nil {
			return nil, err
		}
	}

	if err := s.addEventRows(ctx, dedupe(eventIDs), add); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].StartAt.Before(out[j].StartAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// addEventRows loads event rows and feeds them to add. A missing row is
// logged and skipped: bindings are deleted together with their targets, so
// a dangler is stale data, not a reason to hide the rest of the schedule.
func (s *Service) addEventRows(ctx context.Context, ids []uuid.UUID, add func(*domain.ResolvedEvent)) error {
	if len(ids) == 0 {
		return nil
	}
	events, err := s.events.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	for _, id := range ids {
		ev, ok := events[id]
		if !ok {
			s.log.WarnContext(ctx, "volunteer binding targets a missing event",
				slog.String("event_id", id.String()),
			)
			continue
		}
		add(fromEvent(ev))
	}
	return nil
}

func fromInstance(r *domain.ResolvedInstance) *domain.ResolvedEvent {
	seq := r.SequenceNumber
	base := r.BaseRecurringEventID
	return &domain.ResolvedEvent{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Name:           r.Name,
		Description:    r.Description,
		Location:       r.Location,
		StartAt:        r.ActualStartTime,
		EndAt:          r.ActualEndTime,
		AllDay:         r.AllDay,
		IsPublic:       r.IsPublic,
		IsRegisterable: r.IsRegisterable,
		IsInstance:     true,
		BaseEventID:    &base,
		SequenceNumber: &seq,
	}
}

func fromEvent(ev *domain.Event) *domain.ResolvedEvent {
	return &domain.ResolvedEvent{
		ID:             ev.ID,
		OrganizationID: ev.OrganizationID,
		Name:           ev.Name,
		Description:    ev.Description,
		Location:       ev.Location,
		StartAt:        ev.StartAt,
		EndAt:          ev.EndAt,
		AllDay:         ev.AllDay,
		IsPublic:       ev.IsPublic,
		IsRegisterable: ev.IsRegisterable,
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
