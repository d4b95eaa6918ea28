package resolution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// ResolveByIDs resolves specific instances. Every requested id must exist;
// a missing one is ErrNotFound.
func (s *Service) ResolveByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error) {
	if len(ids) == 0 {
		return []*domain.ResolvedInstance{}, nil
	}

	byID, err := s.instances.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load instances: %w", err)
	}

	ordered := make([]*domain.EventInstance, 0, len(ids))
	for _, id := range ids {
		inst, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("recurring_event_instance %s: %w", id, domain.ErrNotFound)
		}
		ordered = append(ordered, inst)
	}
	return s.resolveAll(ctx, ordered)
}

// ResolveRange resolves every instance of an organization whose actual start
// falls in [from, to), ordered by actual start.
func (s *Service) ResolveRange(ctx context.Context, orgID uuid.UUID, from, to time.Time, opts RangeOptions) ([]*domain.ResolvedInstance, error) {
	if !to.After(from) {
		return nil, domain.NewValidationError("range", "range end must be after range start")
	}

	instances, err := s.instances.ListRange(ctx, domain.InstanceFilter{
		OrganizationID: orgID,
		From:           from,
		To:             to,
		TemplateIDs:    opts.TemplateIDs,
		ExcludeIDs:     opts.ExcludeInstanceIDs,
		WithCancelled:  opts.IncludeCancelled,
		Limit:          opts.Limit,
		Offset:         opts.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	return s.resolveAll(ctx, instances)
}

// ResolveByTemplateIDs resolves every instance of the given templates,
// grouped by template for loader-style consumers.
func (s *Service) ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error) {
	out := make(map[uuid.UUID][]*domain.ResolvedInstance, len(templateIDs))
	for _, id := range templateIDs {
		out[id] = []*domain.ResolvedInstance{}
	}
	if len(templateIDs) == 0 {
		return out, nil
	}

	instances, err := s.instances.ListByTemplates(ctx, templateIDs)
	if err != nil {
		return nil, fmt.Errorf("list instances by templates: %w", err)
	}
	if !includeCancelled {
		live := instances[:0]
		for _, inst := range instances {
			if !inst.IsCancelled {
				live = append(live, inst)
			}
		}
		instances = live
	}

	resolved, err := s.resolveAll(ctx, instances)
	if err != nil {
		return nil, err
	}
	for _, r := range resolved {
		out[r.BaseRecurringEventID] = append(out[r.BaseRecurringEventID], r)
	}
	return out, nil
}
