// Package resolution merges materialized instances with their template's
// content and the sparse exception overlay. Resolution is a pure read: field
// precedence is exception > instance > template, so template edits flow
// through to every occurrence whose fields were never overridden.
package resolution

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by the resolver.
type eventRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error)
}

// instanceRepo defines the instance repository interface needed by the resolver.
type instanceRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error)
	ListRange(ctx context.Context, f domain.InstanceFilter) ([]*domain.EventInstance, error)
	ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) ([]*domain.EventInstance, error)
}

// exceptionRepo defines the exception repository interface needed by the resolver.
type exceptionRepo interface {
	ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error)
}

// Service resolves instances into their displayable form.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	instances  instanceRepo
	exceptions exceptionRepo
}

// NewService creates a new resolution service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	instances instanceRepo,
	exceptions exceptionRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "resolution"),
		events:     events,
		instances:  instances,
		exceptions: exceptions,
	}
}

// RangeOptions shape ResolveRange's output.
type RangeOptions struct {
	IncludeCancelled bool
	TemplateIDs      []uuid.UUID
	// ExcludeInstanceIDs drops specific instances from the result, e.g. the
	// occurrence a caller is in the middle of rewriting.
	ExcludeInstanceIDs []uuid.UUID
	Limit              uint64
	Offset             uint64
}

// resolve merges one instance with its template and optional exception.
// The caller guarantees template is the instance's own.
func resolve(inst *domain.EventInstance, template *domain.Event, exc *domain.EventException) *domain.ResolvedInstance {
	out := &domain.ResolvedInstance{
		ID:                        inst.ID,
		BaseRecurringEventID:      inst.BaseRecurringEventID,
		RecurrenceRuleID:          inst.RecurrenceRuleID,
		OriginalSeriesID:          inst.OriginalSeriesID,
		OrganizationID:            inst.OrganizationID,
		OriginalInstanceStartTime: inst.OriginalInstanceStartTime,
		ActualStartTime:           inst.ActualStartTime,
		ActualEndTime:             inst.ActualEndTime,
		IsCancelled:               inst.IsCancelled,
		SequenceNumber:            inst.SequenceNumber,
		TotalCount:                inst.TotalCount,
		Version:                   inst.Version,
		GeneratedAt:               inst.GeneratedAt,
		LastUpdatedAt:             inst.LastUpdatedAt,

		Name:           template.Name,
		Description:    template.Description,
		Location:       template.Location,
		AllDay:         template.AllDay,
		IsPublic:       template.IsPublic,
		IsRegisterable: template.IsRegisterable,
		CreatorID:      template.CreatorID,
		UpdaterID:      template.UpdaterID,
	}
	if exc == nil {
		return out
	}

	out.HasExceptions = true
	data := exc.Data
	out.AppliedException = &data
	out.ExceptionCreatedBy = &exc.CreatorID
	createdAt := exc.CreatedAt
	out.ExceptionCreatedAt = &createdAt

	if data.Name != nil {
		out.Name = *data.Name
	}
	if data.Description != nil {
		out.Description = data.Description
	}
	if data.Location != nil {
		out.Location = data.Location
	}
	if data.StartAt != nil {
		out.ActualStartTime = data.StartAt.UTC()
	}
	if data.EndAt != nil {
		out.ActualEndTime = data.EndAt.UTC()
	}
	if data.AllDay != nil {
		out.AllDay = *data.AllDay
	}
	if data.IsPublic != nil {
		out.IsPublic = *data.IsPublic
	}
	if data.IsRegisterable != nil {
		out.IsRegisterable = *data.IsRegisterable
	}
	if data.IsCancelled != nil {
		out.IsCancelled = *data.IsCancelled
	}
	return out
}

// resolveAll batches the template and exception lookups for a set of
// instances and resolves each one. An instance whose template row is gone is
// a data integrity fault, not a skippable oddity: the instance table said the
// occurrence exists, so hiding it would silently shrink someone's calendar.
func (s *Service) resolveAll(ctx context.Context, instances []*domain.EventInstance) ([]*domain.ResolvedInstance, error) {
	if len(instances) == 0 {
		return []*domain.ResolvedInstance{}, nil
	}

	templateIDs := distinctTemplateIDs(instances)
	templates, err := s.events.GetByIDs(ctx, templateIDs)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.exceptions.ListByTemplates(ctx, templateIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.ResolvedInstance, 0, len(instances))
	for _, inst := range instances {
		template := templates[inst.BaseRecurringEventID]
		if template == nil {
			ierr := &domain.IntegrityError{
				Entity:  "recurring_event_instance",
				ID:      inst.ID,
				Missing: "event",
				Ref:     inst.BaseRecurringEventID,
			}
			s.log.ErrorContext(ctx, "orphaned instance: template row missing",
				slog.String("instance_id", inst.ID.String()),
				slog.String("base_recurring_event_id", inst.BaseRecurringEventID.String()),
				slog.Time("original_start", inst.OriginalInstanceStartTime),
			)
			return nil, ierr
		}
		key := domain.ExceptionKey(inst.BaseRecurringEventID, inst.OriginalInstanceStartTime)
		out = append(out, resolve(inst, template, exceptions[key]))
	}
	return out, nil
}

func distinctTemplateIDs(instances []*domain.EventInstance) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(instances))
	ids := make([]uuid.UUID, 0, len(instances))
	for _, inst := range instances {
		if _, ok := seen[inst.BaseRecurringEventID]; ok {
			continue
		}
		seen[inst.BaseRecurringEventID] = struct{}{}
		ids = append(ids, inst.BaseRecurringEventID)
	}
	return ids
}
