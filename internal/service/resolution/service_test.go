package resolution

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

func newTestService(events eventRepo, instances instanceRepo, exceptions exceptionRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, events, instances, exceptions)
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	template *domain.Event
	inst     *domain.EventInstance
}

func newFixture() fixture {
	anchor := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	templateID := uuid.New()
	desc := "Bring a dish to share"

	template := &domain.Event{
		ID:                  templateID,
		OrganizationID:      uuid.New(),
		Name:                "Community Supper",
		Description:         &desc,
		IsPublic:            true,
		IsRegisterable:      true,
		StartAt:             anchor,
		EndAt:               anchor.Add(2 * time.Hour),
		IsRecurringTemplate: true,
		CreatorID:           uuid.New(),
	}
	inst := &domain.EventInstance{
		ID:                        uuid.New(),
		BaseRecurringEventID:      templateID,
		RecurrenceRuleID:          uuid.New(),
		OriginalSeriesID:          uuid.New(),
		OrganizationID:            template.OrganizationID,
		OriginalInstanceStartTime: anchor,
		ActualStartTime:           anchor,
		ActualEndTime:             anchor.Add(2 * time.Hour),
		SequenceNumber:            1,
		Version:                   1,
		GeneratedAt:               anchor.Add(-time.Hour),
	}
	return fixture{template: template, inst: inst}
}

func singleInstanceMocks(f fixture, exc *domain.EventException) (*eventRepoMock, *instanceRepoMock, *exceptionRepoMock) {
	events := &eventRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
			return map[uuid.UUID]*domain.Event{f.template.ID: f.template}, nil
		},
	}
	instances := &instanceRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error) {
			return map[uuid.UUID]*domain.EventInstance{f.inst.ID: f.inst}, nil
		},
	}
	exceptions := &exceptionRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
			if exc == nil {
				return map[string]*domain.EventException{}, nil
			}
			return map[string]*domain.EventException{exc.Key(): exc}, nil
		},
	}
	return events, instances, exceptions
}

func TestService_ResolveByIDs_InheritsTemplateContent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := newTestService(singleInstanceMocks(f, nil))

	got, err := svc.ResolveByIDs(context.Background(), []uuid.UUID{f.inst.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, f.inst.ID, r.ID)
	assert.Equal(t, "Community Supper", r.Name)
	assert.Equal(t, f.template.Description, r.Description)
	assert.True(t, r.IsPublic)
	assert.True(t, r.IsRegisterable)
	assert.Equal(t, 1, r.SequenceNumber)
	assert.False(t, r.HasExceptions)
	assert.Nil(t, r.AppliedException)
}

func TestService_ResolveByIDs_ExceptionWinsOverTemplate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	moved := f.inst.OriginalInstanceStartTime.Add(3 * time.Hour)
	creator := uuid.New()
	exc := &domain.EventException{
		ID:                uuid.New(),
		RecurringEventID:  f.template.ID,
		InstanceStartTime: f.inst.OriginalInstanceStartTime,
		Data: domain.ExceptionData{
			Name:    ptr("Holiday Supper"),
			StartAt: &moved,
		},
		CreatorID: creator,
		CreatedAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	svc := newTestService(singleInstanceMocks(f, exc))

	got, err := svc.ResolveByIDs(context.Background(), []uuid.UUID{f.inst.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, "Holiday Supper", r.Name, "exception name wins")
	assert.Equal(t, f.template.Description, r.Description, "untouched fields inherit")
	assert.True(t, r.ActualStartTime.Equal(moved))
	assert.True(t, r.OriginalInstanceStartTime.Equal(f.inst.OriginalInstanceStartTime), "original start is immutable")
	assert.True(t, r.HasExceptions)
	require.NotNil(t, r.ExceptionCreatedBy)
	assert.Equal(t, creator, *r.ExceptionCreatedBy)
	require.NotNil(t, r.ExceptionCreatedAt)
	assert.True(t, r.ExceptionCreatedAt.Equal(exc.CreatedAt))
}

func TestService_ResolveByIDs_CancellationOverlay(t *testing.T) {
	t.Parallel()

	f := newFixture()
	exc := &domain.EventException{
		ID:                uuid.New(),
		RecurringEventID:  f.template.ID,
		InstanceStartTime: f.inst.OriginalInstanceStartTime,
		Data:              domain.ExceptionData{IsCancelled: ptr(true)},
		CreatorID:         uuid.New(),
		CreatedAt:         time.Now().UTC(),
	}
	svc := newTestService(singleInstanceMocks(f, exc))

	got, err := svc.ResolveByIDs(context.Background(), []uuid.UUID{f.inst.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsCancelled)
}

func TestService_ResolveByIDs_MissingInstance(t *testing.T) {
	t.Parallel()

	instances := &instanceRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error) {
			return map[uuid.UUID]*domain.EventInstance{}, nil
		},
	}
	svc := newTestService(nil, instances, nil)

	_, err := svc.ResolveByIDs(context.Background(), []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ResolveByIDs_OrphanedInstanceIsIntegrityFault(t *testing.T) {
	t.Parallel()

	f := newFixture()
	events := &eventRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
			// Template row is gone.
			return map[uuid.UUID]*domain.Event{}, nil
		},
	}
	instances := &instanceRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error) {
			return map[uuid.UUID]*domain.EventInstance{f.inst.ID: f.inst}, nil
		},
	}
	exceptions := &exceptionRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
			return nil, nil
		},
	}
	svc := newTestService(events, instances, exceptions)

	_, err := svc.ResolveByIDs(context.Background(), []uuid.UUID{f.inst.ID})
	require.ErrorIs(t, err, domain.ErrCorrupted)

	var ierr *domain.IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, f.inst.ID, ierr.ID)
	assert.Equal(t, f.inst.BaseRecurringEventID, ierr.Ref)
}

func TestService_ResolveByIDs_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	got, err := svc.ResolveByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_ResolveRange_PassesFilter(t *testing.T) {
	t.Parallel()

	f := newFixture()
	orgID := f.template.OrganizationID
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	instances := &instanceRepoMock{
		ListRangeFunc: func(ctx context.Context, filter domain.InstanceFilter) ([]*domain.EventInstance, error) {
			return []*domain.EventInstance{f.inst}, nil
		},
	}
	events := &eventRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
			return map[uuid.UUID]*domain.Event{f.template.ID: f.template}, nil
		},
	}
	exceptions := &exceptionRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
			return nil, nil
		},
	}
	svc := newTestService(events, instances, exceptions)

	excluded := uuid.New()
	got, err := svc.ResolveRange(context.Background(), orgID, from, to, RangeOptions{
		IncludeCancelled:   true,
		ExcludeInstanceIDs: []uuid.UUID{excluded},
		Limit:              25,
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	calls := instances.ListRangeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, orgID, calls[0].OrganizationID)
	assert.True(t, calls[0].From.Equal(from))
	assert.True(t, calls[0].To.Equal(to))
	assert.True(t, calls[0].WithCancelled)
	assert.Equal(t, []uuid.UUID{excluded}, calls[0].ExcludeIDs)
	assert.Equal(t, uint64(25), calls[0].Limit)
}

func TestService_ResolveRange_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ResolveRange(context.Background(), uuid.New(), at, at, RangeOptions{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ResolveRange_BatchesTemplateFetch(t *testing.T) {
	t.Parallel()

	f1 := newFixture()
	f2 := newFixture()
	// Two instances of the same template plus one of another.
	sibling := *f1.inst
	sibling.ID = uuid.New()
	sibling.OriginalInstanceStartTime = f1.inst.OriginalInstanceStartTime.AddDate(0, 0, 7)
	sibling.ActualStartTime = sibling.OriginalInstanceStartTime
	sibling.SequenceNumber = 2

	events := &eventRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
			return map[uuid.UUID]*domain.Event{
				f1.template.ID: f1.template,
				f2.template.ID: f2.template,
			}, nil
		},
	}
	instances := &instanceRepoMock{
		ListRangeFunc: func(ctx context.Context, filter domain.InstanceFilter) ([]*domain.EventInstance, error) {
			return []*domain.EventInstance{f1.inst, &sibling, f2.inst}, nil
		},
	}
	exceptions := &exceptionRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
			return nil, nil
		},
	}
	svc := newTestService(events, instances, exceptions)

	got, err := svc.ResolveRange(context.Background(), f1.template.OrganizationID,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), RangeOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// One batched template fetch with distinct ids.
	calls := events.GetByIDsCalls()
	require.Len(t, calls, 1)
	assert.Len(t, calls[0], 2, "duplicate template ids collapse into one")
}

func TestService_ResolveByTemplateIDs_GroupsAndFiltersCancelled(t *testing.T) {
	t.Parallel()

	f := newFixture()
	cancelled := *f.inst
	cancelled.ID = uuid.New()
	cancelled.OriginalInstanceStartTime = f.inst.OriginalInstanceStartTime.AddDate(0, 0, 7)
	cancelled.IsCancelled = true

	emptyTemplateID := uuid.New()

	events := &eventRepoMock{
		GetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
			return map[uuid.UUID]*domain.Event{f.template.ID: f.template}, nil
		},
	}
	instances := &instanceRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) ([]*domain.EventInstance, error) {
			return []*domain.EventInstance{f.inst, &cancelled}, nil
		},
	}
	exceptions := &exceptionRepoMock{
		ListByTemplatesFunc: func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
			return nil, nil
		},
	}
	svc := newTestService(events, instances, exceptions)

	got, err := svc.ResolveByTemplateIDs(context.Background(), []uuid.UUID{f.template.ID, emptyTemplateID}, false)
	require.NoError(t, err)

	assert.Len(t, got[f.template.ID], 1, "cancelled instance filtered out")
	assert.NotNil(t, got[emptyTemplateID])
	assert.Empty(t, got[emptyTemplateID], "template with no instances gets an empty slice, not a missing key")
}
