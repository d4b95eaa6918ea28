package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
	"github.com/gatherhub/gatherhub-backend/internal/service/lifecycle"
	"github.com/gatherhub/gatherhub-backend/internal/service/resolution"
)

var _ lifecycleService = &lifecycleServiceMock{}

type lifecycleServiceMock struct {
	ConvertToRecurringFunc     func(ctx context.Context, eventID uuid.UUID, spec recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error)
	UpdateSingleOccurrenceFunc func(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, actorID uuid.UUID) (*domain.EventException, error)
	CancelOccurrenceFunc       func(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (*domain.EventException, error)
	UpdateThisAndFollowingFunc func(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, newSpec *recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error)
	TruncateAtInstanceFunc     func(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error)
	DeleteSeriesFunc           func(ctx context.Context, templateID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error)
	DeleteStandaloneFunc       func(ctx context.Context, eventID uuid.UUID) error

	calls struct {
		ConvertToRecurring     []uuid.UUID
		UpdateSingleOccurrence []uuid.UUID
		CancelOccurrence       []uuid.UUID
		UpdateThisAndFollowing []uuid.UUID
		TruncateAtInstance     []uuid.UUID
		DeleteSeries           []uuid.UUID
		DeleteStandalone       []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *lifecycleServiceMock) ConvertToRecurring(ctx context.Context, eventID uuid.UUID, spec recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	if mock.ConvertToRecurringFunc == nil {
		panic("lifecycleServiceMock.ConvertToRecurringFunc: method is nil but lifecycleService.ConvertToRecurring was just called")
	}
	mock.lock.Lock()
	mock.calls.ConvertToRecurring = append(mock.calls.ConvertToRecurring, eventID)
	mock.lock.Unlock()
	return mock.ConvertToRecurringFunc(ctx, eventID, spec, actorID)
}

func (mock *lifecycleServiceMock) ConvertToRecurringCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ConvertToRecurring
}

func (mock *lifecycleServiceMock) UpdateSingleOccurrence(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, actorID uuid.UUID) (*domain.EventException, error) {
	if mock.UpdateSingleOccurrenceFunc == nil {
		panic("lifecycleServiceMock.UpdateSingleOccurrenceFunc: method is nil but lifecycleService.UpdateSingleOccurrence was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateSingleOccurrence = append(mock.calls.UpdateSingleOccurrence, instanceID)
	mock.lock.Unlock()
	return mock.UpdateSingleOccurrenceFunc(ctx, instanceID, patch, actorID)
}

func (mock *lifecycleServiceMock) UpdateSingleOccurrenceCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateSingleOccurrence
}

func (mock *lifecycleServiceMock) CancelOccurrence(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (*domain.EventException, error) {
	if mock.CancelOccurrenceFunc == nil {
		panic("lifecycleServiceMock.CancelOccurrenceFunc: method is nil but lifecycleService.CancelOccurrence was just called")
	}
	mock.lock.Lock()
	mock.calls.CancelOccurrence = append(mock.calls.CancelOccurrence, instanceID)
	mock.lock.Unlock()
	return mock.CancelOccurrenceFunc(ctx, instanceID, actorID)
}

func (mock *lifecycleServiceMock) CancelOccurrenceCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CancelOccurrence
}

func (mock *lifecycleServiceMock) UpdateThisAndFollowing(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, newSpec *recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error) {
	if mock.UpdateThisAndFollowingFunc == nil {
		panic("lifecycleServiceMock.UpdateThisAndFollowingFunc: method is nil but lifecycleService.UpdateThisAndFollowing was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateThisAndFollowing = append(mock.calls.UpdateThisAndFollowing, instanceID)
	mock.lock.Unlock()
	return mock.UpdateThisAndFollowingFunc(ctx, instanceID, patch, newSpec, actorID)
}

func (mock *lifecycleServiceMock) UpdateThisAndFollowingCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateThisAndFollowing
}

func (mock *lifecycleServiceMock) TruncateAtInstance(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error) {
	if mock.TruncateAtInstanceFunc == nil {
		panic("lifecycleServiceMock.TruncateAtInstanceFunc: method is nil but lifecycleService.TruncateAtInstance was just called")
	}
	mock.lock.Lock()
	mock.calls.TruncateAtInstance = append(mock.calls.TruncateAtInstance, instanceID)
	mock.lock.Unlock()
	return mock.TruncateAtInstanceFunc(ctx, instanceID, actorID)
}

func (mock *lifecycleServiceMock) TruncateAtInstanceCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TruncateAtInstance
}

func (mock *lifecycleServiceMock) DeleteSeries(ctx context.Context, templateID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error) {
	if mock.DeleteSeriesFunc == nil {
		panic("lifecycleServiceMock.DeleteSeriesFunc: method is nil but lifecycleService.DeleteSeries was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteSeries = append(mock.calls.DeleteSeries, templateID)
	mock.lock.Unlock()
	return mock.DeleteSeriesFunc(ctx, templateID, actorID)
}

func (mock *lifecycleServiceMock) DeleteSeriesCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteSeries
}

func (mock *lifecycleServiceMock) DeleteStandalone(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteStandaloneFunc == nil {
		panic("lifecycleServiceMock.DeleteStandaloneFunc: method is nil but lifecycleService.DeleteStandalone was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteStandalone = append(mock.calls.DeleteStandalone, eventID)
	mock.lock.Unlock()
	return mock.DeleteStandaloneFunc(ctx, eventID)
}

func (mock *lifecycleServiceMock) DeleteStandaloneCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteStandalone
}

var _ resolutionService = &resolutionServiceMock{}

type resolutionServiceMock struct {
	ResolveByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error)
	ResolveRangeFunc         func(ctx context.Context, orgID uuid.UUID, from, to time.Time, opts resolution.RangeOptions) ([]*domain.ResolvedInstance, error)
	ResolveByTemplateIDsFunc func(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error)

	calls struct {
		ResolveByIDs         [][]uuid.UUID
		ResolveRange         []resolution.RangeOptions
		ResolveByTemplateIDs [][]uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *resolutionServiceMock) ResolveByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error) {
	if mock.ResolveByIDsFunc == nil {
		panic("resolutionServiceMock.ResolveByIDsFunc: method is nil but resolutionService.ResolveByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveByIDs = append(mock.calls.ResolveByIDs, ids)
	mock.lock.Unlock()
	return mock.ResolveByIDsFunc(ctx, ids)
}

func (mock *resolutionServiceMock) ResolveByIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveByIDs
}

func (mock *resolutionServiceMock) ResolveRange(ctx context.Context, orgID uuid.UUID, from, to time.Time, opts resolution.RangeOptions) ([]*domain.ResolvedInstance, error) {
	if mock.ResolveRangeFunc == nil {
		panic("resolutionServiceMock.ResolveRangeFunc: method is nil but resolutionService.ResolveRange was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveRange = append(mock.calls.ResolveRange, opts)
	mock.lock.Unlock()
	return mock.ResolveRangeFunc(ctx, orgID, from, to, opts)
}

func (mock *resolutionServiceMock) ResolveRangeCalls() []resolution.RangeOptions {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveRange
}

func (mock *resolutionServiceMock) ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error) {
	if mock.ResolveByTemplateIDsFunc == nil {
		panic("resolutionServiceMock.ResolveByTemplateIDsFunc: method is nil but resolutionService.ResolveByTemplateIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveByTemplateIDs = append(mock.calls.ResolveByTemplateIDs, templateIDs)
	mock.lock.Unlock()
	return mock.ResolveByTemplateIDsFunc(ctx, templateIDs, includeCancelled)
}

func (mock *resolutionServiceMock) ResolveByTemplateIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveByTemplateIDs
}

var _ participationService = &participationServiceMock{}

type participationServiceMock struct {
	ResolveUserCommitmentsFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.ResolvedEvent, error)

	calls struct {
		ResolveUserCommitments []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *participationServiceMock) ResolveUserCommitments(ctx context.Context, userID uuid.UUID) ([]*domain.ResolvedEvent, error) {
	if mock.ResolveUserCommitmentsFunc == nil {
		panic("participationServiceMock.ResolveUserCommitmentsFunc: method is nil but participationService.ResolveUserCommitments was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveUserCommitments = append(mock.calls.ResolveUserCommitments, userID)
	mock.lock.Unlock()
	return mock.ResolveUserCommitmentsFunc(ctx, userID)
}

func (mock *participationServiceMock) ResolveUserCommitmentsCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveUserCommitments
}

func ptr[T any](v T) *T { return &v }
