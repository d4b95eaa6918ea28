package resolution

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error)

	calls struct {
		GetByIDs [][]uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error) {
	if mock.GetByIDsFunc == nil {
		panic("eventRepoMock.GetByIDsFunc: method is nil but eventRepo.GetByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, ids)
	mock.lock.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *eventRepoMock) GetByIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByIDs
}

var _ instanceRepo = &instanceRepoMock{}

type instanceRepoMock struct {
	GetByIDsFunc        func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error)
	ListRangeFunc       func(ctx context.Context, f domain.InstanceFilter) ([]*domain.EventInstance, error)
	ListByTemplatesFunc func(ctx context.Context, templateIDs []uuid.UUID) ([]*domain.EventInstance, error)

	calls struct {
		ListRange []domain.InstanceFilter
	}
	lock sync.RWMutex
}

func (mock *instanceRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.EventInstance, error) {
	if mock.GetByIDsFunc == nil {
		panic("instanceRepoMock.GetByIDsFunc: method is nil but instanceRepo.GetByIDs was just called")
	}
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *instanceRepoMock) ListRange(ctx context.Context, f domain.InstanceFilter) ([]*domain.EventInstance, error) {
	if mock.ListRangeFunc == nil {
		panic("instanceRepoMock.ListRangeFunc: method is nil but instanceRepo.ListRange was just called")
	}
	mock.lock.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, f)
	mock.lock.Unlock()
	return mock.ListRangeFunc(ctx, f)
}

func (mock *instanceRepoMock) ListRangeCalls() []domain.InstanceFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListRange
}

func (mock *instanceRepoMock) ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) ([]*domain.EventInstance, error) {
	if mock.ListByTemplatesFunc == nil {
		panic("instanceRepoMock.ListByTemplatesFunc: method is nil but instanceRepo.ListByTemplates was just called")
	}
	return mock.ListByTemplatesFunc(ctx, templateIDs)
}

var _ exceptionRepo = &exceptionRepoMock{}

type exceptionRepoMock struct {
	ListByTemplatesFunc func(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error)
}

func (mock *exceptionRepoMock) ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error) {
	if mock.ListByTemplatesFunc == nil {
		panic("exceptionRepoMock.ListByTemplatesFunc: method is nil but exceptionRepo.ListByTemplates was just called")
	}
	return mock.ListByTemplatesFunc(ctx, templateIDs)
}
