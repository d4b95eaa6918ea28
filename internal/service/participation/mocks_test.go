package participation

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

var _ volunteerRepo = &volunteerRepoMock{}

type volunteerRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.VolunteerBinding, error)
}

func (mock *volunteerRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VolunteerBinding, error) {
	if mock.ListByUserFunc == nil {
		panic("volunteerRepoMock.ListByUserFunc: method is nil but volunteerRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

var _ instanceResolver = &instanceResolverMock{}

type instanceResolverMock struct {
	ResolveByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error)
	ResolveByTemplateIDsFunc func(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error)

	calls struct {
		ResolveByIDs         [][]uuid.UUID
		ResolveByTemplateIDs [][]uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *instanceResolverMock) ResolveByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error) {
	if mock.ResolveByIDsFunc == nil {
		panic("instanceResolverMock.ResolveByIDsFunc: method is nil but instanceResolver.ResolveByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveByIDs = append(mock.calls.ResolveByIDs, ids)
	mock.lock.Unlock()
	return mock.ResolveByIDsFunc(ctx, ids)
}

func (mock *instanceResolverMock) ResolveByIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveByIDs
}

func (mock *instanceResolverMock) ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error) {
	if mock.ResolveByTemplateIDsFunc == nil {
		panic("instanceResolverMock.ResolveByTemplateIDsFunc: method is nil but instanceResolver.ResolveByTemplateIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveByTemplateIDs = append(mock.calls.ResolveByTemplateIDs, templateIDs)
	mock.lock.Unlock()
	return mock.ResolveByTemplateIDsFunc(ctx, templateIDs, includeCancelled)
}

func (mock *instanceResolverMock) ResolveByTemplateIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveByTemplateIDs
}
