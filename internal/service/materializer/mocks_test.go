package materializer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetTemplateFunc func(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	calls struct {
		GetTemplate []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetTemplateFunc == nil {
		panic("eventRepoMock.GetTemplateFunc: method is nil but eventRepo.GetTemplate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTemplate = append(mock.calls.GetTemplate, id)
	mock.lock.Unlock()
	return mock.GetTemplateFunc(ctx, id)
}

func (mock *eventRepoMock) GetTemplateCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetTemplate
}

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	GetByTemplateIDFunc  func(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error)
	AdvanceWatermarkFunc func(ctx context.Context, id uuid.UUID, ts time.Time) error

	calls struct {
		GetByTemplateID  []uuid.UUID
		AdvanceWatermark []struct {
			ID uuid.UUID
			Ts time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *ruleRepoMock) GetByTemplateID(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error) {
	if mock.GetByTemplateIDFunc == nil {
		panic("ruleRepoMock.GetByTemplateIDFunc: method is nil but ruleRepo.GetByTemplateID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByTemplateID = append(mock.calls.GetByTemplateID, templateID)
	mock.lock.Unlock()
	return mock.GetByTemplateIDFunc(ctx, templateID)
}

func (mock *ruleRepoMock) AdvanceWatermark(ctx context.Context, id uuid.UUID, ts time.Time) error {
	if mock.AdvanceWatermarkFunc == nil {
		panic("ruleRepoMock.AdvanceWatermarkFunc: method is nil but ruleRepo.AdvanceWatermark was just called")
	}
	mock.lock.Lock()
	mock.calls.AdvanceWatermark = append(mock.calls.AdvanceWatermark, struct {
		ID uuid.UUID
		Ts time.Time
	}{id, ts})
	mock.lock.Unlock()
	return mock.AdvanceWatermarkFunc(ctx, id, ts)
}

func (mock *ruleRepoMock) AdvanceWatermarkCalls() []struct {
	ID uuid.UUID
	Ts time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdvanceWatermark
}

var _ instanceRepo = &instanceRepoMock{}

type instanceRepoMock struct {
	ListOriginalStartsFunc func(ctx context.Context, templateID uuid.UUID, from, to time.Time) ([]time.Time, error)
	CreateBatchFunc        func(ctx context.Context, instances []*domain.EventInstance) (int64, error)

	calls struct {
		ListOriginalStarts []uuid.UUID
		CreateBatch        [][]*domain.EventInstance
	}
	lock sync.RWMutex
}

func (mock *instanceRepoMock) ListOriginalStarts(ctx context.Context, templateID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	if mock.ListOriginalStartsFunc == nil {
		panic("instanceRepoMock.ListOriginalStartsFunc: method is nil but instanceRepo.ListOriginalStarts was just called")
	}
	mock.lock.Lock()
	mock.calls.ListOriginalStarts = append(mock.calls.ListOriginalStarts, templateID)
	mock.lock.Unlock()
	return mock.ListOriginalStartsFunc(ctx, templateID, from, to)
}

func (mock *instanceRepoMock) CreateBatch(ctx context.Context, instances []*domain.EventInstance) (int64, error) {
	if mock.CreateBatchFunc == nil {
		panic("instanceRepoMock.CreateBatchFunc: method is nil but instanceRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, instances)
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, instances)
}

func (mock *instanceRepoMock) CreateBatchCalls() [][]*domain.EventInstance {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateBatch
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}
