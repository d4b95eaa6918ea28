package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetTemplateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	CreateFunc       func(ctx context.Context, ev *domain.Event) error
	UpdateFunc       func(ctx context.Context, ev *domain.Event) error
	MarkTemplateFunc func(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error
	DeleteByIDsFunc  func(ctx context.Context, ids []uuid.UUID) (int64, error)

	calls struct {
		Create       []*domain.Event
		Update       []*domain.Event
		MarkTemplate []uuid.UUID
		DeleteByIDs  [][]uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *eventRepoMock) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetTemplateFunc == nil {
		panic("eventRepoMock.GetTemplateFunc: method is nil but eventRepo.GetTemplate was just called")
	}
	return mock.GetTemplateFunc(ctx, id)
}

func (mock *eventRepoMock) Create(ctx context.Context, ev *domain.Event) error {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, ev)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []*domain.Event {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *eventRepoMock) Update(ctx context.Context, ev *domain.Event) error {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, ev)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, ev)
}

func (mock *eventRepoMock) UpdateCalls() []*domain.Event {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *eventRepoMock) MarkTemplate(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error {
	if mock.MarkTemplateFunc == nil {
		panic("eventRepoMock.MarkTemplateFunc: method is nil but eventRepo.MarkTemplate was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkTemplate = append(mock.calls.MarkTemplate, id)
	mock.lock.Unlock()
	return mock.MarkTemplateFunc(ctx, id, updaterID)
}

func (mock *eventRepoMock) MarkTemplateCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkTemplate
}

func (mock *eventRepoMock) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("eventRepoMock.DeleteByIDsFunc: method is nil but eventRepo.DeleteByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, ids)
	mock.lock.Unlock()
	return mock.DeleteByIDsFunc(ctx, ids)
}

func (mock *eventRepoMock) DeleteByIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByIDs
}

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.RecurrenceRule, error)
	GetByTemplateIDFunc func(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error)
	ListBySeriesFunc    func(ctx context.Context, seriesID uuid.UUID) ([]*domain.RecurrenceRule, error)
	CreateFunc          func(ctx context.Context, rule *domain.RecurrenceRule) error
	SetEndDateFunc      func(ctx context.Context, id uuid.UUID, end time.Time, updaterID uuid.UUID) error
	DeleteBySeriesFunc  func(ctx context.Context, seriesID uuid.UUID) (int64, error)

	calls struct {
		Create     []*domain.RecurrenceRule
		SetEndDate []struct {
			ID  uuid.UUID
			End time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *ruleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurrenceRule, error) {
	if mock.GetByIDFunc == nil {
		panic("ruleRepoMock.GetByIDFunc: method is nil but ruleRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ruleRepoMock) GetByTemplateID(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error) {
	if mock.GetByTemplateIDFunc == nil {
		panic("ruleRepoMock.GetByTemplateIDFunc: method is nil but ruleRepo.GetByTemplateID was just called")
	}
	return mock.GetByTemplateIDFunc(ctx, templateID)
}

func (mock *ruleRepoMock) ListBySeries(ctx context.Context, seriesID uuid.UUID) ([]*domain.RecurrenceRule, error) {
	if mock.ListBySeriesFunc == nil {
		panic("ruleRepoMock.ListBySeriesFunc: method is nil but ruleRepo.ListBySeries was just called")
	}
	return mock.ListBySeriesFunc(ctx, seriesID)
}

func (mock *ruleRepoMock) Create(ctx context.Context, rule *domain.RecurrenceRule) error {
	if mock.CreateFunc == nil {
		panic("ruleRepoMock.CreateFunc: method is nil but ruleRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, rule)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, rule)
}

func (mock *ruleRepoMock) CreateCalls() []*domain.RecurrenceRule {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *ruleRepoMock) SetEndDate(ctx context.Context, id uuid.UUID, end time.Time, updaterID uuid.UUID) error {
	if mock.SetEndDateFunc == nil {
		panic("ruleRepoMock.SetEndDateFunc: method is nil but ruleRepo.SetEndDate was just called")
	}
	mock.lock.Lock()
	mock.calls.SetEndDate = append(mock.calls.SetEndDate, struct {
		ID  uuid.UUID
		End time.Time
	}{id, end})
	mock.lock.Unlock()
	return mock.SetEndDateFunc(ctx, id, end, updaterID)
}

func (mock *ruleRepoMock) SetEndDateCalls() []struct {
	ID  uuid.UUID
	End time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetEndDate
}

func (mock *ruleRepoMock) DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	if mock.DeleteBySeriesFunc == nil {
		panic("ruleRepoMock.DeleteBySeriesFunc: method is nil but ruleRepo.DeleteBySeries was just called")
	}
	return mock.DeleteBySeriesFunc(ctx, seriesID)
}

var _ instanceRepo = &instanceRepoMock{}

type instanceRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error)
	UpdateActualFunc       func(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error
	DeleteBySeriesFromFunc func(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteBySeriesFunc     func(ctx context.Context, seriesID uuid.UUID) (int64, error)

	calls struct {
		UpdateActual []struct {
			ID        uuid.UUID
			Start     time.Time
			End       time.Time
			Cancelled bool
		}
		DeleteBySeriesFrom []struct {
			SeriesID uuid.UUID
			Cut      time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *instanceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
	if mock.GetByIDFunc == nil {
		panic("instanceRepoMock.GetByIDFunc: method is nil but instanceRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *instanceRepoMock) UpdateActual(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error {
	if mock.UpdateActualFunc == nil {
		panic("instanceRepoMock.UpdateActualFunc: method is nil but instanceRepo.UpdateActual was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateActual = append(mock.calls.UpdateActual, struct {
		ID        uuid.UUID
		Start     time.Time
		End       time.Time
		Cancelled bool
	}{id, start, end, cancelled})
	mock.lock.Unlock()
	return mock.UpdateActualFunc(ctx, id, start, end, cancelled)
}

func (mock *instanceRepoMock) UpdateActualCalls() []struct {
	ID        uuid.UUID
	Start     time.Time
	End       time.Time
	Cancelled bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateActual
}

func (mock *instanceRepoMock) DeleteBySeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	if mock.DeleteBySeriesFromFunc == nil {
		panic("instanceRepoMock.DeleteBySeriesFromFunc: method is nil but instanceRepo.DeleteBySeriesFrom was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteBySeriesFrom = append(mock.calls.DeleteBySeriesFrom, struct {
		SeriesID uuid.UUID
		Cut      time.Time
	}{seriesID, cut})
	mock.lock.Unlock()
	return mock.DeleteBySeriesFromFunc(ctx, seriesID, cut)
}

func (mock *instanceRepoMock) DeleteBySeriesFromCalls() []struct {
	SeriesID uuid.UUID
	Cut      time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteBySeriesFrom
}

func (mock *instanceRepoMock) DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	if mock.DeleteBySeriesFunc == nil {
		panic("instanceRepoMock.DeleteBySeriesFunc: method is nil but instanceRepo.DeleteBySeries was just called")
	}
	return mock.DeleteBySeriesFunc(ctx, seriesID)
}

var _ exceptionRepo = &exceptionRepoMock{}

type exceptionRepoMock struct {
	UpsertFunc                 func(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error)
	DeleteForTemplatesFromFunc func(ctx context.Context, templateIDs []uuid.UUID, cut time.Time) (int64, error)
	DeleteByTemplatesFunc      func(ctx context.Context, templateIDs []uuid.UUID) (int64, error)

	calls struct {
		Upsert []struct {
			TemplateID    uuid.UUID
			InstanceStart time.Time
			Data          domain.ExceptionData
		}
	}
	lock sync.RWMutex
}

func (mock *exceptionRepoMock) Upsert(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error) {
	if mock.UpsertFunc == nil {
		panic("exceptionRepoMock.UpsertFunc: method is nil but exceptionRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		TemplateID    uuid.UUID
		InstanceStart time.Time
		Data          domain.ExceptionData
	}{templateID, instanceStart, data})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, templateID, instanceStart, orgID, data, creatorID)
}

func (mock *exceptionRepoMock) UpsertCalls() []struct {
	TemplateID    uuid.UUID
	InstanceStart time.Time
	Data          domain.ExceptionData
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

func (mock *exceptionRepoMock) DeleteForTemplatesFrom(ctx context.Context, templateIDs []uuid.UUID, cut time.Time) (int64, error) {
	if mock.DeleteForTemplatesFromFunc == nil {
		panic("exceptionRepoMock.DeleteForTemplatesFromFunc: method is nil but exceptionRepo.DeleteForTemplatesFrom was just called")
	}
	return mock.DeleteForTemplatesFromFunc(ctx, templateIDs, cut)
}

func (mock *exceptionRepoMock) DeleteByTemplates(ctx context.Context, templateIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByTemplatesFunc == nil {
		panic("exceptionRepoMock.DeleteByTemplatesFunc: method is nil but exceptionRepo.DeleteByTemplates was just called")
	}
	return mock.DeleteByTemplatesFunc(ctx, templateIDs)
}

var _ actionItemRepo = &actionItemRepoMock{}

type actionItemRepoMock struct {
	DeleteByInstancesOfSeriesFunc     func(ctx context.Context, seriesID uuid.UUID) (int64, error)
	DeleteByInstancesOfSeriesFromFunc func(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteByEventsFunc                func(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

func (mock *actionItemRepoMock) DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	if mock.DeleteByInstancesOfSeriesFunc == nil {
		panic("actionItemRepoMock.DeleteByInstancesOfSeriesFunc: method is nil but actionItemRepo.DeleteByInstancesOfSeries was just called")
	}
	return mock.DeleteByInstancesOfSeriesFunc(ctx, seriesID)
}

func (mock *actionItemRepoMock) DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	if mock.DeleteByInstancesOfSeriesFromFunc == nil {
		panic("actionItemRepoMock.DeleteByInstancesOfSeriesFromFunc: method is nil but actionItemRepo.DeleteByInstancesOfSeriesFrom was just called")
	}
	return mock.DeleteByInstancesOfSeriesFromFunc(ctx, seriesID, cut)
}

func (mock *actionItemRepoMock) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByEventsFunc == nil {
		panic("actionItemRepoMock.DeleteByEventsFunc: method is nil but actionItemRepo.DeleteByEvents was just called")
	}
	return mock.DeleteByEventsFunc(ctx, eventIDs)
}

var _ volunteerRepo = &volunteerRepoMock{}

type volunteerRepoMock struct {
	DeleteByInstancesOfSeriesFunc     func(ctx context.Context, seriesID uuid.UUID) (int64, error)
	DeleteByInstancesOfSeriesFromFunc func(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteByEventsFunc                func(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

func (mock *volunteerRepoMock) DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	if mock.DeleteByInstancesOfSeriesFunc == nil {
		panic("volunteerRepoMock.DeleteByInstancesOfSeriesFunc: method is nil but volunteerRepo.DeleteByInstancesOfSeries was just called")
	}
	return mock.DeleteByInstancesOfSeriesFunc(ctx, seriesID)
}

func (mock *volunteerRepoMock) DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error) {
	if mock.DeleteByInstancesOfSeriesFromFunc == nil {
		panic("volunteerRepoMock.DeleteByInstancesOfSeriesFromFunc: method is nil but volunteerRepo.DeleteByInstancesOfSeriesFrom was just called")
	}
	return mock.DeleteByInstancesOfSeriesFromFunc(ctx, seriesID, cut)
}

func (mock *volunteerRepoMock) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByEventsFunc == nil {
		panic("volunteerRepoMock.DeleteByEventsFunc: method is nil but volunteerRepo.DeleteByEvents was just called")
	}
	return mock.DeleteByEventsFunc(ctx, eventIDs)
}

var _ attachmentRepo = &attachmentRepoMock{}

type attachmentRepoMock struct {
	DeleteByEventsFunc func(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

func (mock *attachmentRepoMock) DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByEventsFunc == nil {
		panic("attachmentRepoMock.DeleteByEventsFunc: method is nil but attachmentRepo.DeleteByEvents was just called")
	}
	return mock.DeleteByEventsFunc(ctx, eventIDs)
}

var _ materializer = &materializerMock{}

type materializerMock struct {
	MaterializeDefaultWindowFunc func(ctx context.Context, templateID uuid.UUID) (int, error)

	calls struct {
		MaterializeDefaultWindow []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *materializerMock) MaterializeDefaultWindow(ctx context.Context, templateID uuid.UUID) (int, error) {
	if mock.MaterializeDefaultWindowFunc == nil {
		panic("materializerMock.MaterializeDefaultWindowFunc: method is nil but materializer.MaterializeDefaultWindow was just called")
	}
	mock.lock.Lock()
	mock.calls.MaterializeDefaultWindow = append(mock.calls.MaterializeDefaultWindow, templateID)
	mock.lock.Unlock()
	return mock.MaterializeDefaultWindowFunc(ctx, templateID)
}

func (mock *materializerMock) MaterializeDefaultWindowCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MaterializeDefaultWindow
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline unless RunInTxFunc is set.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
