package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

var _ windowRepo = &windowRepoMock{}

type windowRepoMock struct {
	EnsureDefaultFunc func(ctx context.Context, orgID uuid.UUID, monthsAhead int, now time.Time) (*domain.GenerationWindow, error)
	ListDueFunc       func(ctx context.Context, now time.Time, lookAhead, cooldown time.Duration, limit int) ([]*domain.GenerationWindow, error)
	MarkProcessedFunc func(ctx context.Context, id uuid.UUID, windowEnd, processedAt time.Time) error

	calls struct {
		MarkProcessed []struct {
			ID          uuid.UUID
			WindowEnd   time.Time
			ProcessedAt time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *windowRepoMock) EnsureDefault(ctx context.Context, orgID uuid.UUID, monthsAhead int, now time.Time) (*domain.GenerationWindow, error) {
	if mock.EnsureDefaultFunc == nil {
		panic("windowRepoMock.EnsureDefaultFunc: method is nil but windowRepo.EnsureDefault was just called")
	}
	return mock.EnsureDefaultFunc(ctx, orgID, monthsAhead, now)
}

func (mock *windowRepoMock) ListDue(ctx context.Context, now time.Time, lookAhead, cooldown time.Duration, limit int) ([]*domain.GenerationWindow, error) {
	if mock.ListDueFunc == nil {
		panic("windowRepoMock.ListDueFunc: method is nil but windowRepo.ListDue was just called")
	}
	return mock.ListDueFunc(ctx, now, lookAhead, cooldown, limit)
}

func (mock *windowRepoMock) MarkProcessed(ctx context.Context, id uuid.UUID, windowEnd, processedAt time.Time) error {
	if mock.MarkProcessedFunc == nil {
		panic("windowRepoMock.MarkProcessedFunc: method is nil but windowRepo.MarkProcessed was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, struct {
		ID          uuid.UUID
		WindowEnd   time.Time
		ProcessedAt time.Time
	}{id, windowEnd, processedAt})
	mock.lock.Unlock()
	return mock.MarkProcessedFunc(ctx, id, windowEnd, processedAt)
}

func (mock *windowRepoMock) MarkProcessedCalls() []struct {
	ID          uuid.UUID
	WindowEnd   time.Time
	ProcessedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkProcessed
}

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	ListByOrganizationFunc func(ctx context.Context, orgID uuid.UUID) ([]*domain.RecurrenceRule, error)
}

func (mock *ruleRepoMock) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.RecurrenceRule, error) {
	if mock.ListByOrganizationFunc == nil {
		panic("ruleRepoMock.ListByOrganizationFunc: method is nil but ruleRepo.ListByOrganization was just called")
	}
	return mock.ListByOrganizationFunc(ctx, orgID)
}

var _ materializer = &materializerMock{}

type materializerMock struct {
	MaterializeWindowFunc func(ctx context.Context, templateID uuid.UUID, windowStart, windowEnd time.Time) (int, error)

	calls struct {
		MaterializeWindow []struct {
			TemplateID  uuid.UUID
			WindowStart time.Time
			WindowEnd   time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *materializerMock) MaterializeWindow(ctx context.Context, templateID uuid.UUID, windowStart, windowEnd time.Time) (int, error) {
	if mock.MaterializeWindowFunc == nil {
		panic("materializerMock.MaterializeWindowFunc: method is nil but materializer.MaterializeWindow was just called")
	}
	mock.lock.Lock()
	mock.calls.MaterializeWindow = append(mock.calls.MaterializeWindow, struct {
		TemplateID  uuid.UUID
		WindowStart time.Time
		WindowEnd   time.Time
	}{templateID, windowStart, windowEnd})
	mock.lock.Unlock()
	return mock.MaterializeWindowFunc(ctx, templateID, windowStart, windowEnd)
}

func (mock *materializerMock) MaterializeWindowCalls() []struct {
	TemplateID  uuid.UUID
	WindowStart time.Time
	WindowEnd   time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MaterializeWindow
}
