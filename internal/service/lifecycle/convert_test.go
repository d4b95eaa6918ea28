package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
)

func standaloneEvent() *domain.Event {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Board Meeting",
		StartAt:        start,
		EndAt:          start.Add(90 * time.Minute),
		CreatorID:      uuid.New(),
		CreatedAt:      start.AddDate(0, 0, -30),
	}
}

func TestService_ConvertToRecurring(t *testing.T) {
	t.Parallel()

	event := standaloneEvent()
	actorID := uuid.New()

	d := newDeps()
	d.events.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
		return event, nil
	}
	d.events.MarkTemplateFunc = func(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error {
		return nil
	}
	d.rules.CreateFunc = func(ctx context.Context, rule *domain.RecurrenceRule) error {
		return nil
	}
	d.mat.MaterializeDefaultWindowFunc = func(ctx context.Context, templateID uuid.UUID) (int, error) {
		return 12, nil
	}
	svc := d.service()

	got, rule, err := svc.ConvertToRecurring(context.Background(), event.ID, recurrence.Spec{
		Frequency: domain.FrequencyWeekly,
		Never:     true,
	}, actorID)
	require.NoError(t, err)

	assert.True(t, got.IsRecurringTemplate)
	assert.Equal(t, event.ID, rule.BaseRecurringEventID)
	assert.Equal(t, rule.ID, rule.OriginalSeriesID, "first rule names the series")
	assert.Equal(t, event.StartAt, rule.RecurrenceStartDate)
	assert.Contains(t, rule.RuleString, "FREQ=WEEKLY")
	assert.Equal(t, actorID, rule.CreatorID)

	require.Len(t, d.events.MarkTemplateCalls(), 1)
	require.Len(t, d.rules.CreateCalls(), 1)
	assert.Equal(t, []uuid.UUID{event.ID}, d.mat.MaterializeDefaultWindowCalls())
}

func TestService_ConvertToRecurring_AlreadyTemplate(t *testing.T) {
	t.Parallel()

	event := standaloneEvent()
	event.IsRecurringTemplate = true

	d := newDeps()
	d.events.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
		return event, nil
	}
	svc := d.service()

	_, _, err := svc.ConvertToRecurring(context.Background(), event.ID, recurrence.Spec{
		Frequency: domain.FrequencyWeekly,
		Never:     true,
	}, uuid.New())
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, d.rules.CreateCalls())
}

func TestService_ConvertToRecurring_InvalidSpec(t *testing.T) {
	t.Parallel()

	event := standaloneEvent()

	d := newDeps()
	d.events.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
		return event, nil
	}
	svc := d.service()

	// Neither count, end date, nor never.
	_, _, err := svc.ConvertToRecurring(context.Background(), event.ID, recurrence.Spec{
		Frequency: domain.FrequencyWeekly,
	}, uuid.New())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, d.events.MarkTemplateCalls())
}

func TestService_ConvertToRecurring_EventNotFound(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.events.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
		return nil, domain.ErrNotFound
	}
	svc := d.service()

	_, _, err := svc.ConvertToRecurring(context.Background(), uuid.New(), recurrence.Spec{
		Frequency: domain.FrequencyDaily,
		Count:     ptr(5),
	}, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ConvertToRecurring_MaterializeFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	event := standaloneEvent()

	d := newDeps()
	d.events.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
		return event, nil
	}
	d.events.MarkTemplateFunc = func(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error {
		return nil
	}
	d.rules.CreateFunc = func(ctx context.Context, rule *domain.RecurrenceRule) error {
		return nil
	}
	d.mat.MaterializeDefaultWindowFunc = func(ctx context.Context, templateID uuid.UUID) (int, error) {
		return 0, errors.New("pool exhausted")
	}
	svc := d.service()

	_, _, err := svc.ConvertToRecurring(context.Background(), event.ID, recurrence.Spec{
		Frequency: domain.FrequencyDaily,
		Count:     ptr(5),
	}, uuid.New())
	require.NoError(t, err, "worker fills the window later")
}
