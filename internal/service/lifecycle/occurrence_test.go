package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// overlayData lays incoming over prior field by field, mimicking the
// repository's jsonb merge.
func overlayData(prior, incoming domain.ExceptionData) domain.ExceptionData {
	out := prior
	if incoming.Name != nil {
		out.Name = incoming.Name
	}
	if incoming.Description != nil {
		out.Description = incoming.Description
	}
	if incoming.Location != nil {
		out.Location = incoming.Location
	}
	if incoming.StartAt != nil {
		out.StartAt = incoming.StartAt
	}
	if incoming.EndAt != nil {
		out.EndAt = incoming.EndAt
	}
	if incoming.AllDay != nil {
		out.AllDay = incoming.AllDay
	}
	if incoming.IsPublic != nil {
		out.IsPublic = incoming.IsPublic
	}
	if incoming.IsRegisterable != nil {
		out.IsRegisterable = incoming.IsRegisterable
	}
	if incoming.IsCancelled != nil {
		out.IsCancelled = incoming.IsCancelled
	}
	return out
}

// upsertEcho returns an exception whose data is the incoming data merged
// over prior, mimicking the repository's jsonb merge.
func upsertEcho(prior domain.ExceptionData) func(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error) {
	return func(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error) {
		return &domain.EventException{
			ID:                uuid.New(),
			RecurringEventID:  templateID,
			InstanceStartTime: instanceStart,
			OrganizationID:    orgID,
			Data:              overlayData(prior, data),
			CreatorID:         creatorID,
			CreatedAt:         time.Now().UTC(),
		}, nil
	}
}

func TestService_UpdateSingleOccurrence_ContentOnly(t *testing.T) {
	t.Parallel()

	f := newSeriesFixture()

	d := newDeps()
	d.instances.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
		return f.inst, nil
	}
	d.exceptions.UpsertFunc = upsertEcho(domain.ExceptionData{})
	svc := d.service()

	exc, err := svc.UpdateSingleOccurrence(context.Background(), f.inst.ID, domain.EventPatch{
		Name: ptr("Standup (remote)"),
	}, uuid.New())
	require.NoError(t, err)

	require.NotNil(t, exc.Data.Name)
	assert.Equal(t, "Standup (remote)", *exc.Data.Name)

	upserts := d.exceptions.UpsertCalls()
	require.Len(t, upserts, 1)
	assert.Equal(t, f.template.ID, upserts[0].TemplateID)
	assert.True(t, upserts[0].InstanceStart.Equal(f.inst.OriginalInstanceStartTime),
		"exception keyed by original start")
	assert.Empty(t, d.instances.UpdateActualCalls(), "content edit leaves the instance row alone")
}

func TestService_UpdateSingleOccurrence_MovesInstanceRow(t *testing.T) {
	t.Parallel()

	f := newSeriesFixture()
	newStart := f.inst.ActualStartTime.Add(2 * time.Hour)
	newEnd := newStart.Add(time.Hour)

	d := newDeps()
	d.instances.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
		return f.inst, nil
	}
	d.exceptions.UpsertFunc = upsertEcho(domain.ExceptionData{})
	d.instances.UpdateActualFunc = func(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error {
		return nil
	}
	svc := d.service()

	_, err := svc.UpdateSingleOccurrence(context.Background(), f.inst.ID, domain.EventPatch{
		StartAt: &newStart,
		EndAt:   &newEnd,
	}, uuid.New())
	require.NoError(t, err)

	updates := d.instances.UpdateActualCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, f.inst.ID, updates[0].ID)
	assert.True(t, updates[0].Start.Equal(newStart))
	assert.True(t, updates[0].End.Equal(newEnd))
	assert.False(t, updates[0].Cancelled)
}

func TestService_UpdateSingleOccurrence_EarlierMoveSurvivesContentEdit(t *testing.T) {
	t.Parallel()

	f := newSeriesFixture()
	movedStart := f.inst.ActualStartTime.Add(3 * time.Hour)

	d := newDeps()
	d.instances.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
		return f.inst, nil
	}
	// A previous edit already moved the occurrence.
	d.exceptions.UpsertFunc = upsertEcho(domain.ExceptionData{StartAt: &movedStart})
	d.instances.UpdateActualFunc = func(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error {
		return nil
	}
	svc := d.service()

	_, err := svc.UpdateSingleOccurrence(context.Background(), f.inst.ID, domain.EventPatch{
		Name: ptr("New name"),
	}, uuid.New())
	require.NoError(t, err)

	updates := d.instances.UpdateActualCalls()
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Start.Equal(movedStart), "merged override drives the row, not the patch")
	assert.True(t, updates[0].End.Equal(f.inst.ActualEndTime))
}

func TestService_UpdateSingleOccurrence_EmptyPatch(t *testing.T) {
	t.Parallel()

	d := newDeps()
	svc := d.service()

	_, err := svc.UpdateSingleOccurrence(context.Background(), uuid.New(), domain.EventPatch{}, uuid.New())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, d.exceptions.UpsertCalls())
}

func TestService_CancelOccurrence(t *testing.T) {
	t.Parallel()

	f := newSeriesFixture()

	d := newDeps()
	d.instances.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
		return f.inst, nil
	}
	d.exceptions.UpsertFunc = upsertEcho(domain.ExceptionData{})
	d.instances.UpdateActualFunc = func(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error {
		return nil
	}
	svc := d.service()

	exc, err := svc.CancelOccurrence(context.Background(), f.inst.ID, uuid.New())
	require.NoError(t, err)

	require.NotNil(t, exc.Data.IsCancelled)
	assert.True(t, *exc.Data.IsCancelled)

	updates := d.instances.UpdateActualCalls()
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Cancelled, "cancellation flips the row flag")
	assert.True(t, updates[0].Start.Equal(f.inst.ActualStartTime), "times untouched")
}

func TestService_CancelOccurrence_AlreadyCancelled(t *testing.T) {
	t.Parallel()

	f := newSeriesFixture()
	f.inst.IsCancelled = true

	d := newDeps()
	d.instances.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error) {
		return f.inst, nil
	}
	svc := d.service()

	_, err := svc.CancelOccurrence(context.Background(), f.inst.ID, uuid.New())
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, d.exceptions.UpsertCalls())
}
