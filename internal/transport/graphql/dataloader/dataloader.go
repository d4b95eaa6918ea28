// Package dataloader provides per-request DataLoaders for batching GraphQL
// field queries into single calls. Action item and volunteer loaders call
// repositories directly; the resolved-instance loader goes through the
// resolution service so exception overlays still apply.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type actionItemRepo interface {
	ListByInstanceIDs(ctx context.Context, instanceIDs []uuid.UUID) ([]*domain.ActionItem, error)
	ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.ActionItem, error)
}

type volunteerRepo interface {
	ListByInstanceIDs(ctx context.Context, instanceIDs []uuid.UUID) ([]*domain.VolunteerBinding, error)
	ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.VolunteerBinding, error)
}

type instanceResolver interface {
	ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error)
}

// ---------------------------------------------------------------------------
// Repos aggregates everything the loaders need.
// ---------------------------------------------------------------------------

// Repos holds the repositories and services required by DataLoaders.
type Repos struct {
	ActionItems actionItemRepo
	Volunteers  volunteerRepo
	Resolver    instanceResolver
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains all DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	ActionItemsByInstanceID       *dataloader.Loader[uuid.UUID, []*domain.ActionItem]
	ActionItemsByEventID          *dataloader.Loader[uuid.UUID, []*domain.ActionItem]
	VolunteersByInstanceID        *dataloader.Loader[uuid.UUID, []*domain.VolunteerBinding]
	VolunteersByEventID           *dataloader.Loader[uuid.UUID, []*domain.VolunteerBinding]
	ResolvedInstancesByTemplateID *dataloader.Loader[uuid.UUID, []*domain.ResolvedInstance]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ActionItemsByInstanceID:       newLoader(newActionItemsByInstanceBatchFn(repos.ActionItems)),
		ActionItemsByEventID:          newLoader(newActionItemsByEventBatchFn(repos.ActionItems)),
		VolunteersByInstanceID:        newLoader(newVolunteersByInstanceBatchFn(repos.Volunteers)),
		VolunteersByEventID:           newLoader(newVolunteersByEventBatchFn(repos.Volunteers)),
		ResolvedInstancesByTemplateID: newLoader(newResolvedInstancesBatchFn(repos.Resolver)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context - is middleware configured?")
	}
	return l
}
