package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Action items by InstanceID
// ---------------------------------------------------------------------------

func newActionItemsByInstanceBatchFn(repo actionItemRepo) dataloader.BatchFunc[uuid.UUID, []*domain.ActionItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.ActionItem] {
		items, err := repo.ListByInstanceIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.ActionItem](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.ActionItem, len(keys))
		for _, item := range items {
			if item.RecurringEventInstanceID == nil {
				continue
			}
			grouped[*item.RecurringEventInstanceID] = append(grouped[*item.RecurringEventInstanceID], item)
		}

		return mapResults(keys, grouped, emptySlice[*domain.ActionItem])
	}
}

// ---------------------------------------------------------------------------
// Action items by EventID
// ---------------------------------------------------------------------------

func newActionItemsByEventBatchFn(repo actionItemRepo) dataloader.BatchFunc[uuid.UUID, []*domain.ActionItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.ActionItem] {
		items, err := repo.ListByEventIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.ActionItem](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.ActionItem, len(keys))
		for _, item := range items {
			if item.EventID == nil {
				continue
			}
			grouped[*item.EventID] = append(grouped[*item.EventID], item)
		}

		return mapResults(keys, grouped, emptySlice[*domain.ActionItem])
	}
}

// ---------------------------------------------------------------------------
// Volunteer bindings by InstanceID
// ---------------------------------------------------------------------------

func newVolunteersByInstanceBatchFn(repo volunteerRepo) dataloader.BatchFunc[uuid.UUID, []*domain.VolunteerBinding] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.VolunteerBinding] {
		bindings, err := repo.ListByInstanceIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.VolunteerBinding](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.VolunteerBinding, len(keys))
		for _, b := range bindings {
			if b.InstanceID == nil {
				continue
			}
			grouped[*b.InstanceID] = append(grouped[*b.InstanceID], b)
		}

		return mapResults(keys, grouped, emptySlice[*domain.VolunteerBinding])
	}
}

// ---------------------------------------------------------------------------
// Volunteer bindings by EventID
// ---------------------------------------------------------------------------

func newVolunteersByEventBatchFn(repo volunteerRepo) dataloader.BatchFunc[uuid.UUID, []*domain.VolunteerBinding] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.VolunteerBinding] {
		bindings, err := repo.ListByEventIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.VolunteerBinding](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.VolunteerBinding, len(keys))
		for _, b := range bindings {
			if b.EventID == nil {
				continue
			}
			grouped[*b.EventID] = append(grouped[*b.EventID], b)
		}

		return mapResults(keys, grouped, emptySlice[*domain.VolunteerBinding])
	}
}

// ---------------------------------------------------------------------------
// Resolved instances by template ID
// ---------------------------------------------------------------------------

func newResolvedInstancesBatchFn(resolver instanceResolver) dataloader.BatchFunc[uuid.UUID, []*domain.ResolvedInstance] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.ResolvedInstance] {
		grouped, err := resolver.ResolveByTemplateIDs(ctx, keys, false)
		if err != nil {
			return errorResults[[]*domain.ResolvedInstance](len(keys), err)
		}

		return mapResults(keys, grouped, emptySlice[*domain.ResolvedInstance])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
