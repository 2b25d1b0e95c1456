package recommendation

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

type profileLoader = dataloader.Loader[uuid.UUID, domain.AcademicProfile]

// newProfileLoader returns a loader scoped to one call. Repeated keys are
// served from its cache and missing users resolve to the zero profile.
func (s *Service) newProfileLoader() *profileLoader {
	wait := s.cfg.LoaderWait
	capacity := s.cfg.LoaderBatchCapacity
	if capacity <= 0 {
		capacity = 100
	}

	return dataloader.NewBatchedLoader(
		newProfilesBatchFn(s.profiles),
		dataloader.WithWait[uuid.UUID, domain.AcademicProfile](wait),
		dataloader.WithBatchCapacity[uuid.UUID, domain.AcademicProfile](capacity),
	)
}

func newProfilesBatchFn(repo profileRepo) dataloader.BatchFunc[uuid.UUID, domain.AcademicProfile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.AcademicProfile] {
		users, err := repo.GetByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.AcademicProfile](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.AcademicProfile, len(users))
		for _, u := range users {
			byID[u.ID] = u.Profile
		}

		results := make([]*dataloader.Result[domain.AcademicProfile], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[domain.AcademicProfile]{Data: byID[key]}
		}
		return results
	}
}

// loadProfiles resolves the profile of every id in order.
func loadProfiles(ctx context.Context, l *profileLoader, ids []uuid.UUID) ([]domain.AcademicProfile, error) {
	thunks := make([]dataloader.Thunk[domain.AcademicProfile], len(ids))
	for i, id := range ids {
		thunks[i] = l.Load(ctx, id)
	}

	out := make([]domain.AcademicProfile, len(ids))
	for i, thunk := range thunks {
		p, err := thunk()
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// errorResults creates n results all containing the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
