package dashboard

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"nativoseo/internal/dashboard/localstore"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"

	"golang.org/x/sync/errgroup"
)

// ActiveSet keeps the local mirror of active location ids in step with the
// backend, which stays the source of truth.
type ActiveSet struct {
	api    API
	store  *localstore.Store
	logger *slog.Logger

	// serializes read-modify-write of the mirror
	mu sync.Mutex
}

// Load fetches the active set and overwrites the mirror with it. When the backend
// cannot answer the mirror is used instead; a 401 is returned as is.
func (a *ActiveSet) Load(ctx context.Context) (map[string]bool, error) {
	list, err := a.api.ActiveLocations(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			return nil, err
		}
		a.logger.Warn("Using cached active locations", slog.Any("error", err))

		return toSet(a.store.ActiveLocations()), nil
	}

	ids := make([]string, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.LocationID)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.SetActiveLocations(ids); err != nil {
		a.logger.Warn("Failed to refresh active location cache", slog.Any("error", err))
	}

	return toSet(ids), nil
}

// Activate marks one location active. The mirror changes only after the backend
// acknowledged the request.
func (a *ActiveSet) Activate(ctx context.Context, accountID string, loc client.Location) error {
	if _, err := a.api.ActivateLocation(ctx, accountID, loc.ID(), loc.Title); err != nil {
		return errors.Wrapf(err, "activate location %s", loc.ID())
	}

	return a.apply([]string{loc.ID()}, nil)
}

// Deactivate is the inverse of Activate.
func (a *ActiveSet) Deactivate(ctx context.Context, accountID, locationID string) error {
	if err := a.api.DeactivateLocation(ctx, accountID, locationID); err != nil {
		return errors.Wrapf(err, "deactivate location %s", locationID)
	}

	return a.apply(nil, []string{locationID})
}

// ActivateAll sends one activation per location concurrently and waits for all of
// them. The mirror gains exactly the acknowledged ids; every failure is joined
// into the returned error.
func (a *ActiveSet) ActivateAll(ctx context.Context, accountID string, locs []client.Location) error {
	acked, err := fanOut(locs, func(loc client.Location) (string, error) {
		if _, err := a.api.ActivateLocation(ctx, accountID, loc.ID(), loc.Title); err != nil {
			return "", errors.Wrapf(err, "activate location %s", loc.ID())
		}

		return loc.ID(), nil
	})

	return errors.Join(err, a.apply(acked, nil))
}

// DeactivateAll sends one deactivation per id concurrently; see ActivateAll.
func (a *ActiveSet) DeactivateAll(ctx context.Context, accountID string, locationIDs []string) error {
	acked, err := fanOut(locationIDs, func(id string) (string, error) {
		if err := a.api.DeactivateLocation(ctx, accountID, id); err != nil {
			return "", errors.Wrapf(err, "deactivate location %s", id)
		}

		return id, nil
	})

	return errors.Join(err, a.apply(nil, acked))
}

func (a *ActiveSet) apply(add, remove []string) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ids := slices.DeleteFunc(a.store.ActiveLocations(), func(id string) bool {
		return slices.Contains(remove, id)
	})

	return errors.Wrap(a.store.SetActiveLocations(append(ids, add...)), "update active location cache")
}

// fanOut runs fn for every item at once, without a limit, and lets every call
// settle. It returns the ids of the calls that succeeded and the joined failures.
func fanOut[T any](items []T, fn func(T) (string, error)) ([]string, error) {
	var (
		g     errgroup.Group
		mu    sync.Mutex
		acked []string
		errs  []error
	)

	for _, item := range items {
		g.Go(func() error {
			id, err := fn(item)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, err)
			} else {
				acked = append(acked, id)
			}

			return nil
		})
	}
	_ = g.Wait()

	return acked, errors.Join(errs...)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
