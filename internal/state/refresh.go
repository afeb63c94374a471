package state

import (
	"context"
	"encoding/json"

	"wedding-portal/internal/data/entity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Refresh reloads the entire state from the storage port: all entity
// collections are fetched concurrently, the seat ledger is rebuilt
// from the fetched guests and capacity, and the in-memory state is
// swapped in one step so readers never observe a partial refresh.
//
// Any fetch error degrades instead of failing: the last local
// snapshot (or bootstrap defaults) is loaded and a warning is
// returned for the caller to surface. The returned error is reserved
// for genuinely unusable fallback state and is nil in practice.
func (m *Manager) Refresh(ctx context.Context) (warning string, err error) {
	fetched, fetchErr := m.fetchAll(ctx)
	if fetchErr != nil {
		m.log.Warn("Full refresh failed, falling back to local snapshot",
			zap.Error(fetchErr),
			zap.Bool("remote_mode", m.remote),
		)
		fetched = m.loadFallback()
		warning = "live data unavailable, showing last saved state"
	}

	fresh := m.buildState(fetched)

	m.mu.Lock()
	m.app = fresh
	m.mu.Unlock()

	m.log.Info("State refreshed",
		zap.Int("guests", len(fresh.Guests)),
		zap.Int("max_seats", fresh.Settings.MaxSeats),
		zap.Bool("degraded", warning != ""),
	)

	if !m.remote && fetchErr == nil && fetched.Settings == nil {
		// First run in local mode: persist the bootstrapped settings
		// so the snapshot exists from here on.
		m.bootstrapLocal(ctx, fresh)
	}

	return warning, nil
}

// fetchAll pulls every collection through the port. Collections are
// disjoint, so the fetches run concurrently.
func (m *Manager) fetchAll(ctx context.Context) (*entity.Snapshot, error) {
	var snap entity.Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Guests, err = m.repo.Guest.FindAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Settings, err = m.repo.Settings.Find(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Food, err = m.repo.Menu.FindFood(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Drinks, err = m.repo.Menu.FindDrinks(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Asoebi, err = m.repo.Catalog.FindAsoebi(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Registry, err = m.repo.Catalog.FindRegistry(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Payment, err = m.repo.Catalog.FindPayment(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Gallery, err = m.repo.Gallery.FindGallery(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Party, err = m.repo.Gallery.FindParty(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// loadFallback reads the last saved snapshot, or returns an empty one
// (defaults get filled in by buildState) if there is none or it
// cannot be decoded.
func (m *Manager) loadFallback() *entity.Snapshot {
	if m.snap == nil {
		return &entity.Snapshot{}
	}

	data, err := m.snap.Load()
	if err != nil || data == nil {
		if err != nil {
			m.log.Warn("Local snapshot unreadable, bootstrapping defaults", zap.Error(err))
		}
		return &entity.Snapshot{}
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.log.Warn("Local snapshot corrupt, bootstrapping defaults", zap.Error(err))
		return &entity.Snapshot{}
	}
	return &snap
}

func (m *Manager) bootstrapLocal(ctx context.Context, fresh *AppState) {
	if err := m.repo.Settings.Save(ctx, fresh.Settings.Clone()); err != nil {
		m.log.Warn("Failed to bootstrap local settings", zap.Error(err))
	}
}
