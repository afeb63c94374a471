// Package state owns the in-memory application state and keeps it
// reconciled with the storage port. Every mutation goes port-first:
// the write is attempted against the active adapter and memory is
// only touched on success, so a failed write always leaves prior
// state intact.
package state

import (
	"sort"
	"sync"
	"time"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/data/repository"
	"wedding-portal/internal/seating"
	"wedding-portal/pkg/database"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

// tableMetaQuietPeriod is how long a burst of table name/note edits
// must go quiet before the settings record is persisted.
const tableMetaQuietPeriod = 800 * time.Millisecond

// AppState is the aggregate root: settings, guests, the derived seat
// ledger and all catalog collections. It is replaced wholesale on
// refresh and mutated field-at-a-time otherwise, always under the
// manager's lock.
type AppState struct {
	Settings *entity.Settings
	Guests   map[string]*entity.Guest
	Ledger   *seating.Ledger
	Food     []*entity.FoodItem
	Drinks   []*entity.DrinkItem
	Asoebi   []*entity.AsoebiItem
	Registry []*entity.RegistryItem
	Gallery  []*entity.GalleryItem
	Party    []*entity.PartyMember
	Payment  *entity.PaymentDetails
}

// Manager mediates every read and write of the AppState.
type Manager struct {
	mu       sync.RWMutex
	app      *AppState
	repo     *repository.Repository
	snap     *database.SnapshotStore
	remote   bool
	cfg      *utils.Config
	log      *zap.Logger
	debounce *Debouncer
}

func NewManager(repo *repository.Repository, snap *database.SnapshotStore, remote bool, cfg *utils.Config, log *zap.Logger) *Manager {
	m := &Manager{
		repo:   repo,
		snap:   snap,
		remote: remote,
		cfg:    cfg,
		log:    log.With(zap.String("component", "state")),
	}
	m.app = m.bootstrapState()
	m.debounce = NewDebouncer(tableMetaQuietPeriod)
	return m
}

// RemoteMode reports which adapter family was selected at startup.
func (m *Manager) RemoteMode() bool {
	return m.remote
}

func (m *Manager) defaultSettings() *entity.Settings {
	ev := m.cfg.Event
	return &entity.Settings{
		EventName:     ev.Name,
		EventDate:     ev.Date,
		Venue:         ev.Venue,
		MaxSeats:      ev.MaxSeats,
		SeatsPerTable: ev.SeatsPerTable,
		ThemeID:       ev.ThemeID,
		TableNames:    map[int]string{},
		TableNotes:    map[int]string{},
		UpdatedAt:     time.Now(),
	}
}

func (m *Manager) bootstrapState() *AppState {
	guests := map[string]*entity.Guest{}
	settings := m.defaultSettings()
	return &AppState{
		Settings: settings,
		Guests:   guests,
		Ledger:   seating.NewLedger(settings.MaxSeats, guests),
	}
}

// buildState assembles a consistent AppState from fetched
// collections: guests indexed by code and the seat ledger
// rematerialized from their seat numbers and the stored capacity.
func (m *Manager) buildState(snap *entity.Snapshot) *AppState {
	settings := snap.Settings
	if settings == nil {
		settings = m.defaultSettings()
	}
	if settings.TableNames == nil {
		settings.TableNames = map[int]string{}
	}
	if settings.TableNotes == nil {
		settings.TableNotes = map[int]string{}
	}

	guests := make(map[string]*entity.Guest, len(snap.Guests))
	assignments := make(map[string]int)
	for _, g := range snap.Guests {
		guests[g.Code] = g
		if g.SeatNumber != nil {
			assignments[g.Code] = *g.SeatNumber
		}
	}

	if collisions := seating.Collisions(assignments); len(collisions) > 0 {
		// Two guest records claiming one seat resolves last write
		// wins; auto-assign repairs the loser later.
		m.log.Warn("Seat number collisions in guest records",
			zap.Ints("seats", collisions),
		)
	}

	return &AppState{
		Settings: settings,
		Guests:   guests,
		Ledger:   seating.NewLedger(settings.MaxSeats, guests),
		Food:     snap.Food,
		Drinks:   snap.Drinks,
		Asoebi:   snap.Asoebi,
		Registry: snap.Registry,
		Gallery:  snap.Gallery,
		Party:    snap.Party,
		Payment:  snap.Payment,
	}
}

// ==================== READS ====================

func (m *Manager) Settings() *entity.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.app.Settings.Clone()
}

func (m *Manager) Guest(code string) (*entity.Guest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.app.Guests[code]
	if !ok {
		return nil, false
	}
	out := *g
	return &out, true
}

// Guests returns copies in creation order, code as tiebreaker.
func (m *Manager) Guests() []*entity.Guest {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entity.Guest, 0, len(m.app.Guests))
	for _, g := range m.app.Guests {
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func (m *Manager) Seats() seating.SeatMap {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.app.Ledger.Seats()
}

func (m *Manager) Food() []*entity.FoodItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.FoodItem, len(m.app.Food))
	for i, it := range m.app.Food {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Drinks() []*entity.DrinkItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.DrinkItem, len(m.app.Drinks))
	for i, it := range m.app.Drinks {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Asoebi() []*entity.AsoebiItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.AsoebiItem, len(m.app.Asoebi))
	for i, it := range m.app.Asoebi {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Registry() []*entity.RegistryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.RegistryItem, len(m.app.Registry))
	for i, it := range m.app.Registry {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Gallery() []*entity.GalleryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.GalleryItem, len(m.app.Gallery))
	for i, it := range m.app.Gallery {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Party() []*entity.PartyMember {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.PartyMember, len(m.app.Party))
	for i, it := range m.app.Party {
		cp := *it
		out[i] = &cp
	}
	return out
}

func (m *Manager) Payment() *entity.PaymentDetails {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.app.Payment == nil {
		return nil
	}
	cp := *m.app.Payment
	return &cp
}
