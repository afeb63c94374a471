package state

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/data/repository"
	"wedding-portal/internal/seating"
	"wedding-portal/pkg/utils"
)

// memRepo is an in-memory storage port. Setting err fails every
// operation, which is how the remote-down scenarios are driven.
type memRepo struct {
	err      error
	guests   []*entity.Guest
	settings *entity.Settings
	food     []*entity.FoodItem
	drinks   []*entity.DrinkItem
	asoebi   []*entity.AsoebiItem
	registry []*entity.RegistryItem
	gallery  []*entity.GalleryItem
	party    []*entity.PartyMember
	payment  *entity.PaymentDetails
}

func (r *memRepo) FindAll(ctx context.Context) ([]*entity.Guest, error) {
	return r.guests, r.err
}

func (r *memRepo) FindByCode(ctx context.Context, code string) (*entity.Guest, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, g := range r.guests {
		if g.Code == code {
			return g, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Create(ctx context.Context, g *entity.Guest) error {
	if r.err != nil {
		return r.err
	}
	r.guests = append(r.guests, g)
	return nil
}

func (r *memRepo) CreateBatch(ctx context.Context, guests []*entity.Guest) error {
	if r.err != nil {
		return r.err
	}
	r.guests = append(r.guests, guests...)
	return nil
}

func (r *memRepo) Update(ctx context.Context, g *entity.Guest) error {
	if r.err != nil {
		return r.err
	}
	for i, cur := range r.guests {
		if cur.Code == g.Code {
			r.guests[i] = g
		}
	}
	return nil
}

func (r *memRepo) UpdateSeat(ctx context.Context, code string, seat *int) error {
	if r.err != nil {
		return r.err
	}
	for _, g := range r.guests {
		if g.Code == code {
			g.SeatNumber = seat
		}
	}
	return nil
}

func (r *memRepo) Find(ctx context.Context) (*entity.Settings, error) {
	return r.settings, r.err
}

func (r *memRepo) Save(ctx context.Context, s *entity.Settings) error {
	if r.err != nil {
		return r.err
	}
	r.settings = s
	return nil
}

func (r *memRepo) FindFood(ctx context.Context) ([]*entity.FoodItem, error) {
	return r.food, r.err
}

func (r *memRepo) AddFood(ctx context.Context, it *entity.FoodItem) error {
	if r.err != nil {
		return r.err
	}
	r.food = append(r.food, it)
	return nil
}

func (r *memRepo) UpdateFood(ctx context.Context, it *entity.FoodItem) error { return r.err }

func (r *memRepo) RemoveFood(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *memRepo) FindDrinks(ctx context.Context) ([]*entity.DrinkItem, error) {
	return r.drinks, r.err
}

func (r *memRepo) AddDrink(ctx context.Context, it *entity.DrinkItem) error {
	if r.err != nil {
		return r.err
	}
	r.drinks = append(r.drinks, it)
	return nil
}

func (r *memRepo) UpdateDrink(ctx context.Context, it *entity.DrinkItem) error { return r.err }

func (r *memRepo) RemoveDrink(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *memRepo) FindAsoebi(ctx context.Context) ([]*entity.AsoebiItem, error) {
	return r.asoebi, r.err
}

func (r *memRepo) AddAsoebi(ctx context.Context, it *entity.AsoebiItem) error { return r.err }

func (r *memRepo) UpdateAsoebi(ctx context.Context, it *entity.AsoebiItem) error { return r.err }

func (r *memRepo) RemoveAsoebi(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *memRepo) FindRegistry(ctx context.Context) ([]*entity.RegistryItem, error) {
	return r.registry, r.err
}

func (r *memRepo) AddRegistry(ctx context.Context, it *entity.RegistryItem) error { return r.err }

func (r *memRepo) UpdateRegistry(ctx context.Context, it *entity.RegistryItem) error { return r.err }

func (r *memRepo) RemoveRegistry(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *memRepo) FindPayment(ctx context.Context) (*entity.PaymentDetails, error) {
	return r.payment, r.err
}

func (r *memRepo) SavePayment(ctx context.Context, p *entity.PaymentDetails) error {
	if r.err != nil {
		return r.err
	}
	r.payment = p
	return nil
}

func (r *memRepo) FindGallery(ctx context.Context) ([]*entity.GalleryItem, error) {
	return r.gallery, r.err
}

func (r *memRepo) AddGalleryItem(ctx context.Context, it *entity.GalleryItem) error { return r.err }

func (r *memRepo) UpdateGalleryItem(ctx context.Context, it *entity.GalleryItem) error {
	return r.err
}

func (r *memRepo) RemoveGalleryItem(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *memRepo) FindParty(ctx context.Context) ([]*entity.PartyMember, error) {
	return r.party, r.err
}

func (r *memRepo) AddPartyMember(ctx context.Context, m *entity.PartyMember) error { return r.err }

func (r *memRepo) UpdatePartyMember(ctx context.Context, m *entity.PartyMember) error { return r.err }

func (r *memRepo) RemovePartyMember(ctx context.Context, id uuid.UUID) error { return r.err }

func testConfig() *utils.Config {
	return &utils.Config{
		Access: utils.AccessConfig{AdminCode: "ADMIN", UsherCode: "USHER"},
		Event: utils.EventConfig{
			Name:          "Test Wedding",
			MaxSeats:      10,
			SeatsPerTable: 4,
			ThemeID:       "classic",
		},
	}
}

func newTestManager(t *testing.T, repo *memRepo, remote bool) *Manager {
	t.Helper()
	agg := &repository.Repository{
		Guest:    repo,
		Settings: repo,
		Menu:     repo,
		Catalog:  repo,
		Gallery:  repo,
	}
	return NewManager(agg, nil, remote, testConfig(), zap.NewNop())
}

func seatPtr(n int) *int { return &n }

func TestRefreshBuildsConsistentState(t *testing.T) {
	repo := &memRepo{
		guests: []*entity.Guest{
			{Code: "AAAAA", SeatNumber: seatPtr(5), Category: entity.CategoryVVIP},
			{Code: "BBBBB", Category: entity.CategoryFamily},
		},
		settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
	}
	m := newTestManager(t, repo, true)

	warning, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warning)

	seats := m.Seats()
	require.Len(t, seats, 10)
	assert.Equal(t, "AAAAA", seats[4].GuestCode)
	assert.False(t, seats[0].Occupied)

	g, ok := m.Guest("BBBBB")
	require.True(t, ok)
	assert.Nil(t, g.SeatNumber)
}

func TestRefreshRemoteFailureFallsBackToDefaults(t *testing.T) {
	repo := &memRepo{err: assert.AnError}
	m := newTestManager(t, repo, true)

	warning, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, warning)

	// State equals the bootstrap defaults from config.
	s := m.Settings()
	assert.Equal(t, "Test Wedding", s.EventName)
	assert.Equal(t, 10, s.MaxSeats)
	assert.Empty(t, m.Guests())
	assert.Len(t, m.Seats(), 10)
}

func TestAssignSeat(t *testing.T) {
	t.Run("success writes through and updates memory", func(t *testing.T) {
		repo := &memRepo{
			guests:   []*entity.Guest{{Code: "AAAAA"}},
			settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
		}
		m := newTestManager(t, repo, true)
		_, err := m.Refresh(context.Background())
		require.NoError(t, err)

		require.NoError(t, m.AssignSeat(context.Background(), "AAAAA", 3))
		assert.Equal(t, 3, *repo.guests[0].SeatNumber)
		assert.Equal(t, "AAAAA", m.Seats()[2].GuestCode)
	})

	t.Run("conflict mutates nothing", func(t *testing.T) {
		repo := &memRepo{
			guests: []*entity.Guest{
				{Code: "AAAAA", SeatNumber: seatPtr(3)},
				{Code: "BBBBB"},
			},
			settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
		}
		m := newTestManager(t, repo, true)
		_, err := m.Refresh(context.Background())
		require.NoError(t, err)

		err = m.AssignSeat(context.Background(), "BBBBB", 3)
		assert.ErrorIs(t, err, seating.ErrSeatTaken)
		assert.Equal(t, "AAAAA", m.Seats()[2].GuestCode)
		g, _ := m.Guest("BBBBB")
		assert.Nil(t, g.SeatNumber)
	})

	t.Run("write failure leaves memory unchanged", func(t *testing.T) {
		repo := &memRepo{
			guests:   []*entity.Guest{{Code: "AAAAA"}},
			settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
		}
		m := newTestManager(t, repo, true)
		_, err := m.Refresh(context.Background())
		require.NoError(t, err)

		repo.err = assert.AnError
		err = m.AssignSeat(context.Background(), "AAAAA", 3)
		require.Error(t, err)

		g, _ := m.Guest("AAAAA")
		assert.Nil(t, g.SeatNumber)
		assert.False(t, m.Seats()[2].Occupied)
	})
}

func TestAutoAssignSeats(t *testing.T) {
	repo := &memRepo{
		guests: []*entity.Guest{
			{Code: "G1AAA", SeatNumber: seatPtr(5)},
			{Code: "G2AAA"},
		},
		settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
	}
	m := newTestManager(t, repo, true)
	_, err := m.Refresh(context.Background())
	require.NoError(t, err)

	changes, err := m.AutoAssignSeats(context.Background())
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "G2AAA", changes[0].Code)
	assert.Equal(t, 1, changes[0].Seat)

	g1, _ := m.Guest("G1AAA")
	assert.Equal(t, 5, *g1.SeatNumber)

	// idempotent
	changes, err = m.AutoAssignSeats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestGenerateGuests(t *testing.T) {
	t.Run("remote mode creates unassigned guests", func(t *testing.T) {
		repo := &memRepo{settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4}}
		m := newTestManager(t, repo, true)
		_, err := m.Refresh(context.Background())
		require.NoError(t, err)

		codes, err := m.GenerateGuests(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, codes, 3)

		for _, code := range codes {
			g, ok := m.Guest(code)
			require.True(t, ok)
			assert.Equal(t, entity.CategoryVVIP, g.Category)
			assert.Nil(t, g.SeatNumber)
			assert.False(t, g.Arrived)
		}
	})

	t.Run("local mode seats serially into gaps", func(t *testing.T) {
		repo := &memRepo{
			guests:   []*entity.Guest{{Code: "OLDAA", SeatNumber: seatPtr(2)}},
			settings: &entity.Settings{MaxSeats: 4, SeatsPerTable: 2},
		}
		m := newTestManager(t, repo, false)
		_, err := m.Refresh(context.Background())
		require.NoError(t, err)

		codes, err := m.GenerateGuests(context.Background(), 3)
		require.NoError(t, err)

		var seats []int
		for _, code := range codes {
			g, _ := m.Guest(code)
			require.NotNil(t, g.SeatNumber)
			seats = append(seats, *g.SeatNumber)
		}
		// seat 2 is held, so new guests fill 1, 3, 4
		assert.ElementsMatch(t, []int{1, 3, 4}, seats)
	})
}

func TestUpdateGuest(t *testing.T) {
	repo := &memRepo{
		guests:   []*entity.Guest{{Code: "AAAAA", Category: entity.CategoryVVIP}},
		settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
	}
	m := newTestManager(t, repo, true)
	_, err := m.Refresh(context.Background())
	require.NoError(t, err)

	require.NoError(t, m.SetArrival(context.Background(), "AAAAA", true))
	g, _ := m.Guest("AAAAA")
	assert.True(t, g.Arrived)

	// unknown code is a silent no-op
	require.NoError(t, m.SetArrival(context.Background(), "ZZZZZ", true))
}

func TestUpdateSettingsCapacityWarning(t *testing.T) {
	repo := &memRepo{
		guests: []*entity.Guest{
			{Code: "AAAAA"}, {Code: "BBBBB"}, {Code: "CCCCC"},
		},
		settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4},
	}
	m := newTestManager(t, repo, true)
	_, err := m.Refresh(context.Background())
	require.NoError(t, err)

	two := 2
	warning, err := m.UpdateSettings(context.Background(), SettingsUpdate{MaxSeats: &two})
	require.NoError(t, err)
	assert.NotEmpty(t, warning)

	// Warn-only: the capacity change is applied and no guest removed.
	assert.Equal(t, 2, m.Settings().MaxSeats)
	assert.Len(t, m.Guests(), 3)
	assert.Len(t, m.Seats(), 2)
}

func TestSetTableMetaDebounce(t *testing.T) {
	repo := &memRepo{settings: &entity.Settings{MaxSeats: 10, SeatsPerTable: 4}}
	m := newTestManager(t, repo, true)
	_, err := m.Refresh(context.Background())
	require.NoError(t, err)

	name1, name2 := "Rose", "Lily"
	require.NoError(t, m.SetTableMeta(context.Background(), 1, &name1, nil))
	require.NoError(t, m.SetTableMeta(context.Background(), 1, &name2, nil))

	// Memory reflects the latest edit immediately.
	assert.Equal(t, "Lily", m.Settings().TableNames[1])

	// Only the final value of the burst is persisted.
	m.FlushPendingWrites()
	require.NotNil(t, repo.settings)
	assert.Equal(t, "Lily", repo.settings.TableNames[1])

	// Out-of-range table is rejected before any mutation.
	require.Error(t, m.SetTableMeta(context.Background(), 99, &name1, nil))
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	got := make(chan int, 4)
	d.Schedule(7, func() { got <- 1 })
	d.Schedule(7, func() { got <- 2 })
	d.Schedule(7, func() { got <- 3 })

	select {
	case v := <-got:
		assert.Equal(t, 3, v)
	case <-time.After(time.Second):
		t.Fatal("debounced task never ran")
	}

	select {
	case v := <-got:
		t.Fatalf("stale task %d ran", v)
	case <-time.After(60 * time.Millisecond):
	}
}
