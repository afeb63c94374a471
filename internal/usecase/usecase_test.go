package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/data/repository"
	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepo backs all five storage interfaces with plain slices.
type fakeRepo struct {
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

func (f *fakeRepo) FindAll(ctx context.Context) ([]*entity.Guest, error) { return f.guests, nil }
func (f *fakeRepo) FindByCode(ctx context.Context, code string) (*entity.Guest, error) {
	for _, g := range f.guests {
		if g.Code == code {
			return g, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) Create(ctx context.Context, g *entity.Guest) error {
	f.guests = append(f.guests, g)
	return nil
}
func (f *fakeRepo) CreateBatch(ctx context.Context, gs []*entity.Guest) error {
	f.guests = append(f.guests, gs...)
	return nil
}
func (f *fakeRepo) Update(ctx context.Context, g *entity.Guest) error {
	for i, old := range f.guests {
		if old.Code == g.Code {
			f.guests[i] = g
		}
	}
	return nil
}
func (f *fakeRepo) UpdateSeat(ctx context.Context, code string, seat *int) error {
	for _, g := range f.guests {
		if g.Code == code {
			g.SeatNumber = seat
		}
	}
	return nil
}

func (f *fakeRepo) Find(ctx context.Context) (*entity.Settings, error) { return f.settings, nil }
func (f *fakeRepo) Save(ctx context.Context, s *entity.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeRepo) FindFood(ctx context.Context) ([]*entity.FoodItem, error) { return f.food, nil }
func (f *fakeRepo) AddFood(ctx context.Context, it *entity.FoodItem) error {
	f.food = append(f.food, it)
	return nil
}
func (f *fakeRepo) UpdateFood(ctx context.Context, it *entity.FoodItem) error   { return nil }
func (f *fakeRepo) RemoveFood(ctx context.Context, id uuid.UUID) error          { return nil }
func (f *fakeRepo) FindDrinks(ctx context.Context) ([]*entity.DrinkItem, error) { return f.drinks, nil }
func (f *fakeRepo) AddDrink(ctx context.Context, it *entity.DrinkItem) error {
	f.drinks = append(f.drinks, it)
	return nil
}
func (f *fakeRepo) UpdateDrink(ctx context.Context, it *entity.DrinkItem) error { return nil }
func (f *fakeRepo) RemoveDrink(ctx context.Context, id uuid.UUID) error         { return nil }

func (f *fakeRepo) FindAsoebi(ctx context.Context) ([]*entity.AsoebiItem, error) {
	return f.asoebi, nil
}
func (f *fakeRepo) AddAsoebi(ctx context.Context, it *entity.AsoebiItem) error {
	f.asoebi = append(f.asoebi, it)
	return nil
}
func (f *fakeRepo) UpdateAsoebi(ctx context.Context, it *entity.AsoebiItem) error { return nil }
func (f *fakeRepo) RemoveAsoebi(ctx context.Context, id uuid.UUID) error          { return nil }
func (f *fakeRepo) FindRegistry(ctx context.Context) ([]*entity.RegistryItem, error) {
	return f.registry, nil
}
func (f *fakeRepo) AddRegistry(ctx context.Context, it *entity.RegistryItem) error {
	f.registry = append(f.registry, it)
	return nil
}
func (f *fakeRepo) UpdateRegistry(ctx context.Context, it *entity.RegistryItem) error { return nil }
func (f *fakeRepo) RemoveRegistry(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeRepo) FindPayment(ctx context.Context) (*entity.PaymentDetails, error) {
	return f.payment, nil
}
func (f *fakeRepo) SavePayment(ctx context.Context, d *entity.PaymentDetails) error {
	f.payment = d
	return nil
}

func (f *fakeRepo) FindGallery(ctx context.Context) ([]*entity.GalleryItem, error) {
	return f.gallery, nil
}
func (f *fakeRepo) AddGalleryItem(ctx context.Context, it *entity.GalleryItem) error {
	f.gallery = append(f.gallery, it)
	return nil
}
func (f *fakeRepo) UpdateGalleryItem(ctx context.Context, it *entity.GalleryItem) error { return nil }
func (f *fakeRepo) RemoveGalleryItem(ctx context.Context, id uuid.UUID) error           { return nil }
func (f *fakeRepo) FindParty(ctx context.Context) ([]*entity.PartyMember, error) {
	return f.party, nil
}
func (f *fakeRepo) AddPartyMember(ctx context.Context, m *entity.PartyMember) error {
	f.party = append(f.party, m)
	return nil
}
func (f *fakeRepo) UpdatePartyMember(ctx context.Context, m *entity.PartyMember) error { return nil }
func (f *fakeRepo) RemovePartyMember(ctx context.Context, id uuid.UUID) error          { return nil }

func seatPtr(n int) *int      { return &n }
func strPtr(s string) *string { return &s }

func testService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	agg := &repository.Repository{
		Guest:    repo,
		Settings: repo,
		Menu:     repo,
		Catalog:  repo,
		Gallery:  repo,
	}
	cfg := &utils.Config{
		Access: utils.AccessConfig{AdminCode: "ADMIN", UsherCode: "USHER"},
		Event: utils.EventConfig{
			Name:          "Test Wedding",
			MaxSeats:      12,
			SeatsPerTable: 4,
			ThemeID:       "classic",
		},
	}
	m := state.NewManager(agg, nil, true, cfg, zap.NewNop())
	_, err := m.Refresh(context.Background())
	require.NoError(t, err)
	return NewService(m, cfg, zap.NewNop())
}

func seededRepo() *fakeRepo {
	now := time.Now()
	return &fakeRepo{
		guests: []*entity.Guest{
			{Code: "AAAAA", Name: "Ada", SeatNumber: seatPtr(5), Category: entity.CategoryVVIP, CreatedAt: now},
			{Code: "BBBBB", Name: "Bola", Category: entity.CategoryFamily, CreatedAt: now.Add(time.Second)},
		},
		food: []*entity.FoodItem{
			{ID: uuid.New(), Name: "Jollof Rice", Tier: entity.CategoryFamily, CreatedAt: now},
			{ID: uuid.New(), Name: "Grilled Lobster", Tier: entity.CategoryVVIP, CreatedAt: now},
		},
		drinks: []*entity.DrinkItem{
			{ID: uuid.New(), Name: "Chapman", Tier: entity.CategoryFamily, CreatedAt: now},
			{ID: uuid.New(), Name: "Champagne", Tier: entity.CategoryPremium, CreatedAt: now},
		},
	}
}

func TestAuthVerify(t *testing.T) {
	svc := testService(t, seededRepo())
	ctx := context.Background()

	t.Run("admin code", func(t *testing.T) {
		auth, err := svc.Auth.Verify(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, utils.RoleAdmin, auth.Role)
		assert.Nil(t, auth.Guest)
	})

	t.Run("guest code resolves profile and table", func(t *testing.T) {
		auth, err := svc.Auth.Verify(ctx, "aaaaa")
		require.NoError(t, err)
		assert.Equal(t, utils.RoleGuest, auth.Role)
		require.NotNil(t, auth.Guest)
		require.NotNil(t, auth.Guest.TableNumber)
		// seat 5 with 4 seats per table lands on table 2
		assert.Equal(t, 2, *auth.Guest.TableNumber)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Auth.Verify(ctx, "ZZZZZ")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestSelectionTiering(t *testing.T) {
	svc := testService(t, seededRepo())
	ctx := context.Background()

	t.Run("family guest can pick family food", func(t *testing.T) {
		g, err := svc.Guest.SetSelection(ctx, "BBBBB", &request.SelectionRequest{
			Food: strPtr("Jollof Rice"),
		})
		require.NoError(t, err)
		require.NotNil(t, g.FoodChoice)
		assert.Equal(t, "Jollof Rice", *g.FoodChoice)
	})

	t.Run("family guest cannot pick vvip food", func(t *testing.T) {
		_, err := svc.Guest.SetSelection(ctx, "BBBBB", &request.SelectionRequest{
			Food: strPtr("Grilled Lobster"),
		})
		assert.ErrorIs(t, err, ErrTierTooLow)
	})

	t.Run("vvip guest can pick anything", func(t *testing.T) {
		g, err := svc.Guest.SetSelection(ctx, "AAAAA", &request.SelectionRequest{
			Food:  strPtr("Grilled Lobster"),
			Drink: strPtr("Champagne"),
		})
		require.NoError(t, err)
		require.NotNil(t, g.DrinkChoice)
		assert.Equal(t, "Champagne", *g.DrinkChoice)
	})

	t.Run("unknown item is rejected", func(t *testing.T) {
		_, err := svc.Guest.SetSelection(ctx, "AAAAA", &request.SelectionRequest{
			Food: strPtr("Pizza"),
		})
		assert.ErrorIs(t, err, ErrNotOnMenu)
	})
}

func TestMenuFiltering(t *testing.T) {
	svc := testService(t, seededRepo())
	ctx := context.Background()

	t.Run("unfiltered menu shows everything", func(t *testing.T) {
		menu := svc.Catalog.Menu(ctx, nil)
		assert.Len(t, menu.Food, 2)
		assert.Len(t, menu.Drinks, 2)
	})

	t.Run("family viewer sees only family items", func(t *testing.T) {
		family := entity.CategoryFamily
		menu := svc.Catalog.Menu(ctx, &family)
		require.Len(t, menu.Food, 1)
		assert.Equal(t, "Jollof Rice", menu.Food[0].Name)
		require.Len(t, menu.Drinks, 1)
		assert.Equal(t, "Chapman", menu.Drinks[0].Name)
	})

	t.Run("premium viewer sees premium and below", func(t *testing.T) {
		premium := entity.CategoryPremium
		menu := svc.Catalog.Menu(ctx, &premium)
		assert.Len(t, menu.Food, 1)
		assert.Len(t, menu.Drinks, 2)
	})
}

func TestSeatMapRendering(t *testing.T) {
	svc := testService(t, seededRepo())

	resp := svc.Seating.SeatMap(context.Background())
	assert.Equal(t, 12, resp.MaxSeats)
	assert.Equal(t, 3, resp.TotalTables)
	require.Len(t, resp.Tables, 3)

	// Ada holds seat 5, the first seat of table 2
	table2 := resp.Tables[1]
	require.Len(t, table2.Seats, 4)
	assert.True(t, table2.Seats[0].Occupied)
	assert.Equal(t, "AAAAA", table2.Seats[0].GuestCode)
	assert.Equal(t, "Ada", table2.Seats[0].GuestName)
	assert.False(t, table2.Seats[1].Occupied)
}

func TestMySeat(t *testing.T) {
	svc := testService(t, seededRepo())
	ctx := context.Background()

	t.Run("seated guest", func(t *testing.T) {
		seat, err := svc.Seating.MySeat(ctx, "AAAAA")
		require.NoError(t, err)
		require.NotNil(t, seat.SeatNumber)
		assert.Equal(t, 5, *seat.SeatNumber)
		require.NotNil(t, seat.TableNumber)
		assert.Equal(t, 2, *seat.TableNumber)
	})

	t.Run("unseated guest", func(t *testing.T) {
		seat, err := svc.Seating.MySeat(ctx, "BBBBB")
		require.NoError(t, err)
		assert.Nil(t, seat.SeatNumber)
		assert.Nil(t, seat.TableNumber)
	})

	t.Run("unknown guest", func(t *testing.T) {
		_, err := svc.Seating.MySeat(ctx, "ZZZZZ")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTableNoteWordLimit(t *testing.T) {
	svc := testService(t, seededRepo())
	ctx := context.Background()

	short := "close to the stage"
	err := svc.Settings.SetTableMeta(ctx, 1, &request.TableMetaRequest{Note: &short})
	require.NoError(t, err)

	long := strings.TrimSpace(strings.Repeat("word ", maxTableNoteWords+1))
	err = svc.Settings.SetTableMeta(ctx, 1, &request.TableMetaRequest{Note: &long})
	assert.ErrorIs(t, err, ErrNoteTooLong)
}
