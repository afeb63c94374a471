// Package repository is the storage port. Services talk to the
// aggregate Repository and never learn which adapter family is live:
// postgres-backed in remote-first mode, snapshot-backed in
// local-fallback mode. The family is chosen once at startup.
package repository

import (
	"context"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuestRepository interface {
	FindAll(ctx context.Context) ([]*entity.Guest, error)
	FindByCode(ctx context.Context, code string) (*entity.Guest, error)
	Create(ctx context.Context, guest *entity.Guest) error
	CreateBatch(ctx context.Context, guests []*entity.Guest) error
	Update(ctx context.Context, guest *entity.Guest) error
	UpdateSeat(ctx context.Context, code string, seatNumber *int) error
}

type SettingsRepository interface {
	// Find returns the most recent settings record, or nil when none
	// exists yet.
	Find(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}

type MenuRepository interface {
	FindFood(ctx context.Context) ([]*entity.FoodItem, error)
	AddFood(ctx context.Context, item *entity.FoodItem) error
	UpdateFood(ctx context.Context, item *entity.FoodItem) error
	RemoveFood(ctx context.Context, id uuid.UUID) error

	FindDrinks(ctx context.Context) ([]*entity.DrinkItem, error)
	AddDrink(ctx context.Context, item *entity.DrinkItem) error
	UpdateDrink(ctx context.Context, item *entity.DrinkItem) error
	RemoveDrink(ctx context.Context, id uuid.UUID) error
}

type CatalogRepository interface {
	FindAsoebi(ctx context.Context) ([]*entity.AsoebiItem, error)
	AddAsoebi(ctx context.Context, item *entity.AsoebiItem) error
	UpdateAsoebi(ctx context.Context, item *entity.AsoebiItem) error
	RemoveAsoebi(ctx context.Context, id uuid.UUID) error

	FindRegistry(ctx context.Context) ([]*entity.RegistryItem, error)
	AddRegistry(ctx context.Context, item *entity.RegistryItem) error
	UpdateRegistry(ctx context.Context, item *entity.RegistryItem) error
	RemoveRegistry(ctx context.Context, id uuid.UUID) error

	// Payment details use most-recent-record semantics.
	FindPayment(ctx context.Context) (*entity.PaymentDetails, error)
	SavePayment(ctx context.Context, details *entity.PaymentDetails) error
}

type GalleryRepository interface {
	FindGallery(ctx context.Context) ([]*entity.GalleryItem, error)
	AddGalleryItem(ctx context.Context, item *entity.GalleryItem) error
	UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error
	RemoveGalleryItem(ctx context.Context, id uuid.UUID) error

	FindParty(ctx context.Context) ([]*entity.PartyMember, error)
	AddPartyMember(ctx context.Context, member *entity.PartyMember) error
	UpdatePartyMember(ctx context.Context, member *entity.PartyMember) error
	RemovePartyMember(ctx context.Context, id uuid.UUID) error
}

type Repository struct {
	Guest    GuestRepository
	Settings SettingsRepository
	Menu     MenuRepository
	Catalog  CatalogRepository
	Gallery  GalleryRepository
}

// NewPostgresRepository wires the remote-first adapter family.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Guest:    NewGuestRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		Menu:     NewMenuRepository(db, log),
		Catalog:  NewCatalogRepository(db, log),
		Gallery:  NewGalleryRepository(db, log),
	}
}

// NewSnapshotRepository wires the local-fallback adapter family: one
// struct serving every interface off the serialized snapshot.
func NewSnapshotRepository(snap *database.SnapshotStore, log *zap.Logger) *Repository {
	s := newSnapshotAdapter(snap, log)
	return &Repository{
		Guest:    s,
		Settings: s,
		Menu:     s,
		Catalog:  s,
		Gallery:  s,
	}
}
