package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// snapshotAdapter serves every repository interface off the single
// serialized snapshot. Each mutation is a read-modify-write of the
// whole state, which is exactly the local-fallback contract: the
// snapshot is overwritten after every local-mode mutation.
type snapshotAdapter struct {
	mu   sync.Mutex
	snap *database.SnapshotStore
	log  *zap.Logger
}

func newSnapshotAdapter(snap *database.SnapshotStore, log *zap.Logger) *snapshotAdapter {
	return &snapshotAdapter{
		snap: snap,
		log:  log.With(zap.String("repository", "snapshot")),
	}
}

func (r *snapshotAdapter) load() (*entity.Snapshot, error) {
	data, err := r.snap.Load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &entity.Snapshot{}, nil
	}

	var s entity.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		r.log.Error("Failed to decode snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}

func (r *snapshotAdapter) save(s *entity.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return r.snap.Save(data)
}

// mutate runs fn against the current snapshot and persists the
// result. The adapter-level mutex keeps two handlers from losing each
// other's read-modify-write.
func (r *snapshotAdapter) mutate(fn func(s *entity.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return r.save(s)
}

// ==================== GUESTS ====================

func (r *snapshotAdapter) FindAll(ctx context.Context) ([]*entity.Guest, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Guests, nil
}

func (r *snapshotAdapter) FindByCode(ctx context.Context, code string) (*entity.Guest, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, g := range s.Guests {
		if g.Code == code {
			return g, nil
		}
	}
	return nil, nil
}

func (r *snapshotAdapter) Create(ctx context.Context, guest *entity.Guest) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Guests = append(s.Guests, guest)
		return nil
	})
}

func (r *snapshotAdapter) CreateBatch(ctx context.Context, guests []*entity.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	return r.mutate(func(s *entity.Snapshot) error {
		s.Guests = append(s.Guests, guests...)
		return nil
	})
}

func (r *snapshotAdapter) Update(ctx context.Context, guest *entity.Guest) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, g := range s.Guests {
			if g.Code == guest.Code {
				s.Guests[i] = guest
				return nil
			}
		}
		return fmt.Errorf("guest %s not found", guest.Code)
	})
}

func (r *snapshotAdapter) UpdateSeat(ctx context.Context, code string, seatNumber *int) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for _, g := range s.Guests {
			if g.Code == code {
				g.SeatNumber = seatNumber
				return nil
			}
		}
		return fmt.Errorf("guest %s not found", code)
	})
}

// ==================== SETTINGS ====================

func (r *snapshotAdapter) Find(ctx context.Context) (*entity.Settings, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Settings, nil
}

func (r *snapshotAdapter) Save(ctx context.Context, settings *entity.Settings) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Settings = settings
		return nil
	})
}

// ==================== MENU ====================

func (r *snapshotAdapter) FindFood(ctx context.Context) ([]*entity.FoodItem, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Food, nil
}

func (r *snapshotAdapter) AddFood(ctx context.Context, item *entity.FoodItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Food = append(s.Food, item)
		return nil
	})
}

func (r *snapshotAdapter) UpdateFood(ctx context.Context, item *entity.FoodItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Food {
			if it.ID == item.ID {
				s.Food[i] = item
				return nil
			}
		}
		return fmt.Errorf("food item %s not found", item.ID)
	})
}

func (r *snapshotAdapter) RemoveFood(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Food {
			if it.ID == id {
				s.Food = append(s.Food[:i], s.Food[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("food item %s not found", id)
	})
}

func (r *snapshotAdapter) FindDrinks(ctx context.Context) ([]*entity.DrinkItem, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Drinks, nil
}

func (r *snapshotAdapter) AddDrink(ctx context.Context, item *entity.DrinkItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Drinks = append(s.Drinks, item)
		return nil
	})
}

func (r *snapshotAdapter) UpdateDrink(ctx context.Context, item *entity.DrinkItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Drinks {
			if it.ID == item.ID {
				s.Drinks[i] = item
				return nil
			}
		}
		return fmt.Errorf("drink item %s not found", item.ID)
	})
}

func (r *snapshotAdapter) RemoveDrink(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Drinks {
			if it.ID == id {
				s.Drinks = append(s.Drinks[:i], s.Drinks[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("drink item %s not found", id)
	})
}

// ==================== ASOEBI / REGISTRY / PAYMENT ====================

func (r *snapshotAdapter) FindAsoebi(ctx context.Context) ([]*entity.AsoebiItem, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Asoebi, nil
}

func (r *snapshotAdapter) AddAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Asoebi = append(s.Asoebi, item)
		return nil
	})
}

func (r *snapshotAdapter) UpdateAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Asoebi {
			if it.ID == item.ID {
				s.Asoebi[i] = item
				return nil
			}
		}
		return fmt.Errorf("asoebi item %s not found", item.ID)
	})
}

func (r *snapshotAdapter) RemoveAsoebi(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Asoebi {
			if it.ID == id {
				s.Asoebi = append(s.Asoebi[:i], s.Asoebi[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("asoebi item %s not found", id)
	})
}

func (r *snapshotAdapter) FindRegistry(ctx context.Context) ([]*entity.RegistryItem, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Registry, nil
}

func (r *snapshotAdapter) AddRegistry(ctx context.Context, item *entity.RegistryItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Registry = append(s.Registry, item)
		return nil
	})
}

func (r *snapshotAdapter) UpdateRegistry(ctx context.Context, item *entity.RegistryItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Registry {
			if it.ID == item.ID {
				s.Registry[i] = item
				return nil
			}
		}
		return fmt.Errorf("registry item %s not found", item.ID)
	})
}

func (r *snapshotAdapter) RemoveRegistry(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Registry {
			if it.ID == id {
				s.Registry = append(s.Registry[:i], s.Registry[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("registry item %s not found", id)
	})
}

func (r *snapshotAdapter) FindPayment(ctx context.Context) (*entity.PaymentDetails, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Payment, nil
}

func (r *snapshotAdapter) SavePayment(ctx context.Context, details *entity.PaymentDetails) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Payment = details
		return nil
	})
}

// ==================== GALLERY / PARTY ====================

func (r *snapshotAdapter) FindGallery(ctx context.Context) ([]*entity.GalleryItem, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Gallery, nil
}

func (r *snapshotAdapter) AddGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Gallery = append(s.Gallery, item)
		return nil
	})
}

func (r *snapshotAdapter) UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Gallery {
			if it.ID == item.ID {
				s.Gallery[i] = item
				return nil
			}
		}
		return fmt.Errorf("gallery item %s not found", item.ID)
	})
}

func (r *snapshotAdapter) RemoveGalleryItem(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, it := range s.Gallery {
			if it.ID == id {
				s.Gallery = append(s.Gallery[:i], s.Gallery[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("gallery item %s not found", id)
	})
}

func (r *snapshotAdapter) FindParty(ctx context.Context) ([]*entity.PartyMember, error) {
	s, err := r.load()
	if err != nil {
		return nil, err
	}
	return s.Party, nil
}

func (r *snapshotAdapter) AddPartyMember(ctx context.Context, member *entity.PartyMember) error {
	return r.mutate(func(s *entity.Snapshot) error {
		s.Party = append(s.Party, member)
		return nil
	})
}

func (r *snapshotAdapter) UpdatePartyMember(ctx context.Context, member *entity.PartyMember) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, m := range s.Party {
			if m.ID == member.ID {
				s.Party[i] = member
				return nil
			}
		}
		return fmt.Errorf("party member %s not found", member.ID)
	})
}

func (r *snapshotAdapter) RemovePartyMember(ctx context.Context, id uuid.UUID) error {
	return r.mutate(func(s *entity.Snapshot) error {
		for i, m := range s.Party {
			if m.ID == id {
				s.Party = append(s.Party[:i], s.Party[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("party member %s not found", id)
	})
}
