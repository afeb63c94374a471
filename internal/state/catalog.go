package state

import (
	"context"
	"fmt"

	"wedding-portal/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Catalog mutations follow the same port-first discipline as the
// core: persist through the active adapter, then mirror the change in
// memory. Updates and removals key on the item's stable id.

func (m *Manager) AddFood(ctx context.Context, item *entity.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.AddFood(ctx, item); err != nil {
		return fmt.Errorf("persist food item: %w", err)
	}
	m.app.Food = append(m.app.Food, item)
	m.log.Info("Food item added", zap.String("name", item.Name))
	return nil
}

func (m *Manager) UpdateFood(ctx context.Context, item *entity.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.UpdateFood(ctx, item); err != nil {
		return fmt.Errorf("persist food item: %w", err)
	}
	for i, it := range m.app.Food {
		if it.ID == item.ID {
			m.app.Food[i] = item
			break
		}
	}
	return nil
}

func (m *Manager) RemoveFood(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.RemoveFood(ctx, id); err != nil {
		return fmt.Errorf("remove food item: %w", err)
	}
	m.app.Food = removeByID(m.app.Food, id, func(it *entity.FoodItem) uuid.UUID { return it.ID })
	return nil
}

func (m *Manager) AddDrink(ctx context.Context, item *entity.DrinkItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.AddDrink(ctx, item); err != nil {
		return fmt.Errorf("persist drink item: %w", err)
	}
	m.app.Drinks = append(m.app.Drinks, item)
	m.log.Info("Drink item added", zap.String("name", item.Name))
	return nil
}

func (m *Manager) UpdateDrink(ctx context.Context, item *entity.DrinkItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.UpdateDrink(ctx, item); err != nil {
		return fmt.Errorf("persist drink item: %w", err)
	}
	for i, it := range m.app.Drinks {
		if it.ID == item.ID {
			m.app.Drinks[i] = item
			break
		}
	}
	return nil
}

func (m *Manager) RemoveDrink(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Menu.RemoveDrink(ctx, id); err != nil {
		return fmt.Errorf("remove drink item: %w", err)
	}
	m.app.Drinks = removeByID(m.app.Drinks, id, func(it *entity.DrinkItem) uuid.UUID { return it.ID })
	return nil
}

func (m *Manager) AddAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.AddAsoebi(ctx, item); err != nil {
		return fmt.Errorf("persist asoebi item: %w", err)
	}
	m.app.Asoebi = append(m.app.Asoebi, item)
	return nil
}

func (m *Manager) UpdateAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.UpdateAsoebi(ctx, item); err != nil {
		return fmt.Errorf("persist asoebi item: %w", err)
	}
	for i, it := range m.app.Asoebi {
		if it.ID == item.ID {
			m.app.Asoebi[i] = item
			break
		}
	}
	return nil
}

func (m *Manager) RemoveAsoebi(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.RemoveAsoebi(ctx, id); err != nil {
		return fmt.Errorf("remove asoebi item: %w", err)
	}
	m.app.Asoebi = removeByID(m.app.Asoebi, id, func(it *entity.AsoebiItem) uuid.UUID { return it.ID })
	return nil
}

func (m *Manager) AddRegistry(ctx context.Context, item *entity.RegistryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.AddRegistry(ctx, item); err != nil {
		return fmt.Errorf("persist registry item: %w", err)
	}
	m.app.Registry = append(m.app.Registry, item)
	return nil
}

func (m *Manager) UpdateRegistry(ctx context.Context, item *entity.RegistryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.UpdateRegistry(ctx, item); err != nil {
		return fmt.Errorf("persist registry item: %w", err)
	}
	for i, it := range m.app.Registry {
		if it.ID == item.ID {
			m.app.Registry[i] = item
			break
		}
	}
	return nil
}

func (m *Manager) RemoveRegistry(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.RemoveRegistry(ctx, id); err != nil {
		return fmt.Errorf("remove registry item: %w", err)
	}
	m.app.Registry = removeByID(m.app.Registry, id, func(it *entity.RegistryItem) uuid.UUID { return it.ID })
	return nil
}

func (m *Manager) SavePayment(ctx context.Context, details *entity.PaymentDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Catalog.SavePayment(ctx, details); err != nil {
		return fmt.Errorf("persist payment details: %w", err)
	}
	m.app.Payment = details
	return nil
}

func (m *Manager) AddGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.AddGalleryItem(ctx, item); err != nil {
		return fmt.Errorf("persist gallery item: %w", err)
	}
	m.app.Gallery = append(m.app.Gallery, item)
	return nil
}

func (m *Manager) UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.UpdateGalleryItem(ctx, item); err != nil {
		return fmt.Errorf("persist gallery item: %w", err)
	}
	for i, it := range m.app.Gallery {
		if it.ID == item.ID {
			m.app.Gallery[i] = item
			break
		}
	}
	return nil
}

func (m *Manager) RemoveGalleryItem(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.RemoveGalleryItem(ctx, id); err != nil {
		return fmt.Errorf("remove gallery item: %w", err)
	}
	m.app.Gallery = removeByID(m.app.Gallery, id, func(it *entity.GalleryItem) uuid.UUID { return it.ID })
	return nil
}

func (m *Manager) AddPartyMember(ctx context.Context, member *entity.PartyMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.AddPartyMember(ctx, member); err != nil {
		return fmt.Errorf("persist party member: %w", err)
	}
	m.app.Party = append(m.app.Party, member)
	return nil
}

func (m *Manager) UpdatePartyMember(ctx context.Context, member *entity.PartyMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.UpdatePartyMember(ctx, member); err != nil {
		return fmt.Errorf("persist party member: %w", err)
	}
	for i, it := range m.app.Party {
		if it.ID == member.ID {
			m.app.Party[i] = member
			break
		}
	}
	return nil
}

func (m *Manager) RemovePartyMember(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Gallery.RemovePartyMember(ctx, id); err != nil {
		return fmt.Errorf("remove party member: %w", err)
	}
	m.app.Party = removeByID(m.app.Party, id, func(it *entity.PartyMember) uuid.UUID { return it.ID })
	return nil
}

func removeByID[T any](items []*T, id uuid.UUID, idOf func(*T) uuid.UUID) []*T {
	for i, it := range items {
		if idOf(it) == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
