package state

import (
	"context"
	"fmt"
	"time"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/seating"

	"go.uber.org/zap"
)

// AssignSeat seats one guest. A seat held by someone else returns
// seating.ErrSeatTaken with nothing mutated anywhere; the guest's old
// seat (if any) is freed in the same transition as the new claim.
func (m *Manager) AssignSeat(ctx context.Context, code string, seatNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.app.Ledger.CanAssign(code, seatNumber); err != nil {
		return err
	}

	n := seatNumber
	if err := m.repo.Guest.UpdateSeat(ctx, code, &n); err != nil {
		m.log.Error("Seat assignment write failed, state unchanged",
			zap.Error(err),
			zap.String("code", code),
			zap.Int("seat", seatNumber),
		)
		return fmt.Errorf("persist seat assignment: %w", err)
	}

	// Cannot fail after CanAssign under the same lock.
	_ = m.app.Ledger.Assign(code, seatNumber)

	m.log.Info("Seat assigned",
		zap.String("code", code),
		zap.Int("seat", seatNumber),
	)
	return nil
}

// AutoAssignSeats recomputes the full seat map: guests holding an
// in-range seat keep it, everyone else takes the lowest free seat.
// The changes are computed on a scratch copy and persisted before
// memory is touched, so a failed write leaves prior state intact.
// Idempotent for a stable guest set and capacity.
func (m *Manager) AutoAssignSeats(ctx context.Context) ([]seating.AssignmentChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scratch := make(map[string]*entity.Guest, len(m.app.Guests))
	for code, g := range m.app.Guests {
		cp := *g
		scratch[code] = &cp
	}

	ledger := seating.NewLedger(m.app.Settings.MaxSeats, scratch)
	changes := ledger.AutoAssignAll()

	for _, ch := range changes {
		if err := m.repo.Guest.UpdateSeat(ctx, ch.Code, scratch[ch.Code].SeatNumber); err != nil {
			m.log.Error("Auto-assign write failed, state unchanged",
				zap.Error(err),
				zap.String("code", ch.Code),
			)
			return nil, fmt.Errorf("persist auto-assignment: %w", err)
		}
	}

	m.app.Guests = scratch
	m.app.Ledger = ledger

	m.log.Info("Auto-assign completed", zap.Int("changed", len(changes)))
	return changes, nil
}

// GenerateGuests mints count fresh access codes, each becoming a
// guest with the default unassigned state and category vvip. Against
// the local-fallback store new guests are additionally seated
// serially from the lowest unheld seat number.
func (m *Manager) GenerateGuests(ctx context.Context, count int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reserved := map[string]struct{}{
		m.cfg.Access.AdminCode: {},
		m.cfg.Access.UsherCode: {},
	}
	codes := seating.GenerateCodes(count, func(code string) bool {
		if _, ok := reserved[code]; ok {
			return true
		}
		_, ok := m.app.Guests[code]
		return ok
	})

	now := time.Now()
	guests := make([]*entity.Guest, len(codes))
	for i, code := range codes {
		guests[i] = &entity.Guest{
			Code:      code,
			Category:  entity.CategoryVVIP,
			CreatedAt: now,
		}
	}

	if !m.remote {
		m.seatSerially(guests)
	}

	if err := m.repo.Guest.CreateBatch(ctx, guests); err != nil {
		m.log.Error("Guest batch write failed, state unchanged",
			zap.Error(err),
			zap.Int("count", count),
		)
		return nil, fmt.Errorf("persist generated guests: %w", err)
	}

	for _, g := range guests {
		m.app.Guests[g.Code] = g
	}
	m.app.Ledger = seating.NewLedger(m.app.Settings.MaxSeats, m.app.Guests)

	m.log.Info("Access codes generated", zap.Int("count", len(codes)))
	return codes, nil
}

// seatSerially walks seat numbers from 1, skipping those already held
// by an existing guest, and hands the gaps to the new guests in
// order. Guests beyond capacity stay unassigned.
func (m *Manager) seatSerially(guests []*entity.Guest) {
	held := make(map[int]struct{}, len(m.app.Guests))
	for _, g := range m.app.Guests {
		if g.SeatNumber != nil {
			held[*g.SeatNumber] = struct{}{}
		}
	}

	seat := 1
	for _, g := range guests {
		for seat <= m.app.Settings.MaxSeats {
			if _, taken := held[seat]; !taken {
				break
			}
			seat++
		}
		if seat > m.app.Settings.MaxSeats {
			return
		}
		n := seat
		g.SeatNumber = &n
		held[seat] = struct{}{}
	}
}

// UpdateGuestProfile edits a guest's display name and category. An
// unknown code is a silent no-op.
func (m *Manager) UpdateGuestProfile(ctx context.Context, code string, name *string, category *entity.GuestCategory) error {
	return m.updateGuest(ctx, code, func(g *entity.Guest) {
		if name != nil {
			g.Name = *name
		}
		if category != nil {
			g.Category = *category
		}
	})
}

// SetArrival flips the arrival flag.
func (m *Manager) SetArrival(ctx context.Context, code string, arrived bool) error {
	return m.updateGuest(ctx, code, func(g *entity.Guest) {
		g.Arrived = arrived
	})
}

// SetServiceFlags records meal/drink service.
func (m *Manager) SetServiceFlags(ctx context.Context, code string, mealServed, drinkServed *bool) error {
	return m.updateGuest(ctx, code, func(g *entity.Guest) {
		if mealServed != nil {
			g.MealServed = *mealServed
		}
		if drinkServed != nil {
			g.DrinkServed = *drinkServed
		}
	})
}

// SetSelection records the guest's food/drink picks.
func (m *Manager) SetSelection(ctx context.Context, code string, food, drink *string) error {
	return m.updateGuest(ctx, code, func(g *entity.Guest) {
		if food != nil {
			g.FoodChoice = food
		}
		if drink != nil {
			g.DrinkChoice = drink
		}
	})
}

// updateGuest applies fn to a copy, persists it, then swaps the copy
// in. Unknown codes no-op rather than raise: the record was stale the
// moment the caller looked at it.
func (m *Manager) updateGuest(ctx context.Context, code string, fn func(*entity.Guest)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.app.Guests[code]
	if !ok {
		m.log.Debug("Update for unknown guest ignored", zap.String("code", code))
		return nil
	}

	updated := *g
	fn(&updated)

	if err := m.repo.Guest.Update(ctx, &updated); err != nil {
		m.log.Error("Guest update write failed, state unchanged",
			zap.Error(err),
			zap.String("code", code),
		)
		return fmt.Errorf("persist guest update: %w", err)
	}

	*g = updated
	return nil
}
