package state

import (
	"context"
	"fmt"
	"time"

	"wedding-portal/internal/seating"

	"go.uber.org/zap"
)

// SettingsUpdate carries the admin-editable fields; nil means keep.
type SettingsUpdate struct {
	EventName     *string
	EventDate     *string
	Venue         *string
	MaxSeats      *int
	SeatsPerTable *int
	ThemeID       *string
}

// UpdateSettings persists new event settings and rematerializes the
// seat ledger when capacity changes. Reducing capacity below the
// current guest count is allowed but answered with a warning: guests
// are never removed automatically, their out-of-range seat numbers
// simply dangle until an admin reassigns them.
func (m *Manager) UpdateSettings(ctx context.Context, upd SettingsUpdate) (warning string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.app.Settings.Clone()
	if upd.EventName != nil {
		next.EventName = *upd.EventName
	}
	if upd.EventDate != nil {
		next.EventDate = *upd.EventDate
	}
	if upd.Venue != nil {
		next.Venue = *upd.Venue
	}
	if upd.MaxSeats != nil {
		next.MaxSeats = *upd.MaxSeats
	}
	if upd.SeatsPerTable != nil {
		next.SeatsPerTable = *upd.SeatsPerTable
	}
	if upd.ThemeID != nil {
		next.ThemeID = *upd.ThemeID
	}
	next.UpdatedAt = time.Now()

	if next.MaxSeats < len(m.app.Guests) {
		warning = fmt.Sprintf(
			"capacity %d is below the current guest count %d; remove guests manually or raise capacity",
			next.MaxSeats, len(m.app.Guests),
		)
		m.log.Warn("Capacity reduced below guest count",
			zap.Int("max_seats", next.MaxSeats),
			zap.Int("guest_count", len(m.app.Guests)),
		)
	}

	if err := m.repo.Settings.Save(ctx, next); err != nil {
		m.log.Error("Settings write failed, state unchanged", zap.Error(err))
		return "", fmt.Errorf("persist settings: %w", err)
	}

	capacityChanged := next.MaxSeats != m.app.Settings.MaxSeats
	m.app.Settings = next
	if capacityChanged {
		m.app.Ledger = seating.NewLedger(next.MaxSeats, m.app.Guests)
	}

	m.log.Info("Settings updated",
		zap.Int("max_seats", next.MaxSeats),
		zap.Int("seats_per_table", next.SeatsPerTable),
		zap.String("theme", next.ThemeID),
	)
	return warning, nil
}

// SetTableMeta renames a table or replaces its note. The in-memory
// value changes immediately; the settings record is persisted only
// after the table's edits go quiet, and a newer edit to the same
// table replaces the pending write rather than stacking another one.
func (m *Manager) SetTableMeta(ctx context.Context, tableNumber int, name, note *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := seating.TotalTables(m.app.Settings.MaxSeats, m.app.Settings.SeatsPerTable)
	if tableNumber < 1 || tableNumber > total {
		return fmt.Errorf("table %d out of range [1,%d]", tableNumber, total)
	}

	if name != nil {
		m.app.Settings.TableNames[tableNumber] = *name
	}
	if note != nil {
		m.app.Settings.TableNotes[tableNumber] = *note
	}
	m.app.Settings.UpdatedAt = time.Now()

	pending := m.app.Settings.Clone()
	m.debounce.Schedule(tableNumber, func() {
		// Deliberately detached from the request context: the write
		// fires after the response is long gone.
		if err := m.repo.Settings.Save(context.Background(), pending); err != nil {
			m.log.Error("Debounced table settings write failed",
				zap.Error(err),
				zap.Int("table", tableNumber),
			)
		}
	})

	return nil
}

// FlushPendingWrites forces any debounced writes out immediately,
// used on shutdown.
func (m *Manager) FlushPendingWrites() {
	m.debounce.Flush()
}
