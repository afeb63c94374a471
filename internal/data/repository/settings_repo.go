package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

// Find returns the newest settings row. Older rows are never
// deleted; recency decides the singleton.
func (r *settingsRepository) Find(ctx context.Context) (*entity.Settings, error) {
	query := `
		SELECT event_name, event_date, venue, max_seats, seats_per_table, theme_id, table_names, table_notes, updated_at
		FROM settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var s entity.Settings
	var namesJSON, notesJSON []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&s.EventName,
		&s.EventDate,
		&s.Venue,
		&s.MaxSeats,
		&s.SeatsPerTable,
		&s.ThemeID,
		&namesJSON,
		&notesJSON,
		&s.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find settings", zap.Error(err))
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	s.TableNames = map[int]string{}
	s.TableNotes = map[int]string{}
	if len(namesJSON) > 0 {
		if err := json.Unmarshal(namesJSON, &s.TableNames); err != nil {
			return nil, fmt.Errorf("failed to decode table names: %w", err)
		}
	}
	if len(notesJSON) > 0 {
		if err := json.Unmarshal(notesJSON, &s.TableNotes); err != nil {
			return nil, fmt.Errorf("failed to decode table notes: %w", err)
		}
	}

	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	namesJSON, err := json.Marshal(settings.TableNames)
	if err != nil {
		return fmt.Errorf("failed to encode table names: %w", err)
	}
	notesJSON, err := json.Marshal(settings.TableNotes)
	if err != nil {
		return fmt.Errorf("failed to encode table notes: %w", err)
	}

	query := `
		INSERT INTO settings (event_name, event_date, venue, max_seats, seats_per_table, theme_id, table_names, table_notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		settings.EventName,
		settings.EventDate,
		settings.Venue,
		settings.MaxSeats,
		settings.SeatsPerTable,
		settings.ThemeID,
		namesJSON,
		notesJSON,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save settings", zap.Error(err))
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
