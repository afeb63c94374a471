package response

import (
	"time"

	"wedding-portal/internal/data/entity"
)

type SettingsResponse struct {
	EventName     string         `json:"event_name"`
	EventDate     string         `json:"event_date"`
	Venue         string         `json:"venue"`
	MaxSeats      int            `json:"max_seats"`
	SeatsPerTable int            `json:"seats_per_table"`
	ThemeID       string         `json:"theme_id"`
	TableNames    map[int]string `json:"table_names"`
	TableNotes    map[int]string `json:"table_notes"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func SettingsToResponse(s *entity.Settings) *SettingsResponse {
	return &SettingsResponse{
		EventName:     s.EventName,
		EventDate:     s.EventDate,
		Venue:         s.Venue,
		MaxSeats:      s.MaxSeats,
		SeatsPerTable: s.SeatsPerTable,
		ThemeID:       s.ThemeID,
		TableNames:    s.TableNames,
		TableNotes:    s.TableNotes,
		UpdatedAt:     s.UpdatedAt,
	}
}
