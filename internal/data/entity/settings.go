package entity

import "time"

// Settings is the event-wide configuration singleton. The newest
// record wins; older rows are kept for history.
type Settings struct {
	EventName     string         `db:"event_name" json:"event_name"`
	EventDate     string         `db:"event_date" json:"event_date"`
	Venue         string         `db:"venue" json:"venue"`
	MaxSeats      int            `db:"max_seats" json:"max_seats"`
	SeatsPerTable int            `db:"seats_per_table" json:"seats_per_table"`
	ThemeID       string         `db:"theme_id" json:"theme_id"`
	TableNames    map[int]string `db:"table_names" json:"table_names"`
	TableNotes    map[int]string `db:"table_notes" json:"table_notes"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy so callers can hand settings out without
// sharing the table maps.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.TableNames = make(map[int]string, len(s.TableNames))
	for k, v := range s.TableNames {
		out.TableNames[k] = v
	}
	out.TableNotes = make(map[int]string, len(s.TableNotes))
	for k, v := range s.TableNotes {
		out.TableNotes[k] = v
	}
	return &out
}
