package request

type UpdateSettingsRequest struct {
	EventName     *string `json:"event_name,omitempty" validate:"omitempty,max=200"`
	EventDate     *string `json:"event_date,omitempty" validate:"omitempty,max=100"`
	Venue         *string `json:"venue,omitempty" validate:"omitempty,max=200"`
	MaxSeats      *int    `json:"max_seats,omitempty" validate:"omitempty,min=1,max=10000"`
	SeatsPerTable *int    `json:"seats_per_table,omitempty" validate:"omitempty,min=1,max=100"`
	ThemeID       *string `json:"theme_id,omitempty" validate:"omitempty,max=50"`
}

type TableMetaRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Note *string `json:"note,omitempty"`
}
