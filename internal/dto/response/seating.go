package response

type SeatResponse struct {
	Number    int    `json:"number"`
	Occupied  bool   `json:"occupied"`
	GuestCode string `json:"guest_code,omitempty"`
	GuestName string `json:"guest_name,omitempty"`
}

type TableResponse struct {
	Number int            `json:"number"`
	Name   string         `json:"name,omitempty"`
	Note   string         `json:"note,omitempty"`
	Seats  []SeatResponse `json:"seats"`
}

type SeatMapResponse struct {
	MaxSeats      int             `json:"max_seats"`
	SeatsPerTable int             `json:"seats_per_table"`
	TotalTables   int             `json:"total_tables"`
	Tables        []TableResponse `json:"tables"`
}

type MySeatResponse struct {
	SeatNumber  *int   `json:"seat_number,omitempty"`
	TableNumber *int   `json:"table_number,omitempty"`
	TableName   string `json:"table_name,omitempty"`
	TableNote   string `json:"table_note,omitempty"`
}

type AutoAssignResponse struct {
	Changed int `json:"changed"`
}
