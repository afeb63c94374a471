package request

type AssignSeatRequest struct {
	Code       string `json:"code" validate:"required,len=5,alphanum"`
	SeatNumber int    `json:"seat_number" validate:"required,min=1"`
}
