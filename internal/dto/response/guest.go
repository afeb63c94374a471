package response

import (
	"time"

	"wedding-portal/internal/data/entity"
)

type GuestResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	SeatNumber  *int    `json:"seat_number,omitempty"`
	TableNumber *int    `json:"table_number,omitempty"`
	Arrived     bool    `json:"arrived"`
	MealServed  bool    `json:"meal_served"`
	DrinkServed bool    `json:"drink_served"`
	FoodChoice  *string `json:"food_choice,omitempty"`
	DrinkChoice *string `json:"drink_choice,omitempty"`
	Category    string  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthResponse struct {
	Role  string         `json:"role"`
	Guest *GuestResponse `json:"guest,omitempty"`
}

type GeneratedCodesResponse struct {
	Codes []string `json:"codes"`
}

func GuestToResponse(g *entity.Guest, tableNumber int) *GuestResponse {
	resp := &GuestResponse{
		Code:        g.Code,
		Name:        g.Name,
		SeatNumber:  g.SeatNumber,
		Arrived:     g.Arrived,
		MealServed:  g.MealServed,
		DrinkServed: g.DrinkServed,
		FoodChoice:  g.FoodChoice,
		DrinkChoice: g.DrinkChoice,
		Category:    string(g.Category),
		CreatedAt:   g.CreatedAt,
	}
	if tableNumber > 0 {
		resp.TableNumber = &tableNumber
	}
	return resp
}
