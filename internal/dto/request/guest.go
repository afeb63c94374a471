package request

type GenerateCodesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=500"`
}

type UpdateGuestRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=vvip premium family"`
}

type ArrivalRequest struct {
	Arrived *bool `json:"arrived" validate:"required"`
}

type ServiceFlagsRequest struct {
	MealServed  *bool `json:"meal_served,omitempty"`
	DrinkServed *bool `json:"drink_served,omitempty"`
}

type SelectionRequest struct {
	Food  *string `json:"food,omitempty" validate:"omitempty,max=100"`
	Drink *string `json:"drink,omitempty" validate:"omitempty,max=100"`
}
