package entity

import "time"

type GuestCategory string

const (
	CategoryVVIP    GuestCategory = "vvip"
	CategoryPremium GuestCategory = "premium"
	CategoryFamily  GuestCategory = "family"
)

// rank orders categories for menu visibility: a guest sees every
// item at or below their own tier.
func (c GuestCategory) rank() int {
	switch c {
	case CategoryVVIP:
		return 3
	case CategoryPremium:
		return 2
	case CategoryFamily:
		return 1
	default:
		return 0
	}
}

func (c GuestCategory) Valid() bool {
	return c.rank() > 0
}

// CanSelect reports whether a guest of this category may pick an item
// published at the given tier.
func (c GuestCategory) CanSelect(itemTier GuestCategory) bool {
	return c.rank() >= itemTier.rank()
}

// Guest is identified by its access code. The code doubles as the
// guest's only credential.
type Guest struct {
	Code        string        `db:"code" json:"code"`
	Name        string        `db:"name" json:"name"`
	SeatNumber  *int          `db:"seat_number" json:"seat_number,omitempty"`
	Arrived     bool          `db:"arrived" json:"arrived"`
	MealServed  bool          `db:"meal_served" json:"meal_served"`
	DrinkServed bool          `db:"drink_served" json:"drink_served"`
	FoodChoice  *string       `db:"food_choice" json:"food_choice,omitempty"`
	DrinkChoice *string       `db:"drink_choice" json:"drink_choice,omitempty"`
	Category    GuestCategory `db:"category" json:"category"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
