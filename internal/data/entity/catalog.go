package entity

import (
	"time"

	"github.com/google/uuid"
)

// Catalog entities carry a stable id assigned at creation time.
// Removal and updates always key on the id, never on list position.

type FoodItem struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Tier        GuestCategory `db:"tier" json:"tier"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

type DrinkItem struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Tier        GuestCategory `db:"tier" json:"tier"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

type AsoebiItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type RegistryItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Link        string    `db:"link" json:"link"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type GalleryItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	Caption   string    `db:"caption" json:"caption"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PartyMember struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	PhotoURL  string    `db:"photo_url" json:"photo_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PaymentDetails are displayed to guests as-is; nothing here is ever
// validated or settled. Newest record wins.
type PaymentDetails struct {
	ID            uuid.UUID `db:"id" json:"id"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	AccountName   string    `db:"account_name" json:"account_name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
