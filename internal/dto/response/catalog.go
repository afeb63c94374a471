package response

import (
	"time"

	"wedding-portal/internal/data/entity"
)

type FoodItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tier        string `json:"tier"`
}

type DrinkItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tier        string `json:"tier"`
}

type MenuResponse struct {
	Food   []FoodItemResponse  `json:"food"`
	Drinks []DrinkItemResponse `json:"drinks"`
}

type AsoebiItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type RegistryItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Link        string  `json:"link,omitempty"`
}

type GalleryItemResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PartyMemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type PaymentDetailsResponse struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

func FoodToResponse(it *entity.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Tier:        string(it.Tier),
	}
}

func DrinkToResponse(it *entity.DrinkItem) DrinkItemResponse {
	return DrinkItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Tier:        string(it.Tier),
	}
}

func AsoebiToResponse(it *entity.AsoebiItem) AsoebiItemResponse {
	return AsoebiItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		ImageURL:    it.ImageURL,
	}
}

func RegistryToResponse(it *entity.RegistryItem) RegistryItemResponse {
	return RegistryItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Link:        it.Link,
	}
}

func GalleryToResponse(it *entity.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:        it.ID.String(),
		ImageURL:  it.ImageURL,
		Caption:   it.Caption,
		CreatedAt: it.CreatedAt,
	}
}

func PartyToResponse(m *entity.PartyMember) PartyMemberResponse {
	return PartyMemberResponse{
		ID:       m.ID.String(),
		Name:     m.Name,
		Role:     m.Role,
		PhotoURL: m.PhotoURL,
	}
}

func PaymentToResponse(p *entity.PaymentDetails) *PaymentDetailsResponse {
	if p == nil {
		return nil
	}
	return &PaymentDetailsResponse{
		BankName:      p.BankName,
		AccountName:   p.AccountName,
		AccountNumber: p.AccountNumber,
	}
}
