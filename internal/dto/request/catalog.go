package request

type FoodItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Tier        string `json:"tier" validate:"required,oneof=vvip premium family"`
}

type DrinkItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Tier        string `json:"tier" validate:"required,oneof=vvip premium family"`
}

type AsoebiItemRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"min=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type RegistryItemRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"min=0"`
	Link        string  `json:"link" validate:"omitempty,url"`
}

type GalleryItemRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Caption  string `json:"caption" validate:"max=300"`
}

type PartyMemberRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

type PaymentDetailsRequest struct {
	BankName      string `json:"bank_name" validate:"required,max=100"`
	AccountName   string `json:"account_name" validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,max=34"`
}
