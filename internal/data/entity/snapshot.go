package entity

// Snapshot is the serialized form of the whole application state, the
// unit the local-fallback store reads and writes. Seats are not part
// of it: the seat ledger is always rebuilt from guest seat numbers and
// the configured capacity.
type Snapshot struct {
	Settings *Settings       `json:"settings"`
	Guests   []*Guest        `json:"guests"`
	Food     []*FoodItem     `json:"food"`
	Drinks   []*DrinkItem    `json:"drinks"`
	Asoebi   []*AsoebiItem   `json:"asoebi"`
	Registry []*RegistryItem `json:"registry"`
	Gallery  []*GalleryItem  `json:"gallery"`
	Party    []*PartyMember  `json:"party"`
	Payment  *PaymentDetails `json:"payment"`
}
