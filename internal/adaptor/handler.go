package adaptor

import (
	"wedding-portal/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Guest    *GuestHandler
	Seating  *SeatingHandler
	Settings *SettingsHandler
	Catalog  *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Guest:    NewGuestHandler(service.Guest, log),
		Seating:  NewSeatingHandler(service.Seating, log),
		Settings: NewSettingsHandler(service.Settings, log),
		Catalog:  NewCatalogHandler(service.Catalog, service.Guest, log),
	}
}
