package usecase

import (
	"errors"

	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

// Errors the handlers translate into HTTP envelopes.
var (
	ErrInvalidCode  = errors.New("access code not recognized")
	ErrNotFound     = errors.New("not found")
	ErrNotOnMenu    = errors.New("item is not on the menu")
	ErrTierTooLow   = errors.New("item is not available for this guest category")
	ErrNoteTooLong  = errors.New("table note exceeds the word limit")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	Auth     AuthService
	Guest    GuestService
	Seating  SeatingService
	Settings SettingsService
	Catalog  CatalogService
}

func NewService(m *state.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(m, config, log),
		Guest:    NewGuestService(m, log),
		Seating:  NewSeatingService(m, log),
		Settings: NewSettingsService(m, log),
		Catalog:  NewCatalogService(m, log),
	}
}
