package usecase

import (
	"context"

	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/dto/response"
	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

// Table notes are shown on printed cards, so they stay short.
const maxTableNoteWords = 150

type SettingsService interface {
	Get(ctx context.Context) *response.SettingsResponse
	Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, string, error)
	SetTableMeta(ctx context.Context, tableNumber int, req *request.TableMetaRequest) error
	RefreshData(ctx context.Context) (string, error)
}

type settingsService struct {
	state *state.Manager
	log   *zap.Logger
}

func NewSettingsService(m *state.Manager, log *zap.Logger) SettingsService {
	return &settingsService{
		state: m,
		log:   log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) Get(ctx context.Context) *response.SettingsResponse {
	return response.SettingsToResponse(s.state.Settings())
}

func (s *settingsService) Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, string, error) {
	warning, err := s.state.UpdateSettings(ctx, state.SettingsUpdate{
		EventName:     req.EventName,
		EventDate:     req.EventDate,
		Venue:         req.Venue,
		MaxSeats:      req.MaxSeats,
		SeatsPerTable: req.SeatsPerTable,
		ThemeID:       req.ThemeID,
	})
	if err != nil {
		return nil, "", err
	}
	return response.SettingsToResponse(s.state.Settings()), warning, nil
}

func (s *settingsService) SetTableMeta(ctx context.Context, tableNumber int, req *request.TableMetaRequest) error {
	if req.Note != nil && utils.WordCount(*req.Note) > maxTableNoteWords {
		return ErrNoteTooLong
	}
	return s.state.SetTableMeta(ctx, tableNumber, req.Name, req.Note)
}

func (s *settingsService) RefreshData(ctx context.Context) (string, error) {
	warning, err := s.state.Refresh(ctx)
	if err != nil {
		return "", err
	}
	if warning != "" {
		s.log.Warn("Refresh served fallback data", zap.String("warning", warning))
	}
	return warning, nil
}
