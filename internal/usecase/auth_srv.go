package usecase

import (
	"context"

	"wedding-portal/internal/dto/response"
	"wedding-portal/internal/seating"
	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Verify(ctx context.Context, code string) (*response.AuthResponse, error)
	ResolveRole(code string) (string, bool)
}

type authService struct {
	state  *state.Manager
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(m *state.Manager, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		state:  m,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// ResolveRole maps an access code to a portal role without touching
// guest records beyond a lookup. Reserved codes win over guest codes.
func (s *authService) ResolveRole(code string) (string, bool) {
	code = utils.NormalizeCode(code)
	switch code {
	case utils.NormalizeCode(s.config.Access.AdminCode):
		return utils.RoleAdmin, true
	case utils.NormalizeCode(s.config.Access.UsherCode):
		return utils.RoleUsher, true
	}
	if _, ok := s.state.Guest(code); ok {
		return utils.RoleGuest, true
	}
	return "", false
}

func (s *authService) Verify(ctx context.Context, code string) (*response.AuthResponse, error) {
	role, ok := s.ResolveRole(code)
	if !ok {
		s.log.Debug("rejected access code", zap.String("code", utils.NormalizeCode(code)))
		return nil, ErrInvalidCode
	}

	resp := &response.AuthResponse{Role: role}
	if role == utils.RoleGuest {
		if guest, ok := s.state.Guest(utils.NormalizeCode(code)); ok {
			settings := s.state.Settings()
			table := 0
			if guest.SeatNumber != nil {
				table = seating.TableOf(*guest.SeatNumber, settings.SeatsPerTable)
			}
			resp.Guest = response.GuestToResponse(guest, table)
		}
	}
	return resp, nil
}
