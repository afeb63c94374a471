package usecase

import (
	"context"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/dto/response"
	"wedding-portal/internal/seating"
	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

type GuestService interface {
	List(ctx context.Context) []*response.GuestResponse
	Get(ctx context.Context, code string) (*response.GuestResponse, error)
	UpdateProfile(ctx context.Context, code string, req *request.UpdateGuestRequest) (*response.GuestResponse, error)
	SetArrival(ctx context.Context, code string, arrived bool) (*response.GuestResponse, error)
	SetServiceFlags(ctx context.Context, code string, req *request.ServiceFlagsRequest) (*response.GuestResponse, error)
	SetSelection(ctx context.Context, code string, req *request.SelectionRequest) (*response.GuestResponse, error)
}

type guestService struct {
	state *state.Manager
	log   *zap.Logger
}

func NewGuestService(m *state.Manager, log *zap.Logger) GuestService {
	return &guestService{
		state: m,
		log:   log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) toResponse(g *entity.Guest) *response.GuestResponse {
	settings := s.state.Settings()
	table := 0
	if g.SeatNumber != nil {
		table = seating.TableOf(*g.SeatNumber, settings.SeatsPerTable)
	}
	return response.GuestToResponse(g, table)
}

func (s *guestService) List(ctx context.Context) []*response.GuestResponse {
	guests := s.state.Guests()
	out := make([]*response.GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, s.toResponse(g))
	}
	return out
}

func (s *guestService) Get(ctx context.Context, code string) (*response.GuestResponse, error) {
	guest, ok := s.state.Guest(utils.NormalizeCode(code))
	if !ok {
		return nil, ErrNotFound
	}
	return s.toResponse(guest), nil
}

func (s *guestService) UpdateProfile(ctx context.Context, code string, req *request.UpdateGuestRequest) (*response.GuestResponse, error) {
	code = utils.NormalizeCode(code)
	if _, ok := s.state.Guest(code); !ok {
		return nil, ErrNotFound
	}

	var category *entity.GuestCategory
	if req.Category != nil {
		c := entity.GuestCategory(*req.Category)
		if !c.Valid() {
			return nil, ErrInvalidInput
		}
		category = &c
	}
	if err := s.state.UpdateGuestProfile(ctx, code, req.Name, category); err != nil {
		return nil, err
	}
	return s.fresh(code)
}

func (s *guestService) SetArrival(ctx context.Context, code string, arrived bool) (*response.GuestResponse, error) {
	code = utils.NormalizeCode(code)
	if _, ok := s.state.Guest(code); !ok {
		return nil, ErrNotFound
	}
	if err := s.state.SetArrival(ctx, code, arrived); err != nil {
		return nil, err
	}
	return s.fresh(code)
}

func (s *guestService) SetServiceFlags(ctx context.Context, code string, req *request.ServiceFlagsRequest) (*response.GuestResponse, error) {
	code = utils.NormalizeCode(code)
	if _, ok := s.state.Guest(code); !ok {
		return nil, ErrNotFound
	}
	if err := s.state.SetServiceFlags(ctx, code, req.MealServed, req.DrinkServed); err != nil {
		return nil, err
	}
	return s.fresh(code)
}

// SetSelection records a guest's food and drink choices. Every choice
// must name an item on the menu, and the item's tier must be within
// reach of the guest's category.
func (s *guestService) SetSelection(ctx context.Context, code string, req *request.SelectionRequest) (*response.GuestResponse, error) {
	code = utils.NormalizeCode(code)
	guest, ok := s.state.Guest(code)
	if !ok {
		return nil, ErrNotFound
	}

	if req.Food != nil {
		tier, found := s.foodTier(*req.Food)
		if !found {
			return nil, ErrNotOnMenu
		}
		if !guest.Category.CanSelect(tier) {
			s.log.Debug("food selection above tier",
				zap.String("code", code),
				zap.String("item", *req.Food))
			return nil, ErrTierTooLow
		}
	}
	if req.Drink != nil {
		tier, found := s.drinkTier(*req.Drink)
		if !found {
			return nil, ErrNotOnMenu
		}
		if !guest.Category.CanSelect(tier) {
			s.log.Debug("drink selection above tier",
				zap.String("code", code),
				zap.String("item", *req.Drink))
			return nil, ErrTierTooLow
		}
	}

	if err := s.state.SetSelection(ctx, code, req.Food, req.Drink); err != nil {
		return nil, err
	}
	return s.fresh(code)
}

func (s *guestService) fresh(code string) (*response.GuestResponse, error) {
	guest, ok := s.state.Guest(code)
	if !ok {
		return nil, ErrNotFound
	}
	return s.toResponse(guest), nil
}

func (s *guestService) foodTier(name string) (entity.GuestCategory, bool) {
	for _, item := range s.state.Food() {
		if item.Name == name {
			return item.Tier, true
		}
	}
	return "", false
}

func (s *guestService) drinkTier(name string) (entity.GuestCategory, bool) {
	for _, item := range s.state.Drinks() {
		if item.Name == name {
			return item.Tier, true
		}
	}
	return "", false
}
