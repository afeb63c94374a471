package usecase

import (
	"context"
	"time"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/dto/response"
	"wedding-portal/internal/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService exposes the event's displayed collections. Reads are
// open to every role; Menu takes an optional viewing category so guest
// menus hide items above the guest's tier. Mutations are admin-only
// and are gated at the router.
type CatalogService interface {
	Menu(ctx context.Context, viewer *entity.GuestCategory) *response.MenuResponse
	Asoebi(ctx context.Context) []response.AsoebiItemResponse
	Registry(ctx context.Context) []response.RegistryItemResponse
	Gallery(ctx context.Context) []response.GalleryItemResponse
	Party(ctx context.Context) []response.PartyMemberResponse
	Payment(ctx context.Context) *response.PaymentDetailsResponse

	AddFood(ctx context.Context, req *request.FoodItemRequest) (*response.FoodItemResponse, error)
	UpdateFood(ctx context.Context, id uuid.UUID, req *request.FoodItemRequest) (*response.FoodItemResponse, error)
	RemoveFood(ctx context.Context, id uuid.UUID) error
	AddDrink(ctx context.Context, req *request.DrinkItemRequest) (*response.DrinkItemResponse, error)
	UpdateDrink(ctx context.Context, id uuid.UUID, req *request.DrinkItemRequest) (*response.DrinkItemResponse, error)
	RemoveDrink(ctx context.Context, id uuid.UUID) error
	AddAsoebi(ctx context.Context, req *request.AsoebiItemRequest) (*response.AsoebiItemResponse, error)
	UpdateAsoebi(ctx context.Context, id uuid.UUID, req *request.AsoebiItemRequest) (*response.AsoebiItemResponse, error)
	RemoveAsoebi(ctx context.Context, id uuid.UUID) error
	AddRegistry(ctx context.Context, req *request.RegistryItemRequest) (*response.RegistryItemResponse, error)
	UpdateRegistry(ctx context.Context, id uuid.UUID, req *request.RegistryItemRequest) (*response.RegistryItemResponse, error)
	RemoveRegistry(ctx context.Context, id uuid.UUID) error
	AddGallery(ctx context.Context, req *request.GalleryItemRequest) (*response.GalleryItemResponse, error)
	UpdateGallery(ctx context.Context, id uuid.UUID, req *request.GalleryItemRequest) (*response.GalleryItemResponse, error)
	RemoveGallery(ctx context.Context, id uuid.UUID) error
	AddParty(ctx context.Context, req *request.PartyMemberRequest) (*response.PartyMemberResponse, error)
	UpdateParty(ctx context.Context, id uuid.UUID, req *request.PartyMemberRequest) (*response.PartyMemberResponse, error)
	RemoveParty(ctx context.Context, id uuid.UUID) error
	SavePayment(ctx context.Context, req *request.PaymentDetailsRequest) (*response.PaymentDetailsResponse, error)
}

type catalogService struct {
	state *state.Manager
	log   *zap.Logger
}

func NewCatalogService(m *state.Manager, log *zap.Logger) CatalogService {
	return &catalogService{
		state: m,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// ==================== READS ====================

func (s *catalogService) Menu(ctx context.Context, viewer *entity.GuestCategory) *response.MenuResponse {
	menu := &response.MenuResponse{
		Food:   []response.FoodItemResponse{},
		Drinks: []response.DrinkItemResponse{},
	}
	for _, it := range s.state.Food() {
		if viewer != nil && !viewer.CanSelect(it.Tier) {
			continue
		}
		menu.Food = append(menu.Food, response.FoodToResponse(it))
	}
	for _, it := range s.state.Drinks() {
		if viewer != nil && !viewer.CanSelect(it.Tier) {
			continue
		}
		menu.Drinks = append(menu.Drinks, response.DrinkToResponse(it))
	}
	return menu
}

func (s *catalogService) Asoebi(ctx context.Context) []response.AsoebiItemResponse {
	items := s.state.Asoebi()
	out := make([]response.AsoebiItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, response.AsoebiToResponse(it))
	}
	return out
}

func (s *catalogService) Registry(ctx context.Context) []response.RegistryItemResponse {
	items := s.state.Registry()
	out := make([]response.RegistryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, response.RegistryToResponse(it))
	}
	return out
}

func (s *catalogService) Gallery(ctx context.Context) []response.GalleryItemResponse {
	items := s.state.Gallery()
	out := make([]response.GalleryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, response.GalleryToResponse(it))
	}
	return out
}

func (s *catalogService) Party(ctx context.Context) []response.PartyMemberResponse {
	members := s.state.Party()
	out := make([]response.PartyMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, response.PartyToResponse(m))
	}
	return out
}

func (s *catalogService) Payment(ctx context.Context) *response.PaymentDetailsResponse {
	return response.PaymentToResponse(s.state.Payment())
}

// ==================== MENU ====================

func (s *catalogService) AddFood(ctx context.Context, req *request.FoodItemRequest) (*response.FoodItemResponse, error) {
	item := &entity.FoodItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Tier:        entity.GuestCategory(req.Tier),
		CreatedAt:   time.Now(),
	}
	if err := s.state.AddFood(ctx, item); err != nil {
		return nil, err
	}
	resp := response.FoodToResponse(item)
	return &resp, nil
}

func (s *catalogService) UpdateFood(ctx context.Context, id uuid.UUID, req *request.FoodItemRequest) (*response.FoodItemResponse, error) {
	item := &entity.FoodItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Tier:        entity.GuestCategory(req.Tier),
	}
	if err := s.state.UpdateFood(ctx, item); err != nil {
		return nil, err
	}
	resp := response.FoodToResponse(item)
	return &resp, nil
}

func (s *catalogService) RemoveFood(ctx context.Context, id uuid.UUID) error {
	return s.state.RemoveFood(ctx, id)
}

func (s *catalogService) AddDrink(ctx context.Context, req *request.DrinkItemRequest) (*response.DrinkItemResponse, error) {
	item := &entity.DrinkItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Tier:        entity.GuestCategory(req.Tier),
		CreatedAt:   time.Now(),
	}
	if err := s.state.AddDrink(ctx, item); err != nil {
		return nil, err
	}
	resp := response.DrinkToResponse(item)
	return &resp, nil
}

func (s *catalogService) UpdateDrink(ctx context.Context, id uuid.UUID, req *request.DrinkItemRequest) (*response.DrinkItemResponse, error) {
	item := &entity.DrinkItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Tier:        entity.GuestCategory(req.Tier),
	}
	if err := s.state.UpdateDrink(ctx, item); err != nil {
		return nil, err
	}
	resp := response.DrinkToResponse(item)
	return &resp, nil
}

func (s *catalogService) RemoveDrink(ctx context.Context, id uuid.UUID) error {
	return s.state.RemoveDrink(ctx, id)
}

// ==================== ASOEBI ====================

func (s *catalogService) AddAsoebi(ctx context.Context, req *request.AsoebiItemRequest) (*response.AsoebiItemResponse, error) {
	item := &entity.AsoebiItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := s.state.AddAsoebi(ctx, item); err != nil {
		return nil, err
	}
	resp := response.AsoebiToResponse(item)
	return &resp, nil
}

func (s *catalogService) UpdateAsoebi(ctx context.Context, id uuid.UUID, req *request.AsoebiItemRequest) (*response.AsoebiItemResponse, error) {
	item := &entity.AsoebiItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.state.UpdateAsoebi(ctx, item); err != nil {
		return nil, err
	}
	resp := response.AsoebiToResponse(item)
	return &resp, nil
}

func (s *catalogService) RemoveAsoebi(ctx context.Context, id uuid.UUID) error {
	return s.state.RemoveAsoebi(ctx, id)
}

// ==================== REGISTRY ====================

func (s *catalogService) AddRegistry(ctx context.Context, req *request.RegistryItemRequest) (*response.RegistryItemResponse, error) {
	item := &entity.RegistryItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Link:        req.Link,
		CreatedAt:   time.Now(),
	}
	if err := s.state.AddRegistry(ctx, item); err != nil {
		return nil, err
	}
	resp := response.RegistryToResponse(item)
	return &resp, nil
}

func (s *catalogService) UpdateRegistry(ctx context.Context, id uuid.UUID, req *request.RegistryItemRequest) (*response.RegistryItemResponse, error) {
	item := &entity.RegistryItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Link:        req.Link,
	}
	if err := s.state.UpdateRegistry(ctx, item); err != nil {
		return nil, err
	}
	resp := response.RegistryToResponse(item)
	return &resp, nil
}

func (s *catalogService) RemoveRegistry(ctx context.Context, id uuid.UUID) error {
	return s.state.RemoveRegistry(ctx, id)
}

// ==================== GALLERY ====================

func (s *catalogService) AddGallery(ctx context.Context, req *request.GalleryItemRequest) (*response.GalleryItemResponse, error) {
	item := &entity.GalleryItem{
		ID:        uuid.New(),
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		CreatedAt: time.Now(),
	}
	if err := s.state.AddGalleryItem(ctx, item); err != nil {
		return nil, err
	}
	resp := response.GalleryToResponse(item)
	return &resp, nil
}

func (s *catalogService) UpdateGallery(ctx context.Context, id uuid.UUID, req *request.GalleryItemRequest) (*response.GalleryItemResponse, error) {
	item := &entity.GalleryItem{
		ID:       id,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	}
	if err := s.state.UpdateGalleryItem(ctx, item); err != nil {
		return nil, err
	}
	resp := response.GalleryToResponse(item)
	return &resp, nil
}

func (s *catalogService) RemoveGallery(ctx context.Context, id uuid.UUID) error {
	return s.state.RemoveGalleryItem(ctx, id)
}

// ==================== WEDDING PARTY ====================

func (s *catalogService) AddParty(ctx context.Context, req *request.PartyMemberRequest) (*response.PartyMemberResponse, error) {
	member := &entity.PartyMember{
		ID:        uuid.New(),
		Name:      req.Name,
		Role:      req.Role,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now(),
	}
	if err := s.state.AddPartyMember(ctx, member); err != nil {
		return nil, err
	}
	resp := response.PartyToResponse(member)
	return &resp, nil
}

func (s *catalogService) UpdateParty(ctx context.Context, id uuid.UUID, req *request.PartyMemberRequest) (*response.PartyMemberResponse, error) {
	member := &entity.PartyMember{
		ID:       id,
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
	}
	if err := s.state.UpdatePartyMember(ctx, member); err != nil {
		return nil, err
	}
	resp := response.PartyToResponse(member)
	return &resp, nil
}

func (s *catalogService) RemoveParty(ctx context.Context, id uuid.UUID) error {
	return s.state.RemovePartyMember(ctx, id)
}

// ==================== PAYMENT ====================

func (s *catalogService) SavePayment(ctx context.Context, req *request.PaymentDetailsRequest) (*response.PaymentDetailsResponse, error) {
	details := &entity.PaymentDetails{
		ID:            uuid.New(),
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		CreatedAt:     time.Now(),
	}
	if err := s.state.SavePayment(ctx, details); err != nil {
		return nil, err
	}
	return response.PaymentToResponse(details), nil
}
