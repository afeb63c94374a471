package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"wedding-portal/internal/data/entity"
	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	guests  usecase.GuestService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, guests usecase.GuestService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		guests:  guests,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== READS ====================

// GetMenu handles GET /api/menu. Guests see only the items their
// category can select; ushers and admins see everything.
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	var viewer *entity.GuestCategory
	if role, ok := utils.GetRoleFromContext(r.Context()); ok && role == utils.RoleGuest {
		if code, ok := utils.GetAccessCodeFromContext(r.Context()); ok {
			if g, err := h.guests.Get(r.Context(), code); err == nil {
				c := entity.GuestCategory(g.Category)
				viewer = &c
			}
		}
	}
	utils.ResponseSuccess(w, "success", h.service.Menu(r.Context(), viewer))
}

// GetAsoebi handles GET /api/asoebi
func (h *CatalogHandler) GetAsoebi(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Asoebi(r.Context()))
}

// GetRegistry handles GET /api/registry
func (h *CatalogHandler) GetRegistry(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Registry(r.Context()))
}

// GetGallery handles GET /api/gallery
func (h *CatalogHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Gallery(r.Context()))
}

// GetParty handles GET /api/party
func (h *CatalogHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Party(r.Context()))
}

// GetPayment handles GET /api/payment-details
func (h *CatalogHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Payment(r.Context()))
}

// ==================== ADMIN: MENU ====================

func (h *CatalogHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	var req request.FoodItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddFood(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add food item")
		return
	}
	utils.ResponseCreated(w, "success", item)
}

func (h *CatalogHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.FoodItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateFood(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update food item")
		return
	}
	utils.ResponseSuccess(w, "success", item)
}

func (h *CatalogHandler) RemoveFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFood(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove food item")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

func (h *CatalogHandler) AddDrink(w http.ResponseWriter, r *http.Request) {
	var req request.DrinkItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddDrink(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add drink item")
		return
	}
	utils.ResponseCreated(w, "success", item)
}

func (h *CatalogHandler) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.DrinkItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateDrink(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update drink item")
		return
	}
	utils.ResponseSuccess(w, "success", item)
}

func (h *CatalogHandler) RemoveDrink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveDrink(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove drink item")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN: ASOEBI ====================

func (h *CatalogHandler) AddAsoebi(w http.ResponseWriter, r *http.Request) {
	var req request.AsoebiItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddAsoebi(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add asoebi item")
		return
	}
	utils.ResponseCreated(w, "success", item)
}

func (h *CatalogHandler) UpdateAsoebi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.AsoebiItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateAsoebi(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update asoebi item")
		return
	}
	utils.ResponseSuccess(w, "success", item)
}

func (h *CatalogHandler) RemoveAsoebi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveAsoebi(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove asoebi item")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN: REGISTRY ====================

func (h *CatalogHandler) AddRegistry(w http.ResponseWriter, r *http.Request) {
	var req request.RegistryItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddRegistry(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add registry item")
		return
	}
	utils.ResponseCreated(w, "success", item)
}

func (h *CatalogHandler) UpdateRegistry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.RegistryItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateRegistry(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update registry item")
		return
	}
	utils.ResponseSuccess(w, "success", item)
}

func (h *CatalogHandler) RemoveRegistry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveRegistry(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove registry item")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN: GALLERY ====================

func (h *CatalogHandler) AddGallery(w http.ResponseWriter, r *http.Request) {
	var req request.GalleryItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddGallery(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add gallery item")
		return
	}
	utils.ResponseCreated(w, "success", item)
}

func (h *CatalogHandler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.GalleryItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateGallery(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update gallery item")
		return
	}
	utils.ResponseSuccess(w, "success", item)
}

func (h *CatalogHandler) RemoveGallery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveGallery(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove gallery item")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN: WEDDING PARTY ====================

func (h *CatalogHandler) AddParty(w http.ResponseWriter, r *http.Request) {
	var req request.PartyMemberRequest
	if !h.decode(w, r, &req) {
		return
	}
	member, err := h.service.AddParty(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add party member")
		return
	}
	utils.ResponseCreated(w, "success", member)
}

func (h *CatalogHandler) UpdateParty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req request.PartyMemberRequest
	if !h.decode(w, r, &req) {
		return
	}
	member, err := h.service.UpdateParty(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update party member")
		return
	}
	utils.ResponseSuccess(w, "success", member)
}

func (h *CatalogHandler) RemoveParty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveParty(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "remove party member")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN: PAYMENT ====================

func (h *CatalogHandler) SavePayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentDetailsRequest
	if !h.decode(w, r, &req) {
		return
	}
	details, err := h.service.SavePayment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "save payment details")
		return
	}
	utils.ResponseSuccess(w, "success", details)
}

// ==================== HELPERS ====================

func (h *CatalogHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

func (h *CatalogHandler) itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid item id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if strings.Contains(err.Error(), "not found") {
		utils.ResponseNotFound(w, "Item not found")
		return
	}

	h.log.Error("Catalog operation failed",
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
