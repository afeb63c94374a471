package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// Me handles GET /api/me (guest)
func (h *GuestHandler) Me(w http.ResponseWriter, r *http.Request) {
	code, ok := utils.GetAccessCodeFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	guest, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// UpdateMe handles PUT /api/me (guest)
func (h *GuestHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	code, ok := utils.GetAccessCodeFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}
	// Guests may rename themselves but never change their own category
	req.Category = nil

	guest, err := h.service.UpdateProfile(r.Context(), code, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// SetSelection handles PUT /api/me/selection (guest)
func (h *GuestHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	code, ok := utils.GetAccessCodeFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.SetSelection(r.Context(), code, &req)
	if err != nil {
		h.handleServiceError(w, err, "set selection")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// ListGuests handles GET /api/admin/guests (admin) and
// GET /api/usher/guests (usher)
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.List(r.Context()))
}

// GetGuest handles GET /api/admin/guests/{code}
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.service.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleServiceError(w, err, "get guest")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// UpdateGuest handles PUT /api/admin/guests/{code} (admin)
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "code"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update guest")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// SetArrival handles PUT /api/usher/guests/{code}/arrival (usher)
func (h *GuestHandler) SetArrival(w http.ResponseWriter, r *http.Request) {
	var req request.ArrivalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.SetArrival(r.Context(), chi.URLParam(r, "code"), *req.Arrived)
	if err != nil {
		h.handleServiceError(w, err, "set arrival")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

// SetServiceFlags handles PUT /api/usher/guests/{code}/service (usher)
func (h *GuestHandler) SetServiceFlags(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.SetServiceFlags(r.Context(), chi.URLParam(r, "code"), &req)
	if err != nil {
		h.handleServiceError(w, err, "set service flags")
		return
	}
	utils.ResponseSuccess(w, "success", guest)
}

func (h *GuestHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Guest not found")

	case errors.Is(err, usecase.ErrNotOnMenu):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrTierTooLow):
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Guest operation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
