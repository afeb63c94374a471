package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/seating"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

type SeatingHandler struct {
	service usecase.SeatingService
	log     *zap.Logger
}

func NewSeatingHandler(service usecase.SeatingService, log *zap.Logger) *SeatingHandler {
	return &SeatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "seating")),
	}
}

// GetSeatMap handles GET /api/admin/seats (admin)
func (h *SeatingHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.SeatMap(r.Context()))
}

// MySeat handles GET /api/seating/mine (guest)
func (h *SeatingHandler) MySeat(w http.ResponseWriter, r *http.Request) {
	code, ok := utils.GetAccessCodeFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	seat, err := h.service.MySeat(r.Context(), code)
	if err != nil {
		h.handleServiceError(w, err, "my seat")
		return
	}
	utils.ResponseSuccess(w, "success", seat)
}

// AssignSeat handles POST /api/admin/seats/assign (admin)
func (h *SeatingHandler) AssignSeat(w http.ResponseWriter, r *http.Request) {
	var req request.AssignSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Assign(r.Context(), req.Code, req.SeatNumber); err != nil {
		h.handleServiceError(w, err, "assign seat")
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// AutoAssign handles POST /api/admin/seats/auto-assign (admin)
func (h *SeatingHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AutoAssign(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "auto assign")
		return
	}
	utils.ResponseSuccess(w, "success", result)
}

// GenerateCodes handles POST /api/admin/guests/generate (admin)
func (h *SeatingHandler) GenerateCodes(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateCodesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.GenerateCodes(r.Context(), req.Count)
	if err != nil {
		h.handleServiceError(w, err, "generate codes")
		return
	}
	utils.ResponseCreated(w, "success", result)
}

func (h *SeatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, seating.ErrSeatTaken):
		h.log.Warn("Seat already occupied", zap.String("operation", operation))
		utils.ResponseConflict(w, "Seat is already occupied")

	case errors.Is(err, seating.ErrSeatOutOfRange):
		utils.ResponseBadRequest(w, "Seat number is out of range", nil)

	case errors.Is(err, seating.ErrUnknownGuest), errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Guest not found")

	default:
		h.log.Error("Seating operation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
