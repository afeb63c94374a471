package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "settings")),
	}
}

// GetSettings handles GET /api/settings (any authenticated role)
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Get(r.Context()))
}

// UpdateSettings handles PUT /api/admin/settings (admin)
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	settings, warning, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.log.Error("Update settings failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if warning != "" {
		utils.ResponseSuccessWithWarning(w, "success", warning, settings)
		return
	}
	utils.ResponseSuccess(w, "success", settings)
}

// SetTableMeta handles PUT /api/admin/tables/{number} (admin)
func (h *SettingsHandler) SetTableMeta(w http.ResponseWriter, r *http.Request) {
	tableNumber := utils.ParseInt(chi.URLParam(r, "number"), 0)
	if tableNumber < 1 {
		utils.ResponseBadRequest(w, "Invalid table number", nil)
		return
	}

	var req request.TableMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SetTableMeta(r.Context(), tableNumber, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoteTooLong):
			utils.ResponseBadRequest(w, err.Error(), nil)
		case strings.Contains(err.Error(), "out of range"):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Set table meta failed",
				zap.Error(err),
				zap.Int("table", tableNumber))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}

// RefreshData handles POST /api/admin/refresh (admin)
func (h *SettingsHandler) RefreshData(w http.ResponseWriter, r *http.Request) {
	warning, err := h.service.RefreshData(r.Context())
	if err != nil {
		h.log.Error("Refresh failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if warning != "" {
		utils.ResponseSuccessWithWarning(w, "success", warning, nil)
		return
	}
	utils.ResponseSuccess(w, "success", nil)
}
