package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-portal/internal/dto/request"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// VerifyCode handles POST /api/auth/verify (public)
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Verify(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCode) {
			utils.ResponseUnauthorized(w, "Invalid access code")
			return
		}
		h.log.Error("Verify code failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}
