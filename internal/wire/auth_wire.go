package wire

import (
	"wedding-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/verify - Exchange an access code for a role
	r.Post("/api/auth/verify", authHandler.VerifyCode)
}
