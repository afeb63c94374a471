package wire

import (
	"wedding-portal/internal/adaptor"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeating(
	r chi.Router,
	seatingHandler *adaptor.SeatingHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))

		// GET /api/seating/mine - Own seat and table details
		r.Get("/api/seating/mine", seatingHandler.MySeat)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/seats - Full seat map grouped by table
		r.Get("/api/admin/seats", seatingHandler.GetSeatMap)

		// POST /api/admin/seats/assign - Assign a guest to a seat
		r.Post("/api/admin/seats/assign", seatingHandler.AssignSeat)

		// POST /api/admin/seats/auto-assign - Seat every unseated guest
		r.Post("/api/admin/seats/auto-assign", seatingHandler.AutoAssign)

		// POST /api/admin/guests/generate - Mint new guest codes
		r.Post("/api/admin/guests/generate", seatingHandler.GenerateCodes)
	})
}
