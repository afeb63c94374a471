package wire

import (
	"wedding-portal/internal/adaptor"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== GUEST ROUTES (any authenticated code) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))

		// GET /api/me - Own profile with seat and table
		r.Get("/api/me", guestHandler.Me)

		// PUT /api/me - Update own name
		r.Put("/api/me", guestHandler.UpdateMe)

		// PUT /api/me/selection - Pick food and drink from the menu
		r.Put("/api/me/selection", guestHandler.SetSelection)
	})

	// ==================== USHER ROUTES ====================
	r.Route("/api/usher/guests", func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))
		r.Use(middleware.Usher(log))

		// GET /api/usher/guests - Full guest list for check-in
		r.Get("/", guestHandler.ListGuests)

		// PUT /api/usher/guests/{code}/arrival - Mark arrival
		r.Put("/{code}/arrival", guestHandler.SetArrival)

		// PUT /api/usher/guests/{code}/service - Mark meal/drink served
		r.Put("/{code}/service", guestHandler.SetServiceFlags)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/guests", func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/guests - Full guest list
		r.Get("/", guestHandler.ListGuests)

		// GET /api/admin/guests/{code} - Single guest
		r.Get("/{code}", guestHandler.GetGuest)

		// PUT /api/admin/guests/{code} - Edit name and category
		r.Put("/{code}", guestHandler.UpdateGuest)
	})
}
