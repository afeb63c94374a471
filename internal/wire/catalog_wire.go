package wire

import (
	"wedding-portal/internal/adaptor"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))

		// GET /api/menu - Menu filtered by the viewer's category
		r.Get("/api/menu", catalogHandler.GetMenu)

		// GET /api/asoebi - Asoebi fabric listings
		r.Get("/api/asoebi", catalogHandler.GetAsoebi)

		// GET /api/registry - Gift registry
		r.Get("/api/registry", catalogHandler.GetRegistry)

		// GET /api/gallery - Photo gallery
		r.Get("/api/gallery", catalogHandler.GetGallery)

		// GET /api/party - Wedding party members
		r.Get("/api/party", catalogHandler.GetParty)

		// GET /api/payment-details - Bank details for gifts
		r.Get("/api/payment-details", catalogHandler.GetPayment)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/catalog", func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))
		r.Use(middleware.Admin(log))

		r.Post("/food", catalogHandler.AddFood)
		r.Put("/food/{id}", catalogHandler.UpdateFood)
		r.Delete("/food/{id}", catalogHandler.RemoveFood)

		r.Post("/drinks", catalogHandler.AddDrink)
		r.Put("/drinks/{id}", catalogHandler.UpdateDrink)
		r.Delete("/drinks/{id}", catalogHandler.RemoveDrink)

		r.Post("/asoebi", catalogHandler.AddAsoebi)
		r.Put("/asoebi/{id}", catalogHandler.UpdateAsoebi)
		r.Delete("/asoebi/{id}", catalogHandler.RemoveAsoebi)

		r.Post("/registry", catalogHandler.AddRegistry)
		r.Put("/registry/{id}", catalogHandler.UpdateRegistry)
		r.Delete("/registry/{id}", catalogHandler.RemoveRegistry)

		r.Post("/gallery", catalogHandler.AddGallery)
		r.Put("/gallery/{id}", catalogHandler.UpdateGallery)
		r.Delete("/gallery/{id}", catalogHandler.RemoveGallery)

		r.Post("/party", catalogHandler.AddParty)
		r.Put("/party/{id}", catalogHandler.UpdateParty)
		r.Delete("/party/{id}", catalogHandler.RemoveParty)

		r.Put("/payment-details", catalogHandler.SavePayment)
	})
}
