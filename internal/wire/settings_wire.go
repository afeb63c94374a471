package wire

import (
	"wedding-portal/internal/adaptor"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))

		// GET /api/settings - Event details and theme
		r.Get("/api/settings", settingsHandler.GetSettings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccessCode(auth, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/settings - Event details including table meta
		r.Get("/api/admin/settings", settingsHandler.GetSettings)

		// PUT /api/admin/settings - Update event details and capacity
		r.Put("/api/admin/settings", settingsHandler.UpdateSettings)

		// PUT /api/admin/tables/{number} - Name or annotate a table
		r.Put("/api/admin/tables/{number}", settingsHandler.SetTableMeta)

		// POST /api/admin/refresh - Re-pull state from the store
		r.Post("/api/admin/refresh", settingsHandler.RefreshData)
	})
}
