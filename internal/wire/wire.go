package wire

import (
	"net/http"

	"wedding-portal/internal/adaptor"
	"wedding-portal/internal/state"
	"wedding-portal/internal/usecase"
	"wedding-portal/pkg/middleware"
	"wedding-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes
func Wiring(manager *state.Manager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(manager, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, service *usecase.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireGuest(r, handler.Guest, service.Auth, logger)
	wireSeating(r, handler.Seating, service.Auth, logger)
	wireSettings(r, handler.Settings, service.Auth, logger)
	wireCatalog(r, handler.Catalog, service.Auth, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
