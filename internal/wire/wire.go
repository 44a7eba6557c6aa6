package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, repo, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, outermost first
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.Server.CORSAllowedOrigins))
	r.Use(middleware.Options(r))
	r.Use(middleware.RateLimit(config.Server.RateLimitPerMin, logger))

	r.NotFound(handler.System.NotFound)
	r.MethodNotAllowed(handler.System.MethodNotAllowed)

	wireSystem(r, handler.System)
	wirePlace(r, handler.Place)
	wireBooking(r, handler.Booking)

	return r
}
