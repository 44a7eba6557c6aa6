package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

type SystemHandler struct {
	store repository.BookingStore
	log   *zap.Logger
}

func NewSystemHandler(store repository.BookingStore, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		store: store,
		log:   log.With(zap.String("handler", "system")),
	}
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Backend is running"))
}

// Health handles GET /health. Stores that cannot be pinged count as healthy.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := response.HealthResponse{
		Status: "healthy",
		Store:  "ok",
	}

	if pinger, ok := h.store.(repository.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			h.log.Error("Store health check failed", zap.Error(err))
			status.Status = "unhealthy"
			status.Store = err.Error()
			utils.ResponseServiceUnavailable(w, "Store unavailable", status)
			return
		}
	}

	utils.ResponseSuccess(w, "", status)
}

// Routes handles GET /api/routes by walking the router it is given.
func (h *SystemHandler) Routes(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods := map[string][]string{}
		err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			methods[route] = append(methods[route], method)
			return nil
		})
		if err != nil {
			h.log.Error("Failed to walk routes", zap.Error(err))
			utils.ResponseInternalError(w, "Server error: "+err.Error())
			return
		}

		routes := make([]response.RouteResponse, 0, len(methods))
		for rule, ms := range methods {
			sort.Strings(ms)
			routes = append(routes, response.RouteResponse{
				Endpoint: endpointName(rule),
				Methods:  ms,
				Rule:     rule,
			})
		}
		sort.Slice(routes, func(i, j int) bool { return routes[i].Rule < routes[j].Rule })

		utils.WriteJSON(w, http.StatusOK, routes)
	}
}

// NotFound answers unmatched paths with the envelope instead of chi's text body.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.log.Warn("Route not found",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	utils.ResponseNotFound(w, fmt.Sprintf("Route %s not found", r.URL.Path))
}

func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.log.Warn("Method not allowed",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	utils.ResponseMethodNotAllowed(w, fmt.Sprintf("Method %s not allowed on %s", r.Method, r.URL.Path))
}

// endpointName turns "/api/book-guide" into "api_book_guide".
func endpointName(rule string) string {
	name := strings.Trim(rule, "/")
	if name == "" {
		return "root"
	}
	name = strings.NewReplacer("/", "_", "-", "_", "{", "", "}", "").Replace(name)
	return name
}
