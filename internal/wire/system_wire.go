package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSystem(r chi.Router, systemHandler *adaptor.SystemHandler) {
	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)

	// Walks r itself, so routes registered later are listed too
	r.Get("/api/routes", systemHandler.Routes(r))
}
