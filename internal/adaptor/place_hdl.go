package adaptor

import (
	"net/http"

	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type PlaceHandler struct {
	service usecase.PlaceService
	log     *zap.Logger
}

func NewPlaceHandler(service usecase.PlaceService, log *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		service: service,
		log:     log.With(zap.String("handler", "place")),
	}
}

// GetPlaces handles GET /api/places. The list is returned bare, without the envelope.
func (h *PlaceHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	places := h.service.GetPlaces()
	h.log.Debug("Places listed", zap.Int("count", len(places)))
	utils.WriteJSON(w, http.StatusOK, places)
}
