package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePlace(r chi.Router, placeHandler *adaptor.PlaceHandler) {
	r.Get("/api/places", placeHandler.GetPlaces)
}
