package adaptor

import (
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Place   *PlaceHandler
	System  *SystemHandler
}

func NewHandler(service *usecase.Service, repo *repository.Repository, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Place:   NewPlaceHandler(service.Place, log),
		System:  NewSystemHandler(repo.Booking, log),
	}
}
