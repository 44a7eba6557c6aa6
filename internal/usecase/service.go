package usecase

import (
	"tourism-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Place   PlaceService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, log),
		Place:   NewPlaceService(),
	}
}
