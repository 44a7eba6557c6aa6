package usecase

import (
	"tourism-booking/internal/data/entity"
)

type PlaceService interface {
	GetPlaces() []entity.Place
}

type placeService struct {
	places []entity.Place
}

func NewPlaceService() PlaceService {
	return &placeService{places: defaultPlaces()}
}

// GetPlaces returns a copy so callers cannot edit the reference data.
func (s *placeService) GetPlaces() []entity.Place {
	out := make([]entity.Place, len(s.places))
	copy(out, s.places)
	return out
}

func defaultPlaces() []entity.Place {
	return []entity.Place{
		{ID: 1, Name: "Ranchi", Description: "Capital city of Jharkhand"},
		{ID: 2, Name: "Jamshedpur", Description: "Steel city of India"},
		{ID: 3, Name: "Dhanbad", Description: "Coal capital of India"},
		{ID: 4, Name: "Deoghar", Description: "Temple town"},
		{ID: 5, Name: "Hazaribagh", Description: "Famous for wildlife sanctuary"},
	}
}
