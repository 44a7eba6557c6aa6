package repository

import (
	"context"

	"tourism-booking/internal/data/entity"
)

// BookingStore is the persistence port the booking gateway writes through.
// Implementations own the records once Insert returns.
type BookingStore interface {
	// Insert writes one record and returns the rows as stored, including
	// any columns the store assigned.
	Insert(ctx context.Context, collection string, record entity.Record) ([]entity.Record, error)
	SelectAll(ctx context.Context, collection string) ([]entity.Record, error)
}

// Pinger is implemented by stores that can report their connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Booking BookingStore
}

func NewRepository(store BookingStore) *Repository {
	return &Repository{
		Booking: store,
	}
}
