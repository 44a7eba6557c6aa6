package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== BOOKING FORMS ====================
	r.Post("/api/book-guide", bookingHandler.BookGuide)
	r.Post("/api/book-transport", bookingHandler.BookTransport)
	r.Post("/api/book-activity", bookingHandler.BookActivity)

	// POST /api/book - routed by booking_type
	r.Post("/api/book", bookingHandler.Book)

	// POST /api/payment - stored as sent in user_bookings
	r.Post("/api/payment", bookingHandler.ProcessPayment)

	// ==================== ADMIN VIEW ====================
	r.Get("/api/bookings", bookingHandler.GetAllBookings)
	r.Get("/api/bookings/{category}", bookingHandler.GetBookingsByCategory)
}
