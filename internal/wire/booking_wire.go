package wire

import (
	"bus-reservation/internal/adaptor"
	"bus-reservation/internal/data/repository"
	"bus-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Booking endpoints require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking - reserve a seat
		r.Post("/api/booking", bookingHandler.ReserveSeat)

		// GET /api/user/{user_id}/bookings - the caller's own bookings
		r.Get("/api/user/{user_id}/bookings", bookingHandler.GetUserBookings)
	})
}
