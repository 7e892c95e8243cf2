package wire

import (
	"bus-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Bus CRUD is open, same as the catalog endpoints of the original API.
func wireBus(r chi.Router, busHandler *adaptor.BusHandler) {
	r.Get("/api/buses", busHandler.ListBuses)
	r.Post("/api/buses", busHandler.CreateBus)
	r.Get("/api/buses/{id}", busHandler.GetBus)
	r.Delete("/api/buses/{id}", busHandler.DeleteBus)
}
