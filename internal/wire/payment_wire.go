package wire

import (
	"bus-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Payment endpoints carry no auth, mirroring the original API surface.
func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Get("/api/mock-payments", paymentHandler.ListPayments)
	r.Post("/api/mock-payments", paymentHandler.SubmitPayment)
}
