package response

import (
	"time"

	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/utils"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	BookingID  *string   `json:"booking"`
	NameOnCard string    `json:"name_on_card"`
	CardNumber string    `json:"card_number"`
	ExpiryDate string    `json:"expiry_date"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func PaymentToResponse(payment *entity.MockPayment) PaymentResponse {
	var bookingID *string
	if payment.BookingID != nil {
		id := payment.BookingID.String()
		bookingID = &id
	}

	return PaymentResponse{
		ID:         payment.ID.String(),
		BookingID:  bookingID,
		NameOnCard: payment.NameOnCard,
		CardNumber: payment.CardNumber,
		ExpiryDate: payment.ExpiryDate,
		Amount:     utils.FormatAmount(payment.AmountCents),
		Status:     string(payment.Status),
		CreatedAt:  payment.CreatedAt,
	}
}
