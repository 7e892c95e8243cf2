package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "Success"
)

// MockPayment simulates a card charge without contacting a real payment
// processor. Card fields are stored verbatim as opaque strings.
type MockPayment struct {
	BaseSimple
	BookingID   *uuid.UUID    `db:"booking_id"` // nullable, unique when set
	NameOnCard  string        `db:"name_on_card"`
	CardNumber  string        `db:"card_number"`
	ExpiryDate  string        `db:"expiry_date"` // MM/YY
	CVV         string        `db:"cvv"`
	AmountCents int64         `db:"amount_cents"`
	Status      PaymentStatus `db:"status"`
}
