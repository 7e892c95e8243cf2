package entity

import (
	"errors"
	"fmt"
)

// Business outcomes. Handlers map these to HTTP statuses; anything else
// that comes out of a repository is a store failure and stays a 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrBusNotFound        = errors.New("bus not found")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSeatAlreadyBooked  = errors.New("seat already booked")
	ErrDuplicatePayment   = errors.New("payment already completed for this booking")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// AmountMismatchError reports the price a payment was expected to match.
type AmountMismatchError struct {
	ExpectedCents int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount must be %d.%02d", e.ExpectedCents/100, e.ExpectedCents%100)
}
