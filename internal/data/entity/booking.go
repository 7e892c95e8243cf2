package entity

import (
	"github.com/google/uuid"
)

type Booking struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	BusID  uuid.UUID `db:"bus_id"`
	SeatID uuid.UUID `db:"seat_id"`
}
