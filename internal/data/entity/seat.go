package entity

import "github.com/google/uuid"

type Seat struct {
	BaseSimple
	BusID      uuid.UUID `db:"bus_id"`
	SeatNumber string    `db:"seat_number"` // unique within its bus
	IsBooked   bool      `db:"is_booked"`
}
