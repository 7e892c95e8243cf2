package response

import (
	"time"
)

type BookingResponse struct {
	ID          string       `json:"id"`
	User        string       `json:"user"` // username
	Bus         BusSummary   `json:"bus"`
	Seat        SeatResponse `json:"seat"`
	BookingTime time.Time    `json:"booking_time"`
}
