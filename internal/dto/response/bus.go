package response

import (
	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/utils"
)

type SeatResponse struct {
	ID         string `json:"id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

type BusResponse struct {
	ID          string         `json:"id"`
	BusName     string         `json:"bus_name"`
	Number      string         `json:"number"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Features    string         `json:"features"`
	StartTime   string         `json:"start_time"`
	ReachTime   string         `json:"reach_time"`
	NoOfSeats   int            `json:"no_of_seats"`
	Price       string         `json:"price"`
	Seats       []SeatResponse `json:"seats"`
}

// BusSummary is the short form embedded in booking responses.
type BusSummary struct {
	BusName     string `json:"bus_name"`
	Number      string `json:"number"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Price       string `json:"price"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID.String(),
		SeatNumber: seat.SeatNumber,
		IsBooked:   seat.IsBooked,
	}
}

func BusToResponse(bus *entity.Bus, seats []*entity.Seat) BusResponse {
	seatResponses := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = SeatToResponse(seat)
	}

	return BusResponse{
		ID:          bus.ID.String(),
		BusName:     bus.BusName,
		Number:      bus.Number,
		Origin:      bus.Origin,
		Destination: bus.Destination,
		Features:    bus.Features,
		StartTime:   bus.StartTime,
		ReachTime:   bus.ReachTime,
		NoOfSeats:   bus.NoOfSeats,
		Price:       utils.FormatAmount(bus.PriceCents),
		Seats:       seatResponses,
	}
}

func BusToSummary(bus *entity.Bus) BusSummary {
	return BusSummary{
		BusName:     bus.BusName,
		Number:      bus.Number,
		Origin:      bus.Origin,
		Destination: bus.Destination,
		Price:       utils.FormatAmount(bus.PriceCents),
	}
}
