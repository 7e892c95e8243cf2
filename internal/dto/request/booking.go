package request

type CreateBookingRequest struct {
	SeatID string `json:"seat" validate:"required,uuid"`
}
