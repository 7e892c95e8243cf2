package request

type CreateBusRequest struct {
	BusName     string `json:"bus_name" validate:"required,max=100"`
	Number      string `json:"number" validate:"required,max=20"`
	Origin      string `json:"origin" validate:"required,max=50"`
	Destination string `json:"destination" validate:"required,max=50"`
	Features    string `json:"features"`
	StartTime   string `json:"start_time" validate:"required"` // HH:MM
	ReachTime   string `json:"reach_time" validate:"required"` // HH:MM
	NoOfSeats   int    `json:"no_of_seats" validate:"required,gt=0"`
	Price       string `json:"price" validate:"required"` // "500.00"
}
