package entity

type Bus struct {
	Base
	BusName     string `db:"bus_name"`
	Number      string `db:"number"` // plate number, unique
	Origin      string `db:"origin"`
	Destination string `db:"destination"`
	Features    string `db:"features"`
	StartTime   string `db:"start_time"` // HH:MM
	ReachTime   string `db:"reach_time"` // HH:MM
	NoOfSeats   int    `db:"no_of_seats"`
	PriceCents  int64  `db:"price_cents"`
}
