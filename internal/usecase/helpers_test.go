package usecase_test

import (
	"time"

	"bus-reservation/internal/data/entity"

	"github.com/google/uuid"
)

func seedUser(store *fakeStore, username string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	store.users[user.ID] = user
	return user
}

func seedBus(store *fakeStore, priceCents int64) *entity.Bus {
	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusName:     "Night Rider",
		Number:      "KA-01-" + uuid.NewString()[:4],
		Origin:      "Bangalore",
		Destination: "Chennai",
		Features:    "AC, Sleeper",
		StartTime:   "21:30",
		ReachTime:   "05:45",
		NoOfSeats:   40,
		PriceCents:  priceCents,
	}
	store.buses[bus.ID] = bus
	store.busOrder = append(store.busOrder, bus.ID)
	return bus
}

func seedSeat(store *fakeStore, bus *entity.Bus, number string, booked bool) *entity.Seat {
	seat := &entity.Seat{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BusID:      bus.ID,
		SeatNumber: number,
		IsBooked:   booked,
	}
	store.seats[seat.ID] = seat
	return seat
}

func seedBooking(store *fakeStore, user *entity.User, bus *entity.Bus, seat *entity.Seat) *entity.Booking {
	seat.IsBooked = true
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: user.ID,
		BusID:  bus.ID,
		SeatID: seat.ID,
	}
	store.bookings = append(store.bookings, booking)
	return booking
}
