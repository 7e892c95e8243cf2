package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bus-reservation/internal/data/entity"
	"bus-reservation/internal/dto/request"
	"bus-reservation/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveSeat_Success(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	user := seedUser(store, "alice")
	bus := seedBus(store, 50000)
	seat := seedSeat(store, bus, "12", false)

	resp, err := service.ReserveSeat(context.Background(), user.ID, &request.CreateBookingRequest{
		SeatID: seat.ID.String(),
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "alice", resp.User)
	assert.Equal(t, "12", resp.Seat.SeatNumber)
	assert.True(t, resp.Seat.IsBooked)
	assert.Equal(t, "500.00", resp.Bus.Price)
	assert.Equal(t, bus.Origin, resp.Bus.Origin)

	assert.True(t, store.seats[seat.ID].IsBooked)
	require.Len(t, store.bookings, 1)
	assert.Equal(t, user.ID, store.bookings[0].UserID)
	assert.Equal(t, seat.ID, store.bookings[0].SeatID)
	assert.Equal(t, bus.ID, store.bookings[0].BusID)
}

func TestReserveSeat_SeatNotFound(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	user := seedUser(store, "alice")

	resp, err := service.ReserveSeat(context.Background(), user.ID, &request.CreateBookingRequest{
		SeatID: uuid.NewString(),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrSeatNotFound)
	assert.Empty(t, store.bookings)
}

func TestReserveSeat_AlreadyBooked(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	userA := seedUser(store, "alice")
	userB := seedUser(store, "bob")
	bus := seedBus(store, 50000)
	seat := seedSeat(store, bus, "7", false)

	_, err := service.ReserveSeat(context.Background(), userA.ID, &request.CreateBookingRequest{
		SeatID: seat.ID.String(),
	})
	require.NoError(t, err)

	resp, err := service.ReserveSeat(context.Background(), userB.ID, &request.CreateBookingRequest{
		SeatID: seat.ID.String(),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
	assert.Len(t, store.bookings, 1)
}

func TestReserveSeat_ConcurrentAttemptsExactlyOneWins(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	bus := seedBus(store, 50000)
	seat := seedSeat(store, bus, "1", false)

	const attempts = 32
	users := make([]uuid.UUID, attempts)
	for i := range users {
		users[i] = seedUser(store, "user"+uuid.NewString()[:8]).ID
	}

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.ReserveSeat(context.Background(), users[i], &request.CreateBookingRequest{
				SeatID: seat.ID.String(),
			})
			errs[i] = err
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
			conflicts++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, store.bookings, 1)
	assert.True(t, store.seats[seat.ID].IsBooked)
}

func TestGetUserBookings_OwnBookingsOnly(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	alice := seedUser(store, "alice")
	bob := seedUser(store, "bob")
	bus := seedBus(store, 50000)

	seedBooking(store, alice, bus, seedSeat(store, bus, "1", false))
	seedBooking(store, alice, bus, seedSeat(store, bus, "2", false))
	seedBooking(store, bob, bus, seedSeat(store, bus, "3", false))

	bookings, err := service.GetUserBookings(context.Background(), alice.ID, alice.ID)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, "alice", booking.User)
	}
}

type failingBusRepo struct {
	fakeBusRepo
	err error
}

func (r *failingBusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	return nil, r.err
}

type failingSeatRepo struct {
	fakeSeatRepo
	err error
}

func (r *failingSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	return nil, r.err
}

func TestGetUserBookings_BusLookupFailurePropagates(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	alice := seedUser(store, "alice")
	bus := seedBus(store, 50000)
	seedBooking(store, alice, bus, seedSeat(store, bus, "1", false))

	storeErr := errors.New("connection reset")
	repo.Bus = &failingBusRepo{fakeBusRepo{store}, storeErr}

	bookings, err := service.GetUserBookings(context.Background(), alice.ID, alice.ID)

	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetUserBookings_SeatLookupFailurePropagates(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	alice := seedUser(store, "alice")
	bus := seedBus(store, 50000)
	seedBooking(store, alice, bus, seedSeat(store, bus, "1", false))

	storeErr := errors.New("connection reset")
	repo.Seat = &failingSeatRepo{fakeSeatRepo{store}, storeErr}

	bookings, err := service.GetUserBookings(context.Background(), alice.ID, alice.ID)

	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetUserBookings_OtherUserUnauthorized(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	service := usecase.NewBookingService(repo, testLogger())

	alice := seedUser(store, "alice")
	bob := seedUser(store, "bob")

	bookings, err := service.GetUserBookings(context.Background(), bob.ID, alice.ID)

	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}
