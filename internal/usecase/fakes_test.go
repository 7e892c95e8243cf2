package usecase_test

import (
	"context"
	"sort"
	"sync"

	"bus-reservation/internal/data/entity"
	"bus-reservation/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeStore is a single in-memory backing store shared by the fake
// repositories so the reserve path can exercise the same
// check-and-flip semantics the SQL transaction provides.
type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	sessions map[string]*entity.Session
	buses    map[uuid.UUID]*entity.Bus
	busOrder []uuid.UUID
	seats    map[uuid.UUID]*entity.Seat
	bookings []*entity.Booking
	payments []*entity.MockPayment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[string]*entity.Session),
		buses:    make(map[uuid.UUID]*entity.Bus),
		seats:    make(map[uuid.UUID]*entity.Seat),
	}
}

func newTestRepository(store *fakeStore) *repository.Repository {
	return &repository.Repository{
		User:    &fakeUserRepo{store},
		Session: &fakeSessionRepo{store},
		Bus:     &fakeBusRepo{store},
		Seat:    &fakeSeatRepo{store},
		Booking: &fakeBookingRepo{store},
		Payment: &fakePaymentRepo{store},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ---------- user ----------

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// ---------- session ----------

type fakeSessionRepo struct{ s *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.Token.String()] = session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	return session, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, token)
	return nil
}

// ---------- bus ----------

type fakeBusRepo struct{ s *fakeStore }

func (r *fakeBusRepo) Create(ctx context.Context, bus *entity.Bus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.buses[bus.ID] = bus
	r.s.busOrder = append(r.s.busOrder, bus.ID)
	return nil
}

func (r *fakeBusRepo) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	buses := make([]*entity.Bus, 0, len(r.s.busOrder))
	for _, id := range r.s.busOrder {
		buses = append(buses, r.s.buses[id])
	}
	return buses, nil
}

func (r *fakeBusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.buses[id], nil
}

func (r *fakeBusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.buses[id]; !ok {
		return entity.ErrBusNotFound
	}
	delete(r.s.buses, id)
	for i, busID := range r.s.busOrder {
		if busID == id {
			r.s.busOrder = append(r.s.busOrder[:i], r.s.busOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- seat ----------

type fakeSeatRepo struct{ s *fakeStore }

func (r *fakeSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, seat := range seats {
		r.s.seats[seat.ID] = seat
	}
	return nil
}

func (r *fakeSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seat, ok := r.s.seats[id]
	if !ok {
		return nil, nil
	}
	copied := *seat
	return &copied, nil
}

func (r *fakeSeatRepo) FindByBusID(ctx context.Context, busID uuid.UUID) ([]*entity.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seats []*entity.Seat
	for _, seat := range r.s.seats {
		if seat.BusID == busID {
			copied := *seat
			seats = append(seats, &copied)
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		a, b := seats[i].SeatNumber, seats[j].SeatNumber
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return seats, nil
}

// ---------- booking ----------

type fakeBookingRepo struct{ s *fakeStore }

func (r *fakeBookingRepo) Reserve(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seat, ok := r.s.seats[booking.SeatID]
	if !ok {
		return entity.ErrSeatNotFound
	}
	if seat.IsBooked {
		return entity.ErrSeatAlreadyBooked
	}

	seat.IsBooked = true
	r.s.bookings = append(r.s.bookings, booking)
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, booking := range r.s.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// ---------- payment ----------

type fakePaymentRepo struct{ s *fakeStore }

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.MockPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if payment.BookingID != nil {
		for _, existing := range r.s.payments {
			if existing.BookingID != nil && *existing.BookingID == *payment.BookingID {
				return entity.ErrDuplicatePayment
			}
		}
	}
	r.s.payments = append(r.s.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.MockPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, payment := range r.s.payments {
		if payment.BookingID != nil && *payment.BookingID == bookingID {
			return payment, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) FindAll(ctx context.Context) ([]*entity.MockPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	payments := make([]*entity.MockPayment, len(r.s.payments))
	copy(payments, r.s.payments)
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}
