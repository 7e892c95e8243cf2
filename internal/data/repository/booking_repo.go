package repository

import (
	"context"
	"fmt"

	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Reserve flips the seat to booked and inserts the booking row as one
	// transaction. Returns entity.ErrSeatAlreadyBooked when the seat was
	// taken by a concurrent request, entity.ErrSeatNotFound when the seat
	// row vanished under us.
	Reserve(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin reserve transaction", zap.Error(err))
		return fmt.Errorf("begin reserve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Compare-and-set on the booked flag. Concurrent losers match zero rows.
	tag, err := tx.Exec(ctx,
		`UPDATE seats SET is_booked = TRUE WHERE id = $1 AND is_booked = FALSE`,
		booking.SeatID,
	)
	if err != nil {
		r.log.Error("Failed to mark seat booked",
			zap.Error(err),
			zap.String("seat_id", booking.SeatID.String()),
		)
		return fmt.Errorf("mark seat %s booked: %w", booking.SeatID.String(), err)
	}

	if tag.RowsAffected() == 0 {
		// Zero rows means either the seat is gone or someone else won.
		var isBooked bool
		err := tx.QueryRow(ctx, `SELECT is_booked FROM seats WHERE id = $1`, booking.SeatID).Scan(&isBooked)
		if err == pgx.ErrNoRows {
			return entity.ErrSeatNotFound
		}
		if err != nil {
			return fmt.Errorf("recheck seat %s: %w", booking.SeatID.String(), err)
		}
		return entity.ErrSeatAlreadyBooked
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (id, user_id, bus_id, seat_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		booking.ID,
		booking.UserID,
		booking.BusID,
		booking.SeatID,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("seat_id", booking.SeatID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("insert booking for seat %s: %w", booking.SeatID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reserve transaction", zap.Error(err))
		return fmt.Errorf("commit reserve transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, bus_id, seat_id, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BusID,
		&booking.SeatID,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, bus_id, seat_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.BusID,
			&booking.SeatID,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
