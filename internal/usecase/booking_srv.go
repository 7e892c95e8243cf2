package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-reservation/internal/data/entity"
	"bus-reservation/internal/data/repository"
	"bus-reservation/internal/dto/request"
	"bus-reservation/internal/dto/response"
	"bus-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// ReserveSeat claims one seat for the calling user. The seat flip and
	// the booking insert happen as one atomic unit in the repository.
	ReserveSeat(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// GetUserBookings lists the requested user's bookings. Callers may only
	// request their own.
	GetUserBookings(ctx context.Context, callerID, requestedID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ReserveSeat(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seat ID format", entity.ErrValidation)
	}

	// Read the seat. The fast-fail here is advisory only; the repository
	// transaction is what actually closes the race.
	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		s.log.Error("Failed to read seat", zap.Error(err), zap.String("seat_id", req.SeatID))
		return nil, fmt.Errorf("read seat: %w", err)
	}
	if seat == nil {
		return nil, entity.ErrSeatNotFound
	}
	if seat.IsBooked {
		return nil, entity.ErrSeatAlreadyBooked
	}

	bus, err := s.repo.Bus.FindByID(ctx, seat.BusID)
	if err != nil {
		s.log.Error("Failed to read bus for seat", zap.Error(err), zap.String("bus_id", seat.BusID.String()))
		return nil, fmt.Errorf("read bus: %w", err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to read user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("read user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUnauthorized
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		BusID:  seat.BusID,
		SeatID: seatID,
	}

	if err := s.repo.Booking.Reserve(ctx, booking); err != nil {
		s.log.Warn("Reserve failed",
			zap.Error(err),
			zap.String("seat_id", req.SeatID),
			zap.String("user_id", userID.String()),
		)
		return nil, err
	}

	s.log.Info("Seat reserved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("seat_id", req.SeatID),
		zap.String("seat_number", seat.SeatNumber),
		zap.String("user_id", userID.String()),
	)

	seat.IsBooked = true
	return &response.BookingResponse{
		ID:          booking.ID.String(),
		User:        user.Username,
		Bus:         response.BusToSummary(bus),
		Seat:        response.SeatToResponse(seat),
		BookingTime: booking.CreatedAt,
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, callerID, requestedID uuid.UUID) ([]response.BookingResponse, error) {
	// Plain identity check, no admin override
	if callerID != requestedID {
		s.log.Warn("Booking list denied",
			zap.String("caller_id", callerID.String()),
			zap.String("requested_id", requestedID.String()),
		)
		return nil, entity.ErrUnauthorized
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, requestedID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", requestedID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, requestedID)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}

	var username string
	if user != nil {
		username = user.Username
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		var busSummary response.BusSummary
		var seatResp response.SeatResponse

		bus, err := s.repo.Bus.FindByID(ctx, booking.BusID)
		if err != nil {
			s.log.Error("Failed to read bus for booking",
				zap.Error(err),
				zap.String("bus_id", booking.BusID.String()),
			)
			return nil, fmt.Errorf("read bus for booking %s: %w", booking.ID.String(), err)
		}
		if bus != nil {
			busSummary = response.BusToSummary(bus)
		}

		seat, err := s.repo.Seat.FindByID(ctx, booking.SeatID)
		if err != nil {
			s.log.Error("Failed to read seat for booking",
				zap.Error(err),
				zap.String("seat_id", booking.SeatID.String()),
			)
			return nil, fmt.Errorf("read seat for booking %s: %w", booking.ID.String(), err)
		}
		if seat != nil {
			seatResp = response.SeatToResponse(seat)
		}

		bookingResponses[i] = response.BookingResponse{
			ID:          booking.ID.String(),
			User:        username,
			Bus:         busSummary,
			Seat:        seatResp,
			BookingTime: booking.CreatedAt,
		}
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", requestedID.String()),
		zap.Int("count", len(bookings)),
	)

	return bookingResponses, nil
}
