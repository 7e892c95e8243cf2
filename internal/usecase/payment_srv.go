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

type PaymentService interface {
	// SubmitPayment records a mock card charge against a booking. The
	// amount must equal the bus price exactly; a booking takes at most
	// one payment.
	SubmitPayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)

	// ListPayments returns every recorded payment, newest first.
	ListPayments(ctx context.Context) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) SubmitPayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", entity.ErrValidation)
	}

	amountCents, err := utils.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}

	// Booking must exist
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to read booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("read booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	// Pre-check for an existing payment. The unique constraint on
	// booking_id is what closes the race between two concurrent submits.
	existing, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to check existing payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrDuplicatePayment
	}

	// The amount must match the bus price exactly
	bus, err := s.repo.Bus.FindByID(ctx, booking.BusID)
	if err != nil {
		s.log.Error("Failed to read bus for booking", zap.Error(err), zap.String("bus_id", booking.BusID.String()))
		return nil, fmt.Errorf("read bus: %w", err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	if amountCents != bus.PriceCents {
		s.log.Warn("Payment amount mismatch",
			zap.String("booking_id", req.BookingID),
			zap.Int64("amount_cents", amountCents),
			zap.Int64("expected_cents", bus.PriceCents),
		)
		return nil, &entity.AmountMismatchError{ExpectedCents: bus.PriceCents}
	}

	payment := &entity.MockPayment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:   &bookingID,
		NameOnCard:  req.NameOnCard,
		CardNumber:  req.CardNumber,
		ExpiryDate:  req.ExpiryDate,
		CVV:         req.CVV,
		AmountCents: amountCents,
		Status:      entity.PaymentStatusSuccess,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Warn("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Int64("amount_cents", amountCents),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}
