package repository

import (
	"context"
	"errors"
	"fmt"

	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type PaymentRepository interface {
	// Create inserts the payment. The unique constraint on booking_id turns
	// a concurrent double submit into entity.ErrDuplicatePayment.
	Create(ctx context.Context, payment *entity.MockPayment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.MockPayment, error)
	FindAll(ctx context.Context) ([]*entity.MockPayment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.MockPayment) error {
	query := `
		INSERT INTO mock_payments (id, booking_id, name_on_card, card_number, expiry_date, cvv,
		                           amount_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.NameOnCard,
		payment.CardNumber,
		payment.ExpiryDate,
		payment.CVV,
		payment.AmountCents,
		payment.Status,
		payment.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicatePayment
		}

		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("create payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.MockPayment, error) {
	query := `
		SELECT id, booking_id, name_on_card, card_number, expiry_date, cvv,
		       amount_cents, status, created_at
		FROM mock_payments
		WHERE booking_id = $1
	`

	var payment entity.MockPayment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.NameOnCard,
		&payment.CardNumber,
		&payment.ExpiryDate,
		&payment.CVV,
		&payment.AmountCents,
		&payment.Status,
		&payment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.MockPayment, error) {
	query := `
		SELECT id, booking_id, name_on_card, card_number, expiry_date, cvv,
		       amount_cents, status, created_at
		FROM mock_payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find payments", zap.Error(err))
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.MockPayment
	for rows.Next() {
		var payment entity.MockPayment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.NameOnCard,
			&payment.CardNumber,
			&payment.ExpiryDate,
			&payment.CVV,
			&payment.AmountCents,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}
