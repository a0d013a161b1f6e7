package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/jackc/pgerrcode"
)

// paymentRepository is the PostgreSQL-backed implementation of
// [PaymentRepository].
type paymentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPaymentRepository constructs a [PaymentRepository] backed by the
// provided database connection and logger.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePayment persists a charge record and returns the canonical database
// representation. The ClientSecret field is never stored; the caller copies
// it onto the returned value when responding to the frontend.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrBookingNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *paymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPayment,
		payment.PaymentID, payment.BookingID, payment.UserID,
		payment.Amount, payment.Currency, payment.Status, payment.ProviderIntentID,
	)

	var created models.Payment
	if err := scanPayment(row, &created); err != nil {
		log.Err(err).Str("func", "*paymentRepository.CreatePayment").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Payment{}, ErrBookingNotFound
		default:
			return models.Payment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetPayment retrieves a charge record by identifier.
// Returns [ErrPaymentNotFound] if no row matches.
func (r *paymentRepository) GetPayment(ctx context.Context, paymentID string) (models.Payment, error) {
	log := logger.FromContext(ctx)

	var payment models.Payment
	row := r.db.QueryRowContext(ctx, getPayment, paymentID)

	err := scanPayment(row, &payment)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.GetPayment").Msg("error: scanning error")
		return models.Payment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return payment, nil
}

// UpdatePaymentStatus sets the status of an existing charge record.
// Returns [ErrPaymentNotFound] if no row matched.
func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID, status string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePaymentStatus, paymentID, status)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.UpdatePaymentStatus").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

func scanPayment(row rowScanner, payment *models.Payment) error {
	return row.Scan(
		&payment.PaymentID, &payment.BookingID, &payment.UserID,
		&payment.Amount, &payment.Currency, &payment.Status,
		&payment.ProviderIntentID, &payment.CreatedAt,
	)
}
