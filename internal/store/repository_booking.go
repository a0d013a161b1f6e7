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

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository].
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided database connection and logger.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBooking persists a reservation and returns the canonical database
// representation (with the server-assigned CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrCarNotFound]
//     (the referenced car does not exist).
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateRecord].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBooking,
		booking.BookingID, booking.UserID, booking.CarID,
		booking.PickupDate, booking.ReturnDate, booking.TotalPrice, booking.Status,
	)

	var created models.Booking
	if err := scanBooking(row, &created); err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Booking{}, ErrCarNotFound
		case pgerrcode.UniqueViolation:
			return models.Booking{}, ErrDuplicateRecord
		default:
			return models.Booking{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetBooking retrieves a reservation by identifier.
// Returns [ErrBookingNotFound] if no row matches.
func (r *bookingRepository) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	var booking models.Booking
	row := r.db.QueryRowContext(ctx, getBooking, bookingID)

	err := scanBooking(row, &booking)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.GetBooking").Msg("error: scanning error")
		return models.Booking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return booking, nil
}

// ListBookingsByUser returns all reservations owned by userID, newest first.
func (r *bookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookingsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookingsByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var booking models.Booking
		if err := scanBooking(rows, &booking); err != nil {
			log.Err(err).Str("func", "*bookingRepository.ListBookingsByUser").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

// HasOverlap reports whether any pending or confirmed reservation of the
// same car intersects the booking's [PickupDate, ReturnDate) interval.
func (r *bookingRepository) HasOverlap(ctx context.Context, booking models.Booking) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, countOverlappingBookings,
		booking.CarID, booking.PickupDate, booking.ReturnDate,
	)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*bookingRepository.HasOverlap").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}

// UpdateBookingStatus sets the status of an existing reservation.
// Returns [ErrBookingNotFound] if no row matched.
func (r *bookingRepository) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateBookingStatus, bookingID, status)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.UpdateBookingStatus").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBooking(row rowScanner, booking *models.Booking) error {
	return row.Scan(
		&booking.BookingID, &booking.UserID, &booking.CarID,
		&booking.PickupDate, &booking.ReturnDate, &booking.TotalPrice,
		&booking.Status, &booking.CreatedAt,
	)
}
