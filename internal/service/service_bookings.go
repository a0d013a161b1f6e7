package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// bookingService is the concrete implementation of [BookingService]. Every
// operation is scoped to the authenticated user passed in by the handler;
// addressing another user's booking yields ErrNotResourceOwner.
type bookingService struct {
	bookingRepository store.BookingRepository
	carRepository     store.CarRepository
	now               func() time.Time
	logger            *logger.Logger
}

// NewBookingService constructs a [BookingService] wired to the given
// repositories. Passing a nil now installs time.Now.
func NewBookingService(bookingRepository store.BookingRepository, carRepository store.CarRepository, now func() time.Time, logger *logger.Logger) BookingService {
	if now == nil {
		now = time.Now
	}

	return &bookingService{
		bookingRepository: bookingRepository,
		carRepository:     carRepository,
		now:               now,
		logger:            logger,
	}
}

// CreateBooking reserves a car for the user. The price is computed from the
// car's daily rate at booking time; the reservation starts as pending and
// is confirmed by a successful payment.
//
// Returns:
//   - ErrInvalidDataProvided for missing car ID or a non-positive period;
//   - ErrCarUnavailable when the car is marked unavailable or an existing
//     pending/confirmed reservation overlaps the period;
//   - a wrapped storage error otherwise.
func (b *bookingService) CreateBooking(ctx context.Context, userID string, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if userID == "" || booking.CarID == "" {
		return models.Booking{}, ErrInvalidDataProvided
	}
	if !booking.ReturnDate.After(booking.PickupDate) {
		log.Error().
			Time("pickup", booking.PickupDate).
			Time("return", booking.ReturnDate).
			Msg("invalid booking period")
		return models.Booking{}, ErrInvalidDataProvided
	}
	if booking.PickupDate.Before(b.now()) {
		return models.Booking{}, ErrInvalidDataProvided
	}

	car, err := b.carRepository.GetCar(ctx, booking.CarID)
	if err != nil {
		log.Err(err).Str("car_id", booking.CarID).Msg("car lookup for booking failed")
		return models.Booking{}, fmt.Errorf("car lookup for booking failed: %w", err)
	}
	if !car.IsAvailable {
		return models.Booking{}, ErrCarUnavailable
	}

	overlap, err := b.bookingRepository.HasOverlap(ctx, booking)
	if err != nil {
		log.Err(err).Str("car_id", booking.CarID).Msg("overlap check failed")
		return models.Booking{}, fmt.Errorf("overlap check failed: %w", err)
	}
	if overlap {
		return models.Booking{}, ErrCarUnavailable
	}

	booking.BookingID = utils.NewUUID()
	booking.UserID = userID
	booking.Status = models.BookingStatusPending
	booking.TotalPrice = booking.Days() * car.PricePerDay

	created, err := b.bookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		log.Err(err).Any("booking", booking).Msg("booking creation ended with error")
		return models.Booking{}, fmt.Errorf("booking creation ended with error: %w", err)
	}

	return created, nil
}

// GetBooking returns a reservation if it belongs to the user.
func (b *bookingService) GetBooking(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	if userID == "" || bookingID == "" {
		return models.Booking{}, ErrInvalidDataProvided
	}

	booking, err := b.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking lookup failed: %w", err)
	}
	if booking.UserID != userID {
		return models.Booking{}, ErrNotResourceOwner
	}

	return booking, nil
}

// ListMyBookings returns every reservation owned by the user, newest first.
func (b *bookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	bookings, err := b.bookingRepository.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("booking listing failed: %w", err)
	}

	return bookings, nil
}

// CancelBooking cancels a pending or confirmed reservation owned by the
// user. Completed and already-cancelled reservations cannot be cancelled.
func (b *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	booking, err := b.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		log.Error().Str("status", booking.Status).Msg("booking cannot be cancelled in its current status")
		return models.Booking{}, ErrInvalidDataProvided
	}

	if err := b.bookingRepository.UpdateBookingStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("booking cancellation ended with error")
		return models.Booking{}, fmt.Errorf("booking cancellation ended with error: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}
