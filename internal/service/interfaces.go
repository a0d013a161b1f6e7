package service

import (
	"context"

	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// AuthService is the authentication core behind the HTTP gate: it verifies
// bearer credentials and resolves their subject to a user record.
type AuthService interface {
	// ParseToken verifies the raw JWT and returns its decoded claims.
	// Failures are reported as ErrTokenExpired or ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser maps a verified subject identifier to the stored user
	// record with the password hash stripped. A missing account is
	// reported as ErrUserNotFound.
	ResolveUser(ctx context.Context, userID string) (models.User, error)
}

// CarService exposes the fleet catalogue.
type CarService interface {
	ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	GetCar(ctx context.Context, carID string) (models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	DeleteCar(ctx context.Context, carID string) error
}

// BookingService manages reservations on behalf of an authenticated user.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, booking models.Booking) (models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (models.Booking, error)
	ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) (models.Booking, error)
}

// PaymentService creates provider charges for bookings and settles them
// once the provider-side card flow has completed.
type PaymentService interface {
	CreateIntent(ctx context.Context, userID, bookingID string) (models.Payment, error)
	ConfirmPayment(ctx context.Context, userID, paymentID string) (models.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID string) (models.Payment, error)
}
