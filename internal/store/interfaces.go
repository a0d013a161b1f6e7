package store

import (
	"context"

	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// UserRepository is the read-only user lookup used by the principal
// resolver. The authentication core never creates or mutates users.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// CarRepository provides catalogue access for the fleet.
type CarRepository interface {
	ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	GetCar(ctx context.Context, carID string) (models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	DeleteCar(ctx context.Context, carID string) error
}

// BookingRepository persists reservations.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	HasOverlap(ctx context.Context, booking models.Booking) (bool, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
}

// PaymentRepository persists charge records.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID, status string) error
}
