package service

import (
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/adapter"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
)

// Services bundles the application services behind one constructor so the
// HTTP layer receives a single wired dependency.
type Services struct {
	AuthService    AuthService
	CarService     CarService
	BookingService BookingService
	PaymentService PaymentService
}

// NewServices wires all services to the repositories and the payment
// provider. The wall clock is installed everywhere; tests construct
// individual services with injected clocks instead.
func NewServices(storages *store.Storages, provider adapter.PaymentProvider, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, nil, logger),
		CarService:     NewCarService(storages.CarRepository, logger),
		BookingService: NewBookingService(storages.BookingRepository, storages.CarRepository, nil, logger),
		PaymentService: NewPaymentService(storages.PaymentRepository, storages.BookingRepository, provider, cfg.Payments, logger),
	}
}
