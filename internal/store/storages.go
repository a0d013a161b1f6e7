package store

import "github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"

// Storages bundles every repository behind one constructor so the service
// layer receives a single wired dependency.
type Storages struct {
	UserRepository    UserRepository
	CarRepository     CarRepository
	BookingRepository BookingRepository
	PaymentRepository PaymentRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		CarRepository:     NewCarRepository(db, logger),
		BookingRepository: NewBookingRepository(db, logger),
		PaymentRepository: NewPaymentRepository(db, logger),
	}
}
