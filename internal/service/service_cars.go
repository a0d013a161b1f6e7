package service

import (
	"context"
	"fmt"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// carService is the concrete implementation of [CarService]. It is a thin
// validation layer over the car repository; catalogue reads are public,
// mutations sit behind the auth gate at the HTTP layer.
type carService struct {
	carRepository store.CarRepository
	logger        *logger.Logger
}

// NewCarService constructs a [CarService] wired to the given repository.
func NewCarService(carRepository store.CarRepository, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		logger:        logger,
	}
}

func (c *carService) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	cars, err := c.carRepository.ListCars(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("car search failed: %w", err)
	}

	return cars, nil
}

func (c *carService) GetCar(ctx context.Context, carID string) (models.Car, error) {
	if carID == "" {
		return models.Car{}, ErrInvalidDataProvided
	}

	car, err := c.carRepository.GetCar(ctx, carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("car lookup failed: %w", err)
	}

	return car, nil
}

// CreateCar validates the catalogue entry, assigns a fresh identifier, and
// persists it.
func (c *carService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if err := validateCar(car); err != nil {
		log.Error().Any("car", car).Msg("invalid car data provided")
		return models.Car{}, err
	}

	car.CarID = utils.NewUUID()

	created, err := c.carRepository.CreateCar(ctx, car)
	if err != nil {
		log.Err(err).Any("car", car).Msg("car creation ended with error")
		return models.Car{}, fmt.Errorf("car creation ended with error: %w", err)
	}

	return created, nil
}

func (c *carService) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if car.CarID == "" {
		return models.Car{}, ErrInvalidDataProvided
	}
	if err := validateCar(car); err != nil {
		log.Error().Any("car", car).Msg("invalid car data provided")
		return models.Car{}, err
	}

	updated, err := c.carRepository.UpdateCar(ctx, car)
	if err != nil {
		log.Err(err).Str("car_id", car.CarID).Msg("car update ended with error")
		return models.Car{}, fmt.Errorf("car update ended with error: %w", err)
	}

	return updated, nil
}

func (c *carService) DeleteCar(ctx context.Context, carID string) error {
	if carID == "" {
		return ErrInvalidDataProvided
	}

	if err := c.carRepository.DeleteCar(ctx, carID); err != nil {
		return fmt.Errorf("car deletion ended with error: %w", err)
	}

	return nil
}

func validateCar(car models.Car) error {
	if car.Brand == "" || car.Model == "" || car.Category == "" || car.Location == "" {
		return ErrInvalidDataProvided
	}
	if car.Year <= 0 || car.Seats <= 0 || car.PricePerDay <= 0 {
		return ErrInvalidDataProvided
	}

	return nil
}
