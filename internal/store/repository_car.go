package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/jackc/pgerrcode"
)

// carRepository is the PostgreSQL-backed implementation of [CarRepository].
// Catalogue search queries are assembled dynamically with squirrel from the
// optional filter attributes.
type carRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
	}
}

// carColumns is the canonical column list scanned into a models.Car.
var carColumns = []string{
	"id", "brand", "model", "year", "category", "seats", "fuel_type",
	"transmission", "price_per_day", "location", "description",
	"image_url", "is_available", "created_at",
}

// ListCars returns the catalogue entries matching the filter. Zero-valued
// filter attributes add no constraint; with an empty filter the whole
// catalogue is returned ordered by daily price.
func (r *carRepository) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(carColumns...).
		From("cars").
		OrderBy("price_per_day ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Transmission != "" {
		builder = builder.Where(sq.Eq{"transmission": filter.Transmission})
	}
	if filter.FuelType != "" {
		builder = builder.Where(sq.Eq{"fuel_type": filter.FuelType})
	}
	if filter.Location != "" {
		builder = builder.Where(sq.Eq{"location": filter.Location})
	}
	if filter.MinSeats > 0 {
		builder = builder.Where(sq.GtOrEq{"seats": filter.MinSeats})
	}
	if filter.MaxPricePerDay > 0 {
		builder = builder.Where(sq.LtOrEq{"price_per_day": filter.MaxPricePerDay})
	}
	if filter.AvailableOnly {
		builder = builder.Where(sq.Eq{"is_available": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var car models.Car
		if err := scanCar(rows, &car); err != nil {
			log.Err(err).Str("func", "*carRepository.ListCars").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cars, nil
}

// GetCar retrieves a single catalogue entry by identifier.
// Returns [ErrCarNotFound] if no row matches.
func (r *carRepository) GetCar(ctx context.Context, carID string) (models.Car, error) {
	log := logger.FromContext(ctx)

	var car models.Car
	row := r.db.QueryRowContext(ctx, getCar, carID)

	err := scanCar(row, &car)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, ErrCarNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*carRepository.GetCar").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return car, nil
}

// CreateCar inserts a catalogue entry and returns the canonical database
// representation (with the server-assigned CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateRecord].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCar,
		car.CarID, car.Brand, car.Model, car.Year, car.Category, car.Seats,
		car.FuelType, car.Transmission, car.PricePerDay, car.Location,
		car.Description, car.ImageURL, car.IsAvailable,
	)

	var created models.Car
	if err := scanCar(row, &created); err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Car{}, ErrDuplicateRecord
		default:
			return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// UpdateCar overwrites a catalogue entry and returns the stored row.
// Returns [ErrCarNotFound] if no row matches.
func (r *carRepository) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCar,
		car.CarID, car.Brand, car.Model, car.Year, car.Category, car.Seats,
		car.FuelType, car.Transmission, car.PricePerDay, car.Location,
		car.Description, car.ImageURL, car.IsAvailable,
	)

	var updated models.Car
	err := scanCar(row, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, ErrCarNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteCar removes a catalogue entry.
// Returns [ErrCarNotFound] if no row matched.
func (r *carRepository) DeleteCar(ctx context.Context, carID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCar, carID)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner, car *models.Car) error {
	return row.Scan(
		&car.CarID, &car.Brand, &car.Model, &car.Year, &car.Category,
		&car.Seats, &car.FuelType, &car.Transmission, &car.PricePerDay,
		&car.Location, &car.Description, &car.ImageURL, &car.IsAvailable,
		&car.CreatedAt,
	)
}
