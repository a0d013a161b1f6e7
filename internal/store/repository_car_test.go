package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carRow(car models.Car) *sqlmock.Rows {
	return sqlmock.NewRows(carColumns).AddRow(
		car.CarID, car.Brand, car.Model, car.Year, car.Category, car.Seats,
		car.FuelType, car.Transmission, car.PricePerDay, car.Location,
		car.Description, car.ImageURL, car.IsAvailable, car.CreatedAt,
	)
}

func testCar() models.Car {
	return models.Car{
		CarID:        "c1",
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Category:     "sedan",
		Seats:        5,
		FuelType:     "petrol",
		Transmission: "automatic",
		PricePerDay:  4550,
		Location:     "Berlin",
		Description:  "compact sedan",
		ImageURL:     "/uploads/corolla.jpg",
		IsAvailable:  true,
		CreatedAt:    time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestCarRepository_ListCars_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, logger.Nop())

	car := testCar()
	mock.ExpectQuery(regexp.QuoteMeta("FROM cars ORDER BY price_per_day ASC")).
		WillReturnRows(carRow(car))

	cars, err := repo.ListCars(context.Background(), models.CarFilter{})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, car, cars[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_ListCars_WithFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, logger.Nop())

	// Only the set filter attributes become placeholders, in declaration
	// order.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1 AND seats >= $2 AND is_available = $3")).
		WithArgs("suv", 5, true).
		WillReturnRows(sqlmock.NewRows(carColumns))

	cars, err := repo.ListCars(context.Background(), models.CarFilter{
		Category:      "suv",
		MinSeats:      5,
		AvailableOnly: true,
	})
	require.NoError(t, err)
	assert.Empty(t, cars)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_GetCar_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getCar)).
		WithArgs("c404").
		WillReturnRows(sqlmock.NewRows(carColumns))

	_, err := repo.GetCar(context.Background(), "c404")
	assert.ErrorIs(t, err, ErrCarNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_CreateCar_DuplicateID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, logger.Nop())

	car := testCar()
	mock.ExpectQuery(regexp.QuoteMeta(createCar)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateCar(context.Background(), car)
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_DeleteCar(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteCar)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCar(context.Background(), "c1"))

	mock.ExpectExec(regexp.QuoteMeta(deleteCar)).
		WithArgs("c404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteCar(context.Background(), "c404"), ErrCarNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
