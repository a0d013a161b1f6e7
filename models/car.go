package models

import "time"

// Car is a single rentable vehicle in the fleet catalogue.
type Car struct {
	// CarID is the unique identifier of the vehicle (UUID string).
	CarID string `json:"id"`

	// Brand and Model identify the vehicle (e.g. "Toyota" / "Corolla").
	Brand string `json:"brand"`
	Model string `json:"model"`

	// Year is the manufacturing year.
	Year int `json:"year"`

	// Category is the fleet segment ("sedan", "suv", "hatchback", ...).
	Category string `json:"category"`

	// Seats is the passenger capacity.
	Seats int `json:"seats"`

	// FuelType is "petrol", "diesel", "electric" or "hybrid".
	FuelType string `json:"fuel_type"`

	// Transmission is "manual" or "automatic".
	Transmission string `json:"transmission"`

	// PricePerDay is the daily rental rate in the smallest currency unit
	// (e.g. cents). Integer to avoid float money arithmetic.
	PricePerDay int64 `json:"price_per_day"`

	// Location is the pickup city/branch.
	Location string `json:"location"`

	// Description is free-form marketing text.
	Description string `json:"description"`

	// ImageURL points at the vehicle photo under /uploads.
	ImageURL string `json:"image_url"`

	// IsAvailable marks whether the car can currently be booked.
	IsAvailable bool `json:"is_available"`

	// CreatedAt is the catalogue insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}

// CarFilter carries the optional search criteria accepted by GET /api/cars.
// Zero values mean "no constraint on this attribute".
type CarFilter struct {
	Category       string
	Transmission   string
	FuelType       string
	Location       string
	MinSeats       int
	MaxPricePerDay int64
	AvailableOnly  bool
}
