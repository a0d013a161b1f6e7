package models

import "time"

// Booking statuses. A booking starts as pending, becomes confirmed once its
// payment succeeds, and may be cancelled by the owner before pickup.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a reservation of one car by one user for a date range.
type Booking struct {
	// BookingID is the unique identifier of the reservation (UUID string).
	BookingID string `json:"id"`

	// UserID is the owner of the reservation.
	UserID string `json:"user_id"`

	// CarID is the reserved vehicle.
	CarID string `json:"car_id"`

	// PickupDate and ReturnDate bound the rental period.
	// ReturnDate must be strictly after PickupDate.
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`

	// TotalPrice is the computed rental price in the smallest currency
	// unit: rental days times the car's daily rate at booking time.
	TotalPrice int64 `json:"total_price"`

	// Status is one of the BookingStatus* constants.
	Status string `json:"status"`

	// CreatedAt is the reservation creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// Days returns the number of billable rental days, rounding partial days up.
func (b Booking) Days() int64 {
	d := b.ReturnDate.Sub(b.PickupDate)
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
