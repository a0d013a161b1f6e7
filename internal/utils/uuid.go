package utils

import "github.com/google/uuid"

// NewUUID returns a random version 4 UUID string. Used for entity
// identifiers (users, cars, bookings, payments) and trace IDs.
func NewUUID() string {
	return uuid.NewString()
}
