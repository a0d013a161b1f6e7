package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Days(t *testing.T) {
	pickup := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnDate time.Time
		want       int64
	}{
		{name: "exact days", returnDate: pickup.Add(3 * 24 * time.Hour), want: 3},
		{name: "partial day rounds up", returnDate: pickup.Add(2*24*time.Hour + time.Hour), want: 3},
		{name: "less than a day bills one day", returnDate: pickup.Add(6 * time.Hour), want: 1},
		{name: "single full day", returnDate: pickup.Add(24 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{PickupDate: pickup, ReturnDate: tt.returnDate}
			assert.Equal(t, tt.want, b.Days())
		})
	}
}
